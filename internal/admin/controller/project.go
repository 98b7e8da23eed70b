package controller

import (
	"context"
	"io"

	"github.com/buildora/buildora/pkg/adminsdk"
)

// ProjectAPI is the slice of the SDK the project controller needs.
type ProjectAPI interface {
	CreateProject(ctx context.Context, req adminsdk.CreateProjectRequest, filename string, image io.Reader) (*adminsdk.CreateProjectResponse, error)
}

// ProjectForm holds the create-project screen's fields. Fee amounts are
// flat per-trade figures and may not be negative.
type ProjectForm struct {
	ProjectName string `validate:"required"`
	Address     string `validate:"required"`
	Description string `validate:"required"`
	ManagerID   string `validate:"required"`

	PlumberFees        float64 `validate:"gte=0"`
	ElectricianFees    float64 `validate:"gte=0"`
	CarpenterFees      float64 `validate:"gte=0"`
	PainterFees        float64 `validate:"gte=0"`
	CleanerFees        float64 `validate:"gte=0"`
	MechanicFees       float64 `validate:"gte=0"`
	HVACTechnicianFees float64 `validate:"gte=0"`
	MasonFees          float64 `validate:"gte=0"`
	WelderFees         float64 `validate:"gte=0"`
}

// ProjectController coordinates project creation, including the optional
// image attachment.
type ProjectController struct {
	base

	api ProjectAPI

	Form ProjectForm

	// Image and ImageName describe the optional attachment. A nil Image
	// creates the project without one.
	Image     io.Reader
	ImageName string

	// OnSuccess runs after a successful creation.
	OnSuccess func()
}

// NewProjectController wires a project controller.
func NewProjectController(api ProjectAPI, notifier Notifier) *ProjectController {
	return &ProjectController{
		base: base{notifier: notifier},
		api:  api,
	}
}

// Submit validates the form and creates the project.
func (c *ProjectController) Submit(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	if err := validateForm(&c.Form); err != nil {
		return c.reject(err)
	}

	resp, err := c.api.CreateProject(ctx, adminsdk.CreateProjectRequest{
		ProjectName:        c.Form.ProjectName,
		Address:            c.Form.Address,
		Description:        c.Form.Description,
		PlumberFees:        c.Form.PlumberFees,
		ElectricianFees:    c.Form.ElectricianFees,
		CarpenterFees:      c.Form.CarpenterFees,
		PainterFees:        c.Form.PainterFees,
		CleanerFees:        c.Form.CleanerFees,
		MechanicFees:       c.Form.MechanicFees,
		HVACTechnicianFees: c.Form.HVACTechnicianFees,
		MasonFees:          c.Form.MasonFees,
		WelderFees:         c.Form.WelderFees,
		ManagerID:          c.Form.ManagerID,
	}, c.ImageName, c.Image)
	if err != nil {
		return c.fail(err)
	}

	c.Form = ProjectForm{}
	c.Image = nil
	c.ImageName = ""
	c.succeed(orDefault(resp.Message, "Project created successfully"))
	if c.OnSuccess != nil {
		c.OnSuccess()
	}
	return nil
}
