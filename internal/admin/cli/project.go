package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/buildora/buildora/internal/admin/app"
	"github.com/buildora/buildora/internal/admin/controller"
)

func newProjectCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage construction projects",
	}

	cmd.AddCommand(newProjectCreateCmd(a), newProjectListCmd(a))
	return cmd
}

func newProjectCreateCmd(a *app.App) *cobra.Command {
	var (
		form      controller.ProjectForm
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := controller.NewProjectController(a.Client, notifier(cmd))
			c.Form = form

			if imagePath != "" {
				file, err := os.Open(imagePath)
				if err != nil {
					return fmt.Errorf("failed to open project image: %w", err)
				}
				defer file.Close()
				c.Image = file
				c.ImageName = filepath.Base(imagePath)
			}

			return c.Submit(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&form.ProjectName, "name", "", "project name")
	cmd.Flags().StringVar(&form.Address, "address", "", "site address")
	cmd.Flags().StringVar(&form.Description, "description", "", "project description")
	cmd.Flags().StringVar(&form.ManagerID, "manager", "", "site manager user ID")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to a project image (optional)")

	cmd.Flags().Float64Var(&form.PlumberFees, "plumber-fee", 0, "flat plumber fee")
	cmd.Flags().Float64Var(&form.ElectricianFees, "electrician-fee", 0, "flat electrician fee")
	cmd.Flags().Float64Var(&form.CarpenterFees, "carpenter-fee", 0, "flat carpenter fee")
	cmd.Flags().Float64Var(&form.PainterFees, "painter-fee", 0, "flat painter fee")
	cmd.Flags().Float64Var(&form.CleanerFees, "cleaner-fee", 0, "flat cleaner fee")
	cmd.Flags().Float64Var(&form.MechanicFees, "mechanic-fee", 0, "flat mechanic fee")
	cmd.Flags().Float64Var(&form.HVACTechnicianFees, "hvac-fee", 0, "flat HVAC technician fee")
	cmd.Flags().Float64Var(&form.MasonFees, "mason-fee", 0, "flat mason fee")
	cmd.Flags().Float64Var(&form.WelderFees, "welder-fee", 0, "flat welder fee")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("manager")

	return cmd
}

func newProjectListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Client.AllProjects(cmd.Context())
			if err != nil {
				return err
			}

			if len(resp.Result) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found")
				return nil
			}

			for _, p := range resp.Result {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tmanager=%s\tworkers=%d\n",
					p.ProjectName, p.Status, p.Address, p.Manager.UserName, p.WorkerCount())
			}
			return nil
		},
	}
}
