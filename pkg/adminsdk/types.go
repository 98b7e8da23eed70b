package adminsdk

// ============================================================================
// Roles and worker trades
// ============================================================================

// Member roles an invitation can carry.
const (
	RoleAdmin       = "ADMIN"
	RoleSiteManager = "SITE_MANAGER"
	RoleWorker      = "WORKER"
)

// Worker trade types accepted by the invite endpoint.
const (
	WorkerTypePlumber        = "Plumber"
	WorkerTypeElectrician    = "Electrician"
	WorkerTypeCarpenter      = "Carpenter"
	WorkerTypePainter        = "Painter"
	WorkerTypeCleaner        = "Cleaner"
	WorkerTypeMechanic       = "Mechanic"
	WorkerTypeHVACTechnician = "HVAC_Technician"
	WorkerTypeMason          = "Mason"
	WorkerTypeWelder         = "Welder"
)

// WorkerTypes lists every accepted trade, in display order.
var WorkerTypes = []string{
	WorkerTypePlumber,
	WorkerTypeElectrician,
	WorkerTypeCarpenter,
	WorkerTypePainter,
	WorkerTypeCleaner,
	WorkerTypeMechanic,
	WorkerTypeHVACTechnician,
	WorkerTypeMason,
	WorkerTypeWelder,
}

// ============================================================================
// Common envelope
// ============================================================================

// MessageResponse is the backend's generic mutation acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============================================================================
// Authentication
// ============================================================================

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the identity and credential issued on successful login.
type LoginResult struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

// LoginResponse wraps the login result in the backend's envelope.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Result  LoginResult `json:"result"`
}

// OTPRequest addresses one-time-passcode issuance to an account email.
type OTPRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest submits the emailed passcode for verification.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest sets a new password using a reset credential. The
// credential itself travels as an Authorization header override, not in the
// body.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ChangePasswordRequest sets a new password for the authenticated user.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ============================================================================
// Invitations and registration
// ============================================================================

// InviteRequest asks the backend to email an invitation. WorkerType is only
// meaningful (and only sent) when Role is WORKER. Duplicate sends to the
// same address are allowed; the backend does not deduplicate.
type InviteRequest struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	WorkerType string `json:"workerType,omitempty"`
}

// RegisterRequest redeems an invitation token to create an account. The
// token is passed through exactly as received; the backend rejects the call
// when it is invalid or expired.
type RegisterRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

// ============================================================================
// Users and profiles
// ============================================================================

// User is a platform member as returned by user listings.
type User struct {
	ID           string `json:"id"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	WorkerType   string `json:"workerType,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// ProfileResponse wraps the authenticated user's profile.
type ProfileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  User   `json:"result"`
}

// AllUsersParams parameterizes the paginated user listing.
type AllUsersParams struct {
	// Search is a free-text filter over names and emails.
	Search string

	// Role restricts the listing to one role. Empty means all roles.
	Role string

	// Page is 1-based. Zero values are sent as-is; the backend applies its
	// own defaults.
	Page  int
	Limit int
}

// PageMeta describes the pagination of a listing response.
type PageMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// UsersResult is one page of the user listing.
type UsersResult struct {
	Data []User   `json:"data"`
	Meta PageMeta `json:"meta"`
}

// UsersResponse wraps a paginated user listing.
type UsersResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Result  UsersResult `json:"result"`
}

// SiteManagersResponse wraps the unpaginated site-manager listing.
type SiteManagersResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  []User `json:"result"`
}

// UpdateProfileRequest updates the authenticated user's profile fields.
// Zero-valued fields are omitted and left unchanged.
type UpdateProfileRequest struct {
	UserName string `json:"userName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// UpdateImageRequest points the profile at an already-hosted image URL.
type UpdateImageRequest struct {
	ProfileImage string `json:"profileImage"`
}

// ============================================================================
// Projects
// ============================================================================

// CreateProjectRequest is the metadata blob of a project creation call. It
// travels JSON-encoded inside a multipart form field, alongside an optional
// image attachment. Fee fields are flat amounts per trade and must be
// non-negative.
type CreateProjectRequest struct {
	ProjectName string `json:"projectName"`
	Address     string `json:"address"`
	Description string `json:"description"`

	PlumberFees        float64 `json:"plumberFees"`
	ElectricianFees    float64 `json:"electricianFees"`
	CarpenterFees      float64 `json:"carpenterFees"`
	PainterFees        float64 `json:"painterFees"`
	CleanerFees        float64 `json:"cleanerFees"`
	MechanicFees       float64 `json:"mechanicFees"`
	HVACTechnicianFees float64 `json:"hvacTechnicianFees"`
	MasonFees          float64 `json:"masonFees"`
	WelderFees         float64 `json:"welderFees"`

	ManagerID string `json:"managerId"`
}

// ProjectManager identifies the site manager assigned to a project.
type ProjectManager struct {
	ID       string `json:"id,omitempty"`
	UserName string `json:"userName"`
}

// ProjectCount carries the relation counts the backend attaches to a
// project listing entry.
type ProjectCount struct {
	WorkerProfiles int `json:"workerProfiles"`
}

// Project is a construction project as returned by the listing. Projects
// are never edited or deleted through this surface.
type Project struct {
	ID           string         `json:"id"`
	ProjectName  string         `json:"projectName"`
	Address      string         `json:"address"`
	Description  string         `json:"description"`
	Status       string         `json:"status"`
	ProjectImage string         `json:"projectImage,omitempty"`
	Manager      ProjectManager `json:"manager"`
	Count        ProjectCount   `json:"_count"`
}

// WorkerCount reports how many workers are assigned to the project.
func (p Project) WorkerCount() int {
	return p.Count.WorkerProfiles
}

// CreateProjectResponse wraps the created project.
type CreateProjectResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Result  Project `json:"result"`
}

// ProjectsResponse wraps the project listing.
type ProjectsResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Result  []Project `json:"result"`
}
