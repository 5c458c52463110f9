package model

// Users sheet column names.
const (
	ColUsername       = "Username"
	ColPassword       = "Password"
	ColName           = "Name"
	ColMobile         = "Mobile"
	ColEmail          = "Email"
	ColBranch         = "Branch"
	ColCreatedAt      = "Created At"
	ColLastLogin      = "Last Login"
	ColApprovalStatus = "Approval Status"
)

// ApprovalGranted is the exact, case-sensitive cell value an admin sets in
// the sheet to allow login. Anything else (including "approved") blocks it.
const ApprovalGranted = "Approved"

// UserAccount is one row of the users sheet. Username and Mobile are each
// unique across rows; Password holds the bcrypt hash, never the plaintext.
type UserAccount struct {
	Username       string `json:"username"`
	PasswordHash   string `json:"-"`
	Name           string `json:"name"`
	Mobile         string `json:"mobile"`
	Email          string `json:"email,omitempty"`
	Branch         string `json:"branch"`
	CreatedAt      string `json:"created_at"`
	LastLogin      string `json:"last_login,omitempty"` // empty until first login
	ApprovalStatus string `json:"approval_status"`      // "" = pending
}
