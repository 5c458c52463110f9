package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,min=1,max=100"`
	Mobile   string `json:"mobile"   validate:"required,min=1"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Branch   string `json:"branch"   validate:"required,min=1"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserResponse carries the public user fields. The password hash is never
// part of any response.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Branch   string `json:"branch"`
	Mobile   string `json:"mobile,omitempty"`
	Email    string `json:"email,omitempty"`
}

type LoginResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token"`
	User   UserResponse `json:"user"`
}

type ApprovalResponse struct {
	Status         string `json:"status"`
	Approved       bool   `json:"approved"`
	ApprovalStatus string `json:"approval_status"`
}
