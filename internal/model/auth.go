package model

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required,min=6,max=60"`
	RememberMe      bool   `json:"remember_me"`
}

type TokenResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
}

type AuthMeResponse struct {
	UserID        int64  `json:"user_id"`
	Email         string `json:"email"`
	Authenticated bool   `json:"authenticated"`
}

// AuthUser is the minimal identity attached to a request after token
// verification. Authorization decisions (role checks) happen downstream.
type AuthUser struct {
	ID    int64
	Email string
}
