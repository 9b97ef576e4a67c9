// Package authdto holds the auth request and response bodies.
package authdto

// LoginInput is the credentials body for POST /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Hwid     string `json:"hwid" validate:"omitempty,max=128"`
}

// LoginOutput returns the bearer token for the device.
type LoginOutput struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// LogoutInput names the device to sign out. Empty means the device the
// presented token belongs to.
type LogoutInput struct {
	Hwid string `json:"hwid" validate:"omitempty,max=128"`
}
