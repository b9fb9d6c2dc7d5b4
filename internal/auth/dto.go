package auth

import "github.com/TuancoderLo/perfume-api/internal/members"

// RegisterRequest carries a new account. IsAdmin is accepted in the payload
// but only honored on the admin registration path.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	YearOfBirth int    `json:"YOB" validate:"required,gte=1900,lte=2100"`
	Gender      bool   `json:"gender"`
	IsAdmin     bool   `json:"isAdmin"`
}

// LoginRequest carries password credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries a Google sign-in. IDToken is always required.
// When email and name are both supplied they are used as-is; only a bare
// token is verified against the configured client ID.
type GoogleLoginRequest struct {
	IDToken  string `json:"idToken"`
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
}

// RegisterResponse acknowledges account creation. No token is issued.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the bearer token issued on login.
type LoginResponse struct {
	Token string `json:"token"`
}

// GoogleLoginResponse carries the token plus the member it signs in.
type GoogleLoginResponse struct {
	Token string            `json:"token"`
	User  members.MemberDTO `json:"user"`
}
