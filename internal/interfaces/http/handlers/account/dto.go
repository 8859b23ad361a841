package account

import (
	"helpdesk/internal/application/account/usecases"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
}

func (r RegisterRequest) ToCommand(staff bool) usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Staff:    staff,
	}
}

type LoginRequest struct {
	// UsernameOrEmail matches either column.
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
