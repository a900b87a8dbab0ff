package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/navaja-app/barbershop-api/internal/audit"
	"github.com/navaja-app/barbershop-api/internal/domain/role"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
)

type RegisterInput struct {
	FullName        string
	Email           string
	Phone           string
	Password        string
	RoleID          uint
	EnableTwoFactor bool
}

type RegisterResult struct {
	UserID           uint   `json:"userId"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	Role             string `json:"role"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
	Message          string `json:"message"`
}

func (uc *Auth) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	email := normalizeEmail(in.Email)

	r := role.FromID(in.RoleID)
	if r == role.Unknown {
		return nil, httperr.ErrValidation("invalid_role", "Rol desconocido.")
	}

	exists, err := uc.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrConflict("email_taken", "El correo ya está registrado.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:         in.FullName,
		Email:            email,
		PasswordHash:     string(hashed),
		Phone:            in.Phone,
		RoleID:           r.ID(),
		Role:             r.String(),
		TwoFactorEnabled: in.EnableTwoFactor,
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_registered",
		Entity: "user",
	})

	return &RegisterResult{
		UserID:           user.ID,
		Email:            user.Email,
		FullName:         user.FullName,
		Role:             user.Role,
		TwoFactorEnabled: user.TwoFactorEnabled,
		Message:          "Registro exitoso. Ya puedes iniciar sesión.",
	}, nil
}
