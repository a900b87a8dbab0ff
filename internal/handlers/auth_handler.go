package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/middleware"
	ucAuth "github.com/navaja-app/barbershop-api/internal/usecase/auth"
	"github.com/navaja-app/barbershop-api/internal/validators"
)

type AuthHandler struct {
	auth *ucAuth.Auth
}

func NewAuthHandler(auth *ucAuth.Auth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	RoleID          uint   `json:"roleId" binding:"required"`
	EnableTwoFactor bool   `json:"enableTwoFactor"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyTwoFactorRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	result, err := h.auth.Register(c.Request.Context(), ucAuth.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		RoleID:          req.RoleID,
		EnableTwoFactor: req.EnableTwoFactor,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) VerifyTwoFactor(c *gin.Context) {
	var req VerifyTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	result, err := h.auth.VerifyTwoFactor(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ResendTwoFactor takes either {"email": "..."} or a bare JSON string,
// which is what the login page actually posts.
func (h *AuthHandler) ResendTwoFactor(c *gin.Context) {
	email, ok := bindStringOrField(c, "email")
	if !ok {
		httperr.BadRequest(c, "invalid_request", "Correo requerido.")
		return
	}

	if err := h.auth.ResendCode(c.Request.Context(), email); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusAccepted)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.MustGet(middleware.ContextSessionID).(string)

	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
