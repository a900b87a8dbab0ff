package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/navaja-app/barbershop-api/internal/audit"
	domainauth "github.com/navaja-app/barbershop-api/internal/domain/auth"
	"github.com/navaja-app/barbershop-api/internal/domain/role"
	"github.com/navaja-app/barbershop-api/internal/httperr"
	"github.com/navaja-app/barbershop-api/internal/models"
	"github.com/navaja-app/barbershop-api/internal/notify"
	"github.com/navaja-app/barbershop-api/internal/token"
)

// ======================================================
// USE CASE
// ======================================================

type Auth struct {
	users    domainauth.UserRepository
	sessions domainauth.SessionStore
	codes    domainauth.CodeStore
	sender   notify.CodeSender
	tokens   *token.Manager
	audit    *audit.Dispatcher

	tokenTTL       time.Duration
	twoFactorTTL   time.Duration
	resendCooldown time.Duration
}

func New(
	users domainauth.UserRepository,
	sessions domainauth.SessionStore,
	codes domainauth.CodeStore,
	sender notify.CodeSender,
	tokens *token.Manager,
	auditDispatcher *audit.Dispatcher,
	tokenTTL time.Duration,
	twoFactorTTL time.Duration,
	resendCooldown time.Duration,
) *Auth {
	return &Auth{
		users:    users,
		sessions: sessions,
		codes:    codes,
		sender:   sender,
		tokens:   tokens,
		audit:    auditDispatcher,

		tokenTTL:       tokenTTL,
		twoFactorTTL:   twoFactorTTL,
		resendCooldown: resendCooldown,
	}
}

// ======================================================
// RESULTS
// ======================================================

type LoginResult struct {
	RequiresTwoFactor bool         `json:"requiresTwoFactor"`
	Token             string       `json:"token,omitempty"`
	User              *models.User `json:"user,omitempty"`
	RedirectTo        string       `json:"redirectTo,omitempty"`
	Message           string       `json:"message"`
}

type VerifyResult struct {
	Success    bool         `json:"success"`
	Token      string       `json:"token"`
	User       *models.User `json:"user"`
	RedirectTo string       `json:"redirectTo"`
}

// The credential failure is deliberately generic: it must not reveal
// whether the email exists or which factor was wrong.
func errBadCredentials() error {
	return httperr.ErrAuthentication("invalid_credentials", "Credenciales inválidas.")
}

func errBadCode() error {
	return httperr.ErrAuthentication("invalid_code", "Código inválido o expirado.")
}

// ======================================================
// LOGIN
// ======================================================

func (uc *Auth) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, errBadCredentials()
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, errBadCredentials()
	}

	if user.TwoFactorEnabled {
		if err := uc.issueCode(ctx, email); err != nil {
			return nil, err
		}
		return &LoginResult{
			RequiresTwoFactor: true,
			Message:           "Código de verificación enviado a tu correo.",
		}, nil
	}

	tokenString, err := uc.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_logged_in",
		Entity: "user",
	})

	return &LoginResult{
		Token:      tokenString,
		User:       user,
		RedirectTo: role.Normalize(user.Role).RedirectTarget(),
		Message:    "Inicio de sesión exitoso.",
	}, nil
}

// ======================================================
// VERIFY 2FA
// ======================================================

func (uc *Auth) VerifyTwoFactor(ctx context.Context, email, code string) (*VerifyResult, error) {
	email = normalizeEmail(email)

	if len(code) != codeLength {
		return nil, errBadCode()
	}

	// Expiry needs no bookkeeping here: an expired code is simply no
	// longer in the store. The resend cooldown is left untouched on a
	// miss.
	stored, err := uc.codes.GetCode(ctx, email)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != code {
		return nil, errBadCode()
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, errBadCode()
		}
		return nil, err
	}

	if err := uc.codes.DeleteCode(ctx, email); err != nil {
		return nil, err
	}

	tokenString, err := uc.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_logged_in_2fa",
		Entity: "user",
	})

	return &VerifyResult{
		Success:    true,
		Token:      tokenString,
		User:       user,
		RedirectTo: role.Normalize(user.Role).RedirectTarget(),
	}, nil
}

// ======================================================
// RESEND 2FA
// ======================================================

// ResendCode reissues the one-time code, replacing the previous one.
// While the cooldown key is alive the call is rejected, never a
// silent success.
func (uc *Auth) ResendCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return errBadCredentials()
		}
		return err
	}
	if !user.TwoFactorEnabled {
		return errBadCredentials()
	}

	active, err := uc.codes.CooldownActive(ctx, email)
	if err != nil {
		return err
	}
	if active {
		return httperr.ErrConflict("resend_cooldown", "Espera antes de pedir otro código.")
	}

	return uc.issueCode(ctx, email)
}

// ======================================================
// LOGOUT
// ======================================================

// Logout destroys the session behind the token. Unknown sessions are
// fine; logging out twice is not an error.
func (uc *Auth) Logout(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

// ======================================================
// HELPERS
// ======================================================

func (uc *Auth) issueCode(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}

	// SaveCode overwrites any previous code; only the newest one can
	// ever verify.
	if err := uc.codes.SaveCode(ctx, email, code, uc.twoFactorTTL); err != nil {
		return err
	}
	if err := uc.codes.StartCooldown(ctx, email, uc.resendCooldown); err != nil {
		return err
	}

	if err := uc.sender.SendCode(ctx, email, code); err != nil {
		return httperr.ErrTransient("code_dispatch_failed", "No se pudo enviar el código.")
	}
	return nil
}

func (uc *Auth) openSession(ctx context.Context, user *models.User) (string, error) {
	sess := &domainauth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      role.Normalize(user.Role),
		BarberID:  user.BarberID,
		CreatedAt: time.Now(),
	}

	if err := uc.sessions.Save(ctx, sess, uc.tokenTTL); err != nil {
		return "", err
	}

	return uc.tokens.Generate(user, sess.ID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
