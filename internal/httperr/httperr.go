package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

var statusByKind = map[Kind]int{
	KindValidation:     http.StatusBadRequest,
	KindNotFound:       http.StatusNotFound,
	KindConflict:       http.StatusConflict,
	KindAuthentication: http.StatusUnauthorized,
	KindAuthorization:  http.StatusForbidden,
	KindTransient:      http.StatusServiceUnavailable,
}

// Respond maps a typed error onto its HTTP status. Anything that is not
// an AppError is reported as an internal error without leaking detail.
func Respond(c *gin.Context, err error) {
	var ae AppError
	if errors.As(err, &ae) {
		status, ok := statusByKind[ae.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		Write(c, status, ae.Code, ae.Message)
		return
	}

	Internal(c, "internal_error", "Algo salió mal. Intenta de nuevo.")
}
