package resp

import (
	"errors"
	"net/http"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}

// ServerError hides the underlying message; store failures all look alike
// to the caller.
func ServerError(c *gin.Context, err error) {
	_ = err
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "store_failure"})
}

// Error maps the apperr taxonomy to status codes with machine-readable
// reason strings.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		Unauthorized(c, apperr.ErrUnauthenticated.Error())
	case errors.Is(err, apperr.ErrForbidden):
		Forbidden(c, apperr.ErrForbidden.Error())
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, apperr.ErrNotFound.Error())
	case errors.Is(err, apperr.ErrInvalidBody):
		BadRequest(c, apperr.ErrInvalidBody.Error())
	case errors.Is(err, apperr.ErrInvalidTransition):
		Conflict(c, apperr.ErrInvalidTransition.Error())
	default:
		ServerError(c, err)
	}
}
