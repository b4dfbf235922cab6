package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-admin/internal/core/auth"
	"go-shop-admin/internal/service"
	resp "go-shop-admin/internal/transport/http/response"
)

// writeErr maps service failures onto the envelope. Unknown errors are
// logged and come back as a generic 500; their details never reach the
// client.
func writeErr(c *gin.Context, l *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrEmailUnverified),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrNoChanges),
		errors.Is(err, service.ErrPasswordMismatch):
		c.JSON(resp.StatusBadRequest, resp.Error(resp.StatusBadRequest, err.Error()))
	case errors.Is(err, service.ErrAuthFailed):
		c.JSON(resp.StatusUnauthorized, resp.Error(resp.StatusUnauthorized, "authentication failed, you are not a valid user"))
	case errors.Is(err, auth.ErrTokenExpired), errors.Is(err, auth.ErrTokenInvalid):
		c.JSON(resp.StatusUnauthorized, resp.Error(resp.StatusUnauthorized, "please provide a valid token, your token might be expired"))
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound):
		c.JSON(resp.StatusNotFound, resp.Error(resp.StatusNotFound, err.Error()))
	default:
		l.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(resp.StatusServerError, resp.Error(resp.StatusServerError, "something went wrong"))
	}
}
