package middleware

import (
	"net/http"

	"hris-console/internal/shared/apperror"
	"hris-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrMissingEmployee = apperror.New(
		"INVALID_TOKEN",
		"Employee ID not found in token",
		http.StatusUnauthorized,
	)
	ErrTooManyRequests = apperror.New(
		apperror.CodeTooMany,
		"Too many requests, please slow down",
		http.StatusTooManyRequests,
	)
	ErrRequestInProgress = apperror.New(
		"PROCESSING",
		"Your request is being processed, please wait",
		http.StatusConflict,
	)
)

func abort(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
