package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozan/alumnisphere/internal/app/models/dto"
	"github.com/ozan/alumnisphere/internal/pkg/apperrors"
	"github.com/ozan/alumnisphere/internal/pkg/logger"
)

// HandleAPIError maps application errors to the platform's HTTP statuses and
// flat {"message": ...} bodies. Anything unrecognized becomes a 500 with a
// generic body; internal detail is only ever logged.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("User already exists"))
	case errors.Is(err, apperrors.ErrUniversityAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("University already exists"))
	case errors.Is(err, apperrors.ErrPostNotFound):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Referenced post does not exist"))
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrWrongInteractionType):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(err.Error()))
	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusForbidden, dto.NewMessageResponse("Forbidden"))
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Unauthorized"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewMessageResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInteractionNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Interaction not found or user not authorized"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("User not found"))
	case errors.Is(err, apperrors.ErrUniversityNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("University not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse(err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Internal Server Error"))
	}
}
