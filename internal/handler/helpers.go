package handler

import (
	"errors"
	"net/http"
	"strconv"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseUintParam parses a numeric path parameter
func parseUintParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

// currentUserID returns the authenticated user's id set by the auth middleware
func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get("userID")
	id, _ := userID.(uint)
	return id
}

// handleServiceError maps service errors onto HTTP statuses
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrIslandNotFound),
		errors.Is(err, apperrors.ErrBedNotFound),
		errors.Is(err, apperrors.ErrPatientNotFound),
		errors.Is(err, apperrors.ErrNurseNotFound),
		errors.Is(err, apperrors.ErrCallNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrNoNurseAssigned),
		errors.Is(err, apperrors.ErrCooldownActive),
		errors.Is(err, apperrors.ErrCallNotActive),
		errors.Is(err, apperrors.ErrBedOccupied),
		errors.Is(err, apperrors.ErrIslandNotEmpty),
		errors.Is(err, apperrors.ErrUsernameTaken):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidRefreshToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
