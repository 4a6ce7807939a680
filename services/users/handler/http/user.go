package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ridenaija/ridenaija/internal/pkg/logger"
	"github.com/ridenaija/ridenaija/internal/utils"
	"github.com/ridenaija/ridenaija/services/users"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userUC users.UserUC,
) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// GetProfile returns the account of the authenticated user. The identity
// comes from the JWT claims, never from the request.
func (h *UserHandler) GetProfile(c echo.Context) error {
	rawID := c.Get("user_id")
	if rawID == nil {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	userID, err := uuid.Parse(fmt.Sprintf("%v", rawID))
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to load user profile",
			logger.Err(err),
			logger.String("user_id", userID.String()),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to load profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", user)
}
