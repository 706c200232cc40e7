package handlers

import (
	"errors"
	"net/http"

	"blogserver/internal/service"

	"github.com/gin-gonic/gin"
)

type updateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// @Summary      Update user
// @Description  Overwrites username and email. Only the account owner may update.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "User id"
// @Param        body  body  updateUserRequest  true  "New username and email"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	var input updateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	targetID := c.Param("id")
	err := h.services.Users.Update(c.Request.Context(), callerID(c), targetID, input.Username, input.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "user information updated successfully"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not allowed to update this user"})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to update user information",
			"user_update_failed", err, "id", targetID)
	}
}
