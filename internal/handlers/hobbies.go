package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialgraph/friendsdb/internal/services"
	"github.com/socialgraph/friendsdb/internal/types"
	"github.com/socialgraph/friendsdb/internal/utils"
	"gorm.io/gorm"
)

// HobbyHandler handles user-hobby attachment routes
type HobbyHandler struct {
	DB *gorm.DB
}

type attachHobbyBody struct {
	// Accepts a single name or a list of names.
	Hobbies types.FlexStrings `json:"hobbies"`
}

// AttachHobbies handles POST /api/users/:id/hobbies
// @Summary Attach hobbies to a user
// @Description Attach one or more hobby names, creating unknown hobbies on first use; re-attaching is a no-op
// @Tags Hobbies
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body attachHobbyBody true "Hobby name or list of names"
// @Success 200 {object} services.UserView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id}/hobbies [post]
func (h *HobbyHandler) AttachHobbies(c *fiber.Ctx) error {
	var body attachHobbyBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "hobbies.validation.input")
	}
	if len(body.Hobbies) == 0 {
		return utils.ErrorResponse(c, "At least one hobby name is required", fiber.StatusBadRequest, "hobbies.validation.input")
	}

	userID := c.Params("id")

	var view services.UserView
	for _, name := range body.Hobbies.Slice() {
		var err error
		view, err = services.AttachHobby(h.DB, userID, name)
		if err != nil {
			return utils.DomainErrorResponse(c, err)
		}
	}

	return utils.SuccessResponse(c, view, fiber.StatusOK)
}

// DetachHobby handles DELETE /api/users/:id/hobbies/:name
// @Summary Detach a hobby from a user
// @Description Remove the link between a user and a hobby name; the hobby record itself stays
// @Tags Hobbies
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param name path string true "Hobby name"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id}/hobbies/{name} [delete]
func (h *HobbyHandler) DetachHobby(c *fiber.Ctx) error {
	name, err := pathParam(c, "name")
	if err != nil {
		return utils.ErrorResponse(c, "Invalid hobby name", fiber.StatusBadRequest, "hobbies.validation.input")
	}

	if err := services.DetachHobby(h.DB, c.Params("id"), name); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
