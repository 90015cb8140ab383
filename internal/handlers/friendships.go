package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialgraph/friendsdb/internal/services"
	"github.com/socialgraph/friendsdb/internal/utils"
	"gorm.io/gorm"
)

// FriendshipHandler handles friendship edge routes
type FriendshipHandler struct {
	DB *gorm.DB
}

type friendshipBody struct {
	UserA string `json:"userA"`
	UserB string `json:"userB"`
}

// LinkUsers handles POST /api/friendships
// @Summary Create a friendship
// @Description Link two users; the pair is normalized so the smaller id is always the source
// @Tags Friendships
// @Accept json
// @Produce json
// @Param body body friendshipBody true "The two user ids to link"
// @Success 201 {object} services.FriendshipEdge
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /friendships [post]
func (h *FriendshipHandler) LinkUsers(c *fiber.Ctx) error {
	var body friendshipBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "friendships.validation.input")
	}
	if body.UserA == "" || body.UserB == "" {
		return utils.ErrorResponse(c, "Both userA and userB are required", fiber.StatusBadRequest, "friendships.validation.input")
	}

	edge, err := services.LinkUsers(h.DB, body.UserA, body.UserB)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, edge, fiber.StatusCreated)
}

// UnlinkUsers handles DELETE /api/friendships
// @Summary Remove a friendship
// @Description Unlink two users in either argument order
// @Tags Friendships
// @Accept json
// @Produce json
// @Param body body friendshipBody true "The two user ids to unlink"
// @Success 204
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /friendships [delete]
func (h *FriendshipHandler) UnlinkUsers(c *fiber.Ctx) error {
	var body friendshipBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "friendships.validation.input")
	}
	if body.UserA == "" || body.UserB == "" {
		return utils.ErrorResponse(c, "Both userA and userB are required", fiber.StatusBadRequest, "friendships.validation.input")
	}

	if err := services.UnlinkUsers(h.DB, body.UserA, body.UserB); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
