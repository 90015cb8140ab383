package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialgraph/friendsdb/internal/services"
	"github.com/socialgraph/friendsdb/internal/types"
	"github.com/socialgraph/friendsdb/internal/utils"
	"gorm.io/gorm"
)

// UserHandler handles user lifecycle routes
type UserHandler struct {
	DB *gorm.DB
}

type createUserBody struct {
	Name string        `json:"name"`
	Age  types.FlexInt `json:"age"`
}

type updateUserBody struct {
	Name *string        `json:"name"`
	Age  *types.FlexInt `json:"age"`
}

// CreateUser handles POST /api/users
// @Summary Create a user
// @Description Create a user with a unique display name and an age
// @Tags Users
// @Accept json
// @Produce json
// @Param body body createUserBody true "Display name and age"
// @Success 201 {object} services.UserView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var body createUserBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "users.validation.input")
	}

	view, err := services.CreateUser(h.DB, body.Name, body.Age.Int())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, view, fiber.StatusCreated)
}

// GetUser handles GET /api/users/:id
// @Summary Get a user
// @Description Get the aggregated view of a user: stored fields, friend ids, hobby names and popularity score
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} services.UserView
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	view, err := services.GetUser(h.DB, c.Params("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, view, fiber.StatusOK)
}

// ListUsers handles GET /api/users
// @Summary List users
// @Description List every user id, name and age
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {array} services.UserSummary
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	summaries, err := services.ListUsers(h.DB)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, summaries, fiber.StatusOK)
}

// UpdateUser handles PATCH /api/users/:id
// @Summary Update a user
// @Description Rename a user and/or change its age; omitted fields are left alone
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body updateUserBody true "Optional name and age"
// @Success 200 {object} services.UserView
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var body updateUserBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "users.validation.input")
	}
	if body.Name == nil && body.Age == nil {
		return utils.ErrorResponse(c, "Nothing to update", fiber.StatusBadRequest, "users.validation.input")
	}

	var age *int
	if body.Age != nil {
		v := body.Age.Int()
		age = &v
	}

	view, err := services.UpdateUser(h.DB, c.Params("id"), body.Name, age)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, view, fiber.StatusOK)
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete a user
// @Description Delete a user with no remaining friendships; hobby links are removed in the same operation
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := services.DeleteUser(h.DB, c.Params("id")); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
