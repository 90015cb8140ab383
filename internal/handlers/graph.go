package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialgraph/friendsdb/internal/services"
	"github.com/socialgraph/friendsdb/internal/utils"
	"gorm.io/gorm"
)

// GraphHandler handles the full-graph projection route
type GraphHandler struct {
	DB *gorm.DB
}

// GetGraph handles GET /api/graph
// @Summary Get the full graph
// @Description Project every user as a node and every friendship as a canonically oriented edge, from one consistent snapshot
// @Tags Graph
// @Accept json
// @Produce json
// @Success 200 {object} services.GraphResult
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /graph [get]
func (h *GraphHandler) GetGraph(c *fiber.Ctx) error {
	result, err := services.GraphView(h.DB)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, result, fiber.StatusOK)
}
