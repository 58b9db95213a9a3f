package handler

import (
	"net/http"

	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/service"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type IslandHandler struct {
	islandService *service.IslandService
}

func NewIslandHandler(islandService *service.IslandService) *IslandHandler {
	return &IslandHandler{
		islandService: islandService,
	}
}

type IslandRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// GetIslands lists all islands
func (h *IslandHandler) GetIslands(c *gin.Context) {
	islands, err := h.islandService.GetAllIslands()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch islands")
		return
	}

	utils.SuccessResponse(c, islands)
}

// GetIsland returns a single island
func (h *IslandHandler) GetIsland(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid island ID")
		return
	}

	island, err := h.islandService.GetIslandByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, island)
}

// CreateIsland creates a new island (admin only)
func (h *IslandHandler) CreateIsland(c *gin.Context) {
	var req IslandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Island name is required")
		return
	}

	island := &models.Island{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.islandService.CreateIsland(island, currentUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, island)
}

// UpdateIsland updates an existing island (admin only)
func (h *IslandHandler) UpdateIsland(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid island ID")
		return
	}

	var req IslandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Island name is required")
		return
	}

	island, err := h.islandService.UpdateIsland(id, req.Name, req.Description, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, island)
}

// DeleteIsland removes an island (admin only)
func (h *IslandHandler) DeleteIsland(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid island ID")
		return
	}

	if err := h.islandService.DeleteIsland(id, currentUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Island deleted successfully")
}
