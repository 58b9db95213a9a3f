package handler

import (
	"net/http"

	"nurse-call-backend/internal/service"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type NurseHandler struct {
	nurseService *service.NurseService
}

func NewNurseHandler(nurseService *service.NurseService) *NurseHandler {
	return &NurseHandler{
		nurseService: nurseService,
	}
}

type NurseRequest struct {
	UserID         uint   `json:"user_id" binding:"required"`
	LicenseNumber  string `json:"license_number" binding:"max=50"`
	Specialization string `json:"specialization" binding:"max=100"`
}

type NurseUpdateRequest struct {
	LicenseNumber  string `json:"license_number" binding:"max=50"`
	Specialization string `json:"specialization" binding:"max=100"`
}

type AssignIslandsRequest struct {
	IslandIDs []uint `json:"island_ids" binding:"required"`
}

type AssignBedsRequest struct {
	BedIDs []uint `json:"bed_ids" binding:"required"`
}

// GetNurses lists all nurses with their assignments
func (h *NurseHandler) GetNurses(c *gin.Context) {
	nurses, err := h.nurseService.GetAllNurses()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch nurses")
		return
	}

	utils.SuccessResponse(c, nurses)
}

// GetNurse returns a single nurse
func (h *NurseHandler) GetNurse(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}

	nurse, err := h.nurseService.GetNurseByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, nurse)
}

// CreateNurse creates a nurse record for an existing user (admin only)
func (h *NurseHandler) CreateNurse(c *gin.Context) {
	var req NurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "user_id is required")
		return
	}

	nurse, err := h.nurseService.CreateNurse(
		req.UserID, req.LicenseNumber, req.Specialization, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, nurse)
}

// UpdateNurse updates license and specialization (admin only)
func (h *NurseHandler) UpdateNurse(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}

	var req NurseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse payload")
		return
	}

	nurse, err := h.nurseService.UpdateNurse(id, req.LicenseNumber, req.Specialization, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, nurse)
}

// AssignIslands replaces a nurse's island assignment set (admin only)
func (h *NurseHandler) AssignIslands(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}

	var req AssignIslandsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "island_ids is required")
		return
	}

	nurse, err := h.nurseService.AssignIslands(id, req.IslandIDs, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, nurse)
}

// AssignBeds replaces a nurse's direct bed assignment set (admin only)
func (h *NurseHandler) AssignBeds(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}

	var req AssignBedsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "bed_ids is required")
		return
	}

	nurse, err := h.nurseService.AssignBeds(id, req.BedIDs, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, nurse)
}
