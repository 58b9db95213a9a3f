package handler

import (
	"net/http"

	"nurse-call-backend/internal/service"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BedHandler struct {
	bedService    *service.BedService
	qrCodeService *service.QRCodeService
}

func NewBedHandler(bedService *service.BedService, qrCodeService *service.QRCodeService) *BedHandler {
	return &BedHandler{
		bedService:    bedService,
		qrCodeService: qrCodeService,
	}
}

type BedRequest struct {
	IslandID  uint   `json:"island_id" binding:"required"`
	BedNumber string `json:"bed_number" binding:"required,max=50"`
}

// GetBeds lists all beds with their occupants
func (h *BedHandler) GetBeds(c *gin.Context) {
	beds, err := h.bedService.GetAllBeds()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch beds")
		return
	}

	utils.SuccessResponse(c, beds)
}

// GetBed returns a single bed with its occupant
func (h *BedHandler) GetBed(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed ID")
		return
	}

	bed, err := h.bedService.GetBedByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, bed)
}

// CreateBed creates a new bed (admin only)
func (h *BedHandler) CreateBed(c *gin.Context) {
	var req BedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "island_id and bed_number are required")
		return
	}

	bed, err := h.bedService.CreateBed(req.IslandID, req.BedNumber, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, bed)
}

// UpdateBed updates an existing bed (admin only)
func (h *BedHandler) UpdateBed(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed ID")
		return
	}

	var req BedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "island_id and bed_number are required")
		return
	}

	bed, err := h.bedService.UpdateBed(id, req.IslandID, req.BedNumber, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, bed)
}

// DeleteBed removes a bed (admin only)
func (h *BedHandler) DeleteBed(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed ID")
		return
	}

	if err := h.bedService.DeleteBed(id, currentUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.MessageResponse(c, "Bed deleted successfully")
}

// GetBedQRCode renders the printable QR image for a bed (admin only)
func (h *BedHandler) GetBedQRCode(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid bed ID")
		return
	}

	image, err := h.qrCodeService.GenerateQRCodeImage(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"qr_code": image})
}
