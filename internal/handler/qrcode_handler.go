package handler

import (
	"net/http"

	"nurse-call-backend/internal/service"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type QRCodeHandler struct {
	qrCodeService *service.QRCodeService
}

func NewQRCodeHandler(qrCodeService *service.QRCodeService) *QRCodeHandler {
	return &QRCodeHandler{
		qrCodeService: qrCodeService,
	}
}

// GetQRCodeData resolves a scanned QR token to the public bedside payload.
// Public: the patient-facing call page loads this before raising a call.
func (h *QRCodeHandler) GetQRCodeData(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "QR token is required")
		return
	}

	data, err := h.qrCodeService.GetQRCodeData(token)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, data)
}
