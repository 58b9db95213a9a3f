package handler

import (
	"net/http"

	"nurse-call-backend/internal/service"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PushHandler struct {
	pushService *service.PushService
}

func NewPushHandler(pushService *service.PushService) *PushHandler {
	return &PushHandler{
		pushService: pushService,
	}
}

// SubscribeRequest mirrors the browser PushSubscription JSON shape
type SubscribeRequest struct {
	Subscription struct {
		Endpoint string `json:"endpoint" binding:"required"`
		Keys     struct {
			P256dh string `json:"p256dh" binding:"required"`
			Auth   string `json:"auth" binding:"required"`
		} `json:"keys" binding:"required"`
	} `json:"subscription" binding:"required"`
}

// GetVAPIDPublicKey returns the public key clients need to create their
// push endpoint
func (h *PushHandler) GetVAPIDPublicKey(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"public_key": h.pushService.PublicKey()})
}

// Subscribe stores a push endpoint for a nurse
func (h *PushHandler) Subscribe(c *gin.Context) {
	nurseID, err := parseUintParam(c, "nurseId")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid subscription payload")
		return
	}

	sub, err := h.pushService.SaveSubscription(
		nurseID,
		req.Subscription.Endpoint,
		req.Subscription.Keys.P256dh,
		req.Subscription.Keys.Auth,
	)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"id": sub.ID})
}
