package handler

import (
	"io"
	"net/http"

	"nurse-call-backend/internal/service"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CallHandler struct {
	callService *service.CallService
}

func NewCallHandler(callService *service.CallService) *CallHandler {
	return &CallHandler{
		callService: callService,
	}
}

type CreateCallRequest struct {
	BedID uint `json:"bed_id" binding:"required"`
}

// CreateCall raises a call from a bed. Public: the bedside button and the
// QR call page hit this without credentials.
func (h *CallHandler) CreateCall(c *gin.Context) {
	var req CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "bed_id is required")
		return
	}

	call, err := h.callService.CreateCall(req.BedID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":         call.ID,
		"status":     call.Status,
		"created_at": call.CreatedAt,
	})
}

// GetCallsForNurse lists the active calls routed to a nurse, newest first.
// The identifier may be a nurse id or a user account id.
func (h *CallHandler) GetCallsForNurse(c *gin.Context) {
	nurseID, err := parseUintParam(c, "nurseId")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}

	calls, err := h.callService.GetActiveCallsForNurse(nurseID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, calls)
}

// StreamCalls opens the live call stream for a nurse as server-sent
// events. The connection stays open until the client disconnects; every
// call routed to the nurse arrives as one "call" event.
func (h *CallHandler) StreamCalls(c *gin.Context) {
	nurseID, err := parseUintParam(c, "nurseId")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}

	ch, cancel := h.callService.Subscribe(nurseID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case call, ok := <-ch:
			if !ok {
				// hub closed the channel: replaced by a newer
				// subscription or dropped as a stalled consumer
				return false
			}
			c.SSEvent("call", call)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// AcknowledgeCall marks an active call as acknowledged by its nurse
func (h *CallHandler) AcknowledgeCall(c *gin.Context) {
	callID, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid call ID")
		return
	}

	call, err := h.callService.AcknowledgeCall(callID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, call)
}
