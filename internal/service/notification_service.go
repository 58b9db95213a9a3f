package service

import (
	"fmt"

	"nurse-call-backend/internal/hub"
	"nurse-call-backend/internal/models"

	"go.uber.org/zap"
)

// NotificationService fans a freshly persisted call out to the live
// subscriber hub and to the nurse's push endpoints. Both channels are
// best-effort: failures are logged and absorbed, never surfaced to the
// caller that created the call.
type NotificationService struct {
	liveHub     *hub.Hub
	pushService *PushService
	logger      *zap.Logger
}

func NewNotificationService(liveHub *hub.Hub, pushService *PushService, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		liveHub:     liveHub,
		pushService: pushService,
		logger:      logger,
	}
}

// DispatchCall delivers a call over the live stream and as web push
// notifications. Must only be called after the call is persisted.
func (s *NotificationService) DispatchCall(call *models.Call) {
	delivered := s.liveHub.Deliver(call.NurseID, *call)
	s.logger.Debug("live delivery attempted",
		zap.Uint("call_id", call.ID),
		zap.Uint("nurse_id", call.NurseID),
		zap.Bool("delivered", delivered))

	title := "Emergency call"
	body := fmt.Sprintf("%s in bed %s is calling.", patientLabel(call), bedLabel(call))
	if err := s.pushService.SendPushToNurse(call.NurseID, title, body); err != nil {
		s.logger.Error("push delivery failed",
			zap.Uint("call_id", call.ID),
			zap.Uint("nurse_id", call.NurseID),
			zap.Error(err))
	}
}

func patientLabel(call *models.Call) string {
	if call.Patient != nil && call.Patient.User.FullName != "" {
		return call.Patient.User.FullName
	}
	return "A patient"
}

func bedLabel(call *models.Call) string {
	if call.Bed.BedNumber != "" {
		return call.Bed.BedNumber
	}
	return fmt.Sprintf("%d", call.BedID)
}
