package service

import (
	"encoding/json"
	"net/http"

	"nurse-call-backend/internal/config"
	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"

	webpush "github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"
)

const pushTTLSeconds = 60

// PushService stores browser push endpoints per nurse and sends VAPID web
// push notifications to them. Sending is best-effort; endpoints the push
// service reports gone are removed.
type PushService struct {
	pushRepo  *repository.PushSubscriptionRepository
	nurseRepo *repository.NurseRepository
	cfg       config.PushConfig
	logger    *zap.Logger
}

func NewPushService(
	pushRepo *repository.PushSubscriptionRepository,
	nurseRepo *repository.NurseRepository,
	cfg config.PushConfig,
	logger *zap.Logger,
) *PushService {
	if cfg.VAPIDPrivateKey == "" {
		logger.Warn("VAPID keys not configured, web push sending disabled")
	}
	return &PushService{
		pushRepo:  pushRepo,
		nurseRepo: nurseRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// PublicKey returns the VAPID public key clients need to create their
// push endpoint.
func (s *PushService) PublicKey() string {
	return s.cfg.VAPIDPublicKey
}

// SaveSubscription stores a push endpoint for a nurse
func (s *PushService) SaveSubscription(nurseID uint, endpoint, p256dh, auth string) (*models.PushSubscription, error) {
	nurse, err := s.nurseRepo.GetNurseByID(nurseID)
	if err != nil {
		return nil, err
	}

	sub := &models.PushSubscription{
		NurseID:  nurse.ID,
		Endpoint: endpoint,
		P256dh:   p256dh,
		Auth:     auth,
	}
	if err := s.pushRepo.CreateSubscription(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// SendPushToNurse sends a notification to every endpoint registered to the
// nurse. Individual send failures are logged and skipped; only a failure
// to read the subscription list is returned.
func (s *PushService) SendPushToNurse(nurseID uint, title, body string) error {
	if s.cfg.VAPIDPrivateKey == "" {
		s.logger.Debug("web push disabled, skipping", zap.Uint("nurse_id", nurseID))
		return nil
	}

	subs, err := s.pushRepo.GetSubscriptionsForNurse(nurseID)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{"title": title, "body": body})
	if err != nil {
		return err
	}

	for _, sub := range subs {
		resp, err := webpush.SendNotification(payload, &webpush.Subscription{
			Endpoint: sub.Endpoint,
			Keys: webpush.Keys{
				P256dh: sub.P256dh,
				Auth:   sub.Auth,
			},
		}, &webpush.Options{
			TTL:             pushTTLSeconds,
			Subscriber:      s.cfg.Subscriber,
			VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
			VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		})
		if err != nil {
			s.logger.Warn("web push send failed",
				zap.Uint("subscription_id", sub.ID),
				zap.Uint("nurse_id", nurseID),
				zap.Error(err))
			continue
		}

		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
			// endpoint no longer exists on the push service
			if err := s.pushRepo.DeleteSubscription(sub.ID); err != nil {
				s.logger.Warn("failed to remove gone push endpoint",
					zap.Uint("subscription_id", sub.ID), zap.Error(err))
			} else {
				s.logger.Info("removed gone push endpoint",
					zap.Uint("subscription_id", sub.ID), zap.Uint("nurse_id", nurseID))
			}
		}
		resp.Body.Close()
	}

	return nil
}
