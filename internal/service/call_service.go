package service

import (
	"errors"
	"sync"
	"time"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/config"
	"nurse-call-backend/internal/hub"
	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"
)

// CallService orchestrates call admission, nurse resolution, persistence
// and notification dispatch, and owns the acknowledgment transition.
type CallService struct {
	callRepo *repository.CallRepository
	bedRepo  *repository.BedRepository
	resolver *ResolverService
	notifier *NotificationService
	liveHub  *hub.Hub

	cooldown time.Duration
	ttl      time.Duration

	// one mutex per bed so the cooldown check and the insert behave as a
	// single step; concurrent presses on different beds never contend
	bedLocks sync.Map
}

func NewCallService(
	callRepo *repository.CallRepository,
	bedRepo *repository.BedRepository,
	resolver *ResolverService,
	notifier *NotificationService,
	liveHub *hub.Hub,
	cfg config.CallConfig,
) *CallService {
	return &CallService{
		callRepo: callRepo,
		bedRepo:  bedRepo,
		resolver: resolver,
		notifier: notifier,
		liveHub:  liveHub,
		cooldown: cfg.Cooldown,
		ttl:      cfg.TTL,
	}
}

func (s *CallService) lockBed(bedID uint) *sync.Mutex {
	mu, _ := s.bedLocks.LoadOrStore(bedID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CreateCall handles a bedside button press: admission control, nurse
// resolution, persistence, then best-effort notification. The call is
// either fully persisted with a resolved nurse or not created at all;
// notification failures never affect the result.
func (s *CallService) CreateCall(bedID uint) (*models.Call, error) {
	bed, err := s.bedRepo.GetBedByID(bedID)
	if err != nil {
		return nil, err
	}

	mu := s.lockBed(bedID)
	mu.Lock()
	defer mu.Unlock()

	last, err := s.callRepo.GetLatestActiveCallForBed(bedID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if last != nil && now.Sub(last.CreatedAt) < s.cooldown {
		return nil, apperrors.ErrCooldownActive
	}

	nurse, err := s.resolver.ResolveNurseForBed(bed)
	if err != nil {
		return nil, err
	}

	patient, err := s.bedRepo.GetCurrentPatient(bedID)
	if err != nil {
		return nil, err
	}

	call := &models.Call{
		BedID:     bed.ID,
		NurseID:   nurse.ID,
		Status:    models.CallStatusActive,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if patient != nil {
		call.PatientID = &patient.ID
	}

	if err := s.callRepo.CreateCall(call); err != nil {
		return nil, err
	}

	call.Bed = *bed
	call.Patient = patient
	call.Nurse = *nurse

	s.notifier.DispatchCall(call)

	return call, nil
}

// AcknowledgeCall moves an ACTIVE call to ACKNOWLEDGED. Acknowledging a
// call that is already acknowledged or expired is rejected.
func (s *CallService) AcknowledgeCall(callID uint) (*models.Call, error) {
	call, err := s.callRepo.GetCallByID(callID)
	if err != nil {
		return nil, err
	}

	ok, err := s.callRepo.AcknowledgeActiveCall(callID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrCallNotActive
	}

	call.Status = models.CallStatusAcknowledged
	return call, nil
}

// GetActiveCallsForNurse lists the active calls routed to a nurse, newest
// first. The identifier may be a nurse id or a user account id; an
// unresolvable identifier yields an empty list, not an error.
func (s *CallService) GetActiveCallsForNurse(idOrUserID uint) ([]models.Call, error) {
	nurse, err := s.resolver.ResolveNurse(idOrUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNurseNotFound) {
			return []models.Call{}, nil
		}
		return nil, err
	}
	return s.callRepo.GetActiveCallsForNurse(nurse.ID, time.Now().UTC())
}

// Subscribe opens a live call stream for a nurse and returns the channel
// plus a cancel function the caller must invoke on disconnect. When the
// identifier cannot be resolved the subscription is keyed on it as given,
// mirroring how the stream endpoint predates strict id validation.
func (s *CallService) Subscribe(idOrUserID uint) (<-chan models.Call, func()) {
	nurseID := idOrUserID
	if nurse, err := s.resolver.ResolveNurse(idOrUserID); err == nil {
		nurseID = nurse.ID
	}

	ch := s.liveHub.Register(nurseID)
	cancel := func() { s.liveHub.Unregister(nurseID, ch) }
	return ch, cancel
}
