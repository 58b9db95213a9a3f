package service

import (
	"errors"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"
)

// ResolverService maps beds to their responsible nurse and normalizes the
// two identifier kinds (nurse id vs. user account id) accepted at the API
// boundary into a canonical nurse record.
type ResolverService struct {
	nurseRepo *repository.NurseRepository
}

func NewResolverService(nurseRepo *repository.NurseRepository) *ResolverService {
	return &ResolverService{nurseRepo: nurseRepo}
}

// ResolveNurseForBed finds the nurse responsible for a bed. Direct bed
// assignments win over island assignments; within a tier the lowest nurse
// id wins. Both tiers are indexed lookups, not scans over all nurses.
func (s *ResolverService) ResolveNurseForBed(bed *models.Bed) (*models.Nurse, error) {
	nurse, err := s.nurseRepo.FindNurseByAssignedBed(bed.ID)
	if err != nil {
		return nil, err
	}
	if nurse != nil {
		return nurse, nil
	}

	nurse, err = s.nurseRepo.FindNurseByAssignedIsland(bed.IslandID)
	if err != nil {
		return nil, err
	}
	if nurse != nil {
		return nurse, nil
	}

	return nil, apperrors.ErrNoNurseAssigned
}

// ResolveNurse accepts either a user account id or a nurse id and returns
// the nurse record. The user id is tried first, matching how clients hold
// their own login id rather than the nurse row id.
func (s *ResolverService) ResolveNurse(idOrUserID uint) (*models.Nurse, error) {
	nurse, err := s.nurseRepo.GetNurseByUserID(idOrUserID)
	if err == nil {
		return nurse, nil
	}
	if !errors.Is(err, apperrors.ErrNurseNotFound) {
		return nil, err
	}
	return s.nurseRepo.GetNurseByID(idOrUserID)
}
