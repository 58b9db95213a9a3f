package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 300

// QRCodeService builds the QR payload shown on the public bedside page and
// renders the printable QR image for a bed.
type QRCodeService struct {
	bedRepo  *repository.BedRepository
	resolver *ResolverService
}

func NewQRCodeService(bedRepo *repository.BedRepository, resolver *ResolverService) *QRCodeService {
	return &QRCodeService{
		bedRepo:  bedRepo,
		resolver: resolver,
	}
}

// QRCodeData is the payload encoded into a bed's QR code
type QRCodeData struct {
	BedID      uint         `json:"bed_id"`
	BedNumber  string       `json:"bed_number"`
	IslandName string       `json:"island_name"`
	Patient    *PatientInfo `json:"patient,omitempty"`
	Nurse      *NurseInfo   `json:"nurse,omitempty"`
}

type PatientInfo struct {
	FullName            string `json:"full_name"`
	Diagnosis           string `json:"diagnosis,omitempty"`
	Treatment           string `json:"treatment,omitempty"`
	MedicalRecordNumber string `json:"medical_record_number,omitempty"`
}

type NurseInfo struct {
	FullName      string `json:"full_name"`
	LicenseNumber string `json:"license_number,omitempty"`
}

// GetQRCodeData resolves a QR token to its bed payload
func (s *QRCodeService) GetQRCodeData(token string) (*QRCodeData, error) {
	bed, err := s.bedRepo.GetBedByQRToken(token)
	if err != nil {
		return nil, err
	}
	return s.buildQRCodeData(bed)
}

// GenerateQRCodeImage renders the QR payload of a bed as a base64 PNG
// data URI, ready to print and tape to the bed frame.
func (s *QRCodeService) GenerateQRCodeImage(bedID uint) (string, error) {
	bed, err := s.bedRepo.GetBedByID(bedID)
	if err != nil {
		return "", err
	}

	data, err := s.buildQRCodeData(bed)
	if err != nil {
		return "", err
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(string(jsonData), qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func (s *QRCodeService) buildQRCodeData(bed *models.Bed) (*QRCodeData, error) {
	data := &QRCodeData{
		BedID:      bed.ID,
		BedNumber:  bed.BedNumber,
		IslandName: bed.Island.Name,
	}

	patient, err := s.bedRepo.GetCurrentPatient(bed.ID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		data.Patient = &PatientInfo{
			FullName:            patient.User.FullName,
			Diagnosis:           patient.Diagnosis,
			Treatment:           patient.Treatment,
			MedicalRecordNumber: patient.MedicalRecordNumber,
		}
	}

	nurse, err := s.resolver.ResolveNurseForBed(bed)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoNurseAssigned) {
			return nil, err
		}
		// unassigned beds still get a QR code, just without nurse info
	} else {
		data.Nurse = &NurseInfo{
			FullName:      nurse.User.FullName,
			LicenseNumber: nurse.LicenseNumber,
		}
	}

	return data, nil
}
