package handler

import (
	"net/http"

	"nurse-call-backend/internal/service"
	"nurse-call-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

type PatientRequest struct {
	UserID              uint   `json:"user_id" binding:"required"`
	Diagnosis           string `json:"diagnosis" binding:"max=1000"`
	Treatment           string `json:"treatment" binding:"max=2000"`
	MedicalRecordNumber string `json:"medical_record_number" binding:"max=50"`
}

type PatientUpdateRequest struct {
	Diagnosis           string `json:"diagnosis" binding:"max=1000"`
	Treatment           string `json:"treatment" binding:"max=2000"`
	MedicalRecordNumber string `json:"medical_record_number" binding:"max=50"`
}

type AssignBedRequest struct {
	BedID uint `json:"bed_id" binding:"required"`
}

// GetPatients lists all patients
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.patientService.GetAllPatients()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	utils.SuccessResponse(c, patients)
}

// GetPatient returns a single patient
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatientByID(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// CreatePatient creates a patient record for an existing user (admin only)
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "user_id is required")
		return
	}

	patient, err := h.patientService.CreatePatient(
		req.UserID, req.Diagnosis, req.Treatment, req.MedicalRecordNumber, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// UpdatePatient updates a patient's clinical fields (admin only)
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req PatientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient payload")
		return
	}

	patient, err := h.patientService.UpdatePatient(
		id, req.Diagnosis, req.Treatment, req.MedicalRecordNumber, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// AssignBed places a patient in a bed (admin only)
func (h *PatientHandler) AssignBed(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var req AssignBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "bed_id is required")
		return
	}

	patient, err := h.patientService.AssignBed(id, req.BedID, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

// ReleaseBed removes a patient from their bed (admin only)
func (h *PatientHandler) ReleaseBed(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.ReleaseBed(id, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, patient)
}
