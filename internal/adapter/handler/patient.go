package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	patientdto "github.com/johnquangdev/meeting-planner/internal/adapter/dto/patient"
	"github.com/johnquangdev/meeting-planner/internal/adapter/presenter"
	patientUsecase "github.com/johnquangdev/meeting-planner/internal/usecase/patient"
)

// Patient handles patient case HTTP requests
type Patient struct {
	patientService patientUsecase.Service
	logger         *zap.Logger
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService patientUsecase.Service, logger *zap.Logger) *Patient {
	return &Patient{
		patientService: patientService,
		logger:         logger,
	}
}

// ListPatientDetails handles GET /api/patient-details
// @Summary      List patient cases
// @Tags         Patients
// @Produce      json
// @Success      200  {array}   patient.PatientDetailResponse  "Patient cases"
// @Failure      500  {object}  common.ErrorResponse  "Failed to list patient cases"
// @Router       /api/patient-details [get]
func (h *Patient) ListPatientDetails(c echo.Context) error {
	details, err := h.patientService.ListPatientDetails(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToPatientDetailListResponse(details))
}

// CreatePatientDetail handles POST /api/patient-details
// @Summary      Add a patient case to a meeting
// @Description  Stores the case and its base64 attachments in one transaction
// @Tags         Patients
// @Accept       json
// @Produce      json
// @Param        request  body      patient.CreatePatientDetailRequest  true  "Patient case"
// @Success      201      {object}  patient.CreatePatientDetailResponse  "Case created"
// @Failure      400      {object}  common.ErrorResponse  "Missing meeting id, invalid field or unknown meeting"
// @Failure      500      {object}  common.ErrorResponse  "Failed to store case"
// @Router       /api/patient-details [post]
func (h *Patient) CreatePatientDetail(c echo.Context) error {
	var req patientdto.CreatePatientDetailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	attachments := make([]patientUsecase.AttachmentInput, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, patientUsecase.AttachmentInput{
			FileName: a.FileName,
			FileType: a.FileType,
			FileData: a.FileData,
		})
	}

	detail, err := h.patientService.CreatePatientDetail(c.Request().Context(), patientUsecase.CreatePatientDetailInput{
		MeetingID:           uint(req.MeetingID),
		MedicalRecordNumber: req.MedicalRecordNumber,
		PatientName:         req.PatientName,
		PatientDateOfBirth:  req.PatientDateOfBirth,
		PatientDescription:  req.PatientDescription,
		DoctorName:          req.DoctorName,
		DepartmentName:      req.DepartmentName,
		MeetingAgendaNote:   req.MeetingAgendaNote,
		Attachments:         attachments,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToCreatePatientDetailResponse(detail))
}
