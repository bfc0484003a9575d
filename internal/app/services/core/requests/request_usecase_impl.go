package requests

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/exceptions"
	"medidata-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type requestUsecase struct {
	RequestRepository     contracts.RequestRepository
	ProviderRepository    contracts.ProviderRepository
	PatientRepository     contracts.PatientRepository
	NotificationPublisher contracts.NotificationPublisher
	Log                   *zap.Logger
}

// NewRequestUsecase wires the lifecycle manager. notificationPublisher may
// be nil when the deployment runs without a broker.
func NewRequestUsecase(
	requestRepository contracts.RequestRepository,
	providerRepository contracts.ProviderRepository,
	patientRepository contracts.PatientRepository,
	notificationPublisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.RequestUsecase {
	return &requestUsecase{
		RequestRepository:     requestRepository,
		ProviderRepository:    providerRepository,
		PatientRepository:     patientRepository,
		NotificationPublisher: notificationPublisher,
		Log:                   logger,
	}
}

func (uc *requestUsecase) CreateRequest(ctx context.Context, user *models.AuthUser, request *requests.CreateRequest) (*responses.RequestMutation, error) {
	if !user.IsPatient() {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientOnlyPatientsCreateRequests, constvars.ErrDevValidationFailed)
	}

	provider, err := uc.ProviderRepository.FindByProviderID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientProviderNotFound, constvars.ErrDevValidationFailed)
	}

	appointmentRequest := &models.AppointmentRequest{
		RequestID:  utils.GenerateRequestID(),
		PatientID:  user.ID,
		ProviderID: request.ProviderID,
		Message:    request.Message,
		Date:       request.Date,
		Time:       request.Time,
		NPINum:     request.NPINum,
		Status:     constvars.RequestStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.RequestRepository.InsertRequest(ctx, appointmentRequest); err != nil {
		return nil, err
	}

	return &responses.RequestMutation{
		Message: constvars.CreateRequestSuccessMessage,
		Request: appointmentRequest,
	}, nil
}

// ListRequests enriches each row with display names. For patient callers
// providerName carries the provider's name; for provider callers it carries
// the patient's name, keeping one response shape for the frontend.
func (uc *requestUsecase) ListRequests(ctx context.Context, user *models.AuthUser) ([]responses.RequestItem, error) {
	var rows []models.AppointmentRequest
	var err error

	switch {
	case user.IsPatient():
		rows, err = uc.RequestRepository.FindByPatientID(ctx, user.ID)
	case user.IsProvider():
		rows, err = uc.RequestRepository.FindByProviderID(ctx, user.ID)
	default:
		return []responses.RequestItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []responses.RequestItem{}, nil
	}

	providersByID := uc.lookupProviders(ctx, rows)
	patientsByID := map[string]models.Patient{}
	if user.IsProvider() {
		patientsByID = uc.lookupPatients(ctx, rows)
	}

	items := make([]responses.RequestItem, 0, len(rows))
	for i := range rows {
		row := &rows[i]

		providerName := constvars.SentinelUnknownProvider
		specialty := constvars.SentinelSpecialtyMissing
		if provider, ok := providersByID[row.ProviderID]; ok {
			providerName = displayName(provider.FirstName, provider.LastName, constvars.SentinelUnknownProvider)
			if provider.Taxonomy != "" {
				specialty = provider.Taxonomy
			}
		}

		displayed := providerName
		if user.IsProvider() {
			displayed = constvars.SentinelUnknownPatient
			if patient, ok := patientsByID[row.PatientID]; ok {
				displayed = displayName(patient.FirstName, patient.LastName, constvars.SentinelUnknownPatient)
			}
		}

		response := ""
		if row.Response != nil {
			response = *row.Response
		}

		items = append(items, responses.RequestItem{
			ID:            row.RequestID,
			ProviderName:  displayed,
			Specialty:     specialty,
			RequestedDate: row.Date,
			RequestedTime: row.Time,
			CreatedAt:     row.CreatedAt.Format(time.RFC3339),
			Status:        row.Status,
			Message:       row.Message,
			Response:      response,
			ProviderID:    row.ProviderID,
			PatientID:     row.PatientID,
		})
	}
	return items, nil
}

func (uc *requestUsecase) lookupProviders(ctx context.Context, rows []models.AppointmentRequest) map[string]models.Provider {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ids := uniqueIDs(rows, func(row *models.AppointmentRequest) string { return row.ProviderID })
	providers, err := uc.ProviderRepository.FindByProviderIDs(ctx, ids)
	if err != nil {
		uc.Log.Error("requestUsecase.ListRequests provider lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return map[string]models.Provider{}
	}

	byID := make(map[string]models.Provider, len(providers))
	for _, provider := range providers {
		byID[provider.ProviderID] = provider
	}
	return byID
}

func (uc *requestUsecase) lookupPatients(ctx context.Context, rows []models.AppointmentRequest) map[string]models.Patient {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ids := uniqueIDs(rows, func(row *models.AppointmentRequest) string { return row.PatientID })
	patients, err := uc.PatientRepository.FindByPatientIDs(ctx, ids)
	if err != nil {
		uc.Log.Error("requestUsecase.ListRequests patient lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return map[string]models.Patient{}
	}

	byID := make(map[string]models.Patient, len(patients))
	for _, patient := range patients {
		byID[patient.PatientID] = patient
	}
	return byID
}

func (uc *requestUsecase) UpdateRequest(ctx context.Context, user *models.AuthUser, requestID string, request *requests.UpdateRequest) (*responses.RequestMutation, error) {
	row, err := uc.RequestRepository.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientRequestNotFound, constvars.ErrDevValidationFailed)
	}

	isPatient := user.IsPatient() && row.PatientID == user.ID
	isProvider := user.IsProvider() && row.ProviderID == user.ID
	if !isPatient && !isProvider {
		return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotRequestParticipant, constvars.ErrDevValidationFailed)
	}

	updated := false
	decisionMade := false

	if isPatient {
		// A patient can never touch status, not even to restate it.
		if request.Status != nil {
			return nil, exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientPatientsCannotSetStatus, constvars.ErrDevValidationFailed)
		}
		if request.Date != nil {
			row.Date = *request.Date
			updated = true
		}
		if request.Time != nil {
			row.Time = utils.NormalizeTimeValue(*request.Time)
			updated = true
		}
		if request.Message != nil {
			row.Message = *request.Message
			updated = true
		}
		if updated {
			// Any patient edit invalidates a prior decision and reopens
			// the request for review.
			row.Status = constvars.RequestStatusPending
			row.Response = nil
		}
	}

	if isProvider {
		if request.Status != nil {
			if !isValidStatus(*request.Status) {
				return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientInvalidStatusValue, constvars.ErrDevValidationFailed)
			}
			row.Status = *request.Status
			updated = true
			decisionMade = *request.Status != constvars.RequestStatusPending
		}
		if request.Response != nil {
			row.Response = request.Response
			updated = true
		}
	}

	if !updated {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientNoFieldsToUpdate, constvars.ErrDevValidationFailed)
	}

	if err := uc.RequestRepository.UpdateRequest(ctx, row); err != nil {
		return nil, err
	}

	if decisionMade {
		uc.notifyPatient(ctx, row)
	}

	return &responses.RequestMutation{
		Message: constvars.UpdateRequestSuccessMessage,
		Request: row,
	}, nil
}

func (uc *requestUsecase) CancelRequest(ctx context.Context, user *models.AuthUser, requestID string) error {
	if !user.IsPatient() {
		return exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientOnlyPatientsCancelRequests, constvars.ErrDevValidationFailed)
	}

	row, err := uc.RequestRepository.FindByRequestID(ctx, requestID)
	if err != nil {
		return err
	}
	if row == nil || row.PatientID != user.ID {
		return exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientRequestNotFound, constvars.ErrDevValidationFailed)
	}

	return uc.RequestRepository.DeleteByRequestID(ctx, requestID)
}

// notifyPatient is best effort: a broker outage must never fail the update.
func (uc *requestUsecase) notifyPatient(ctx context.Context, row *models.AppointmentRequest) {
	if uc.NotificationPublisher == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient, err := uc.PatientRepository.FindByPatientID(ctx, row.PatientID)
	if err != nil || patient == nil || patient.Email == "" {
		uc.Log.Warn("requestUsecase.notifyPatient skipped, no reachable recipient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, row.PatientID),
		)
		return
	}

	providerName := constvars.SentinelUnknownProvider
	if provider, lookupErr := uc.ProviderRepository.FindByProviderID(ctx, row.ProviderID); lookupErr == nil && provider != nil {
		providerName = displayName(provider.FirstName, provider.LastName, constvars.SentinelUnknownProvider)
	}

	response := ""
	if row.Response != nil {
		response = *row.Response
	}
	notification := &requests.DecisionNotification{
		RecipientEmail: patient.Email,
		PatientName:    displayName(patient.FirstName, patient.LastName, constvars.SentinelUnknownPatient),
		ProviderName:   providerName,
		Status:         row.Status,
		Date:           row.Date,
		Time:           row.Time,
		Response:       response,
	}
	if err := uc.NotificationPublisher.PublishDecision(ctx, notification); err != nil {
		uc.Log.Error("requestUsecase.notifyPatient publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func isValidStatus(status string) bool {
	switch status {
	case constvars.RequestStatusPending, constvars.RequestStatusApproved, constvars.RequestStatusRejected:
		return true
	}
	return false
}

func displayName(firstName, lastName, sentinel string) string {
	name := firstName
	if lastName != "" {
		if name != "" {
			name += " "
		}
		name += lastName
	}
	if name == "" {
		return sentinel
	}
	return name
}

func uniqueIDs(rows []models.AppointmentRequest, pick func(*models.AppointmentRequest) string) []string {
	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for i := range rows {
		id := pick(&rows[i])
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
