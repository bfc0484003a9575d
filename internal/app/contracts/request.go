package contracts

import (
	"context"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
)

type RequestUsecase interface {
	CreateRequest(ctx context.Context, user *models.AuthUser, request *requests.CreateRequest) (*responses.RequestMutation, error)
	ListRequests(ctx context.Context, user *models.AuthUser) ([]responses.RequestItem, error)
	UpdateRequest(ctx context.Context, user *models.AuthUser, requestID string, request *requests.UpdateRequest) (*responses.RequestMutation, error)
	CancelRequest(ctx context.Context, user *models.AuthUser, requestID string) error
}

type RequestRepository interface {
	InsertRequest(ctx context.Context, request *models.AppointmentRequest) error
	FindByRequestID(ctx context.Context, requestID string) (*models.AppointmentRequest, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.AppointmentRequest, error)
	FindByProviderID(ctx context.Context, providerID string) ([]models.AppointmentRequest, error)
	UpdateRequest(ctx context.Context, request *models.AppointmentRequest) error
	DeleteByRequestID(ctx context.Context, requestID string) error
}
