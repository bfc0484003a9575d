package contracts

import (
	"context"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"mime/multipart"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, user *models.AuthUser) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, user *models.AuthUser, request *requests.UpdateProfile) (*responses.Profile, error)
	UploadProfilePicture(ctx context.Context, user *models.AuthUser, file multipart.File, fileHeader *multipart.FileHeader) (*responses.ProfilePicture, error)
}

type PatientRepository interface {
	FindByPatientID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByPatientIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error)
	UpsertPatient(ctx context.Context, patient *models.Patient) error
}
