package profiles

import (
	"context"
	"fmt"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/dto/responses"
	"medidata-service/internal/pkg/exceptions"
	"mime/multipart"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

const pictureURLExpiry = 24 * time.Hour

type profileUsecase struct {
	ProviderRepository contracts.ProviderRepository
	PatientRepository  contracts.PatientRepository
	Storage            contracts.Storage
	MaxUploadBytes     int64
	Log                *zap.Logger
}

// NewProfileUsecase wires profile reads and writes. storage may be nil when
// the deployment runs without an object store; picture uploads then fail
// with a server error while the rest of the profile surface keeps working.
func NewProfileUsecase(
	providerRepository contracts.ProviderRepository,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	maxUploadSizeInMB int64,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		ProviderRepository: providerRepository,
		PatientRepository:  patientRepository,
		Storage:            storage,
		MaxUploadBytes:     maxUploadSizeInMB * 1024 * 1024,
		Log:                logger,
	}
}

func (uc *profileUsecase) GetProfile(ctx context.Context, user *models.AuthUser) (*responses.Profile, error) {
	if user.IsProvider() {
		row, err := uc.ProviderRepository.FindByProviderID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return uc.fallbackProfile(user), nil
		}
		return uc.providerProfile(ctx, user, row), nil
	}

	row, err := uc.PatientRepository.FindByPatientID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return uc.fallbackProfile(user), nil
	}
	return uc.patientProfile(ctx, user, row), nil
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, user *models.AuthUser, request *requests.UpdateProfile) (*responses.Profile, error) {
	if user.IsProvider() {
		row, err := uc.ProviderRepository.FindByProviderID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientProfileNotFound, constvars.ErrDevValidationFailed)
		}

		applyString(&row.FirstName, request.FirstName)
		applyString(&row.LastName, request.LastName)
		applyString(&row.PhoneNum, request.PhoneNum)
		applyString(&row.Gender, request.Gender)
		applyString(&row.State, request.State)
		applyString(&row.City, request.City)
		applyString(&row.Insurance, request.Insurance)
		applyString(&row.Location, request.Location)
		applyString(&row.Taxonomy, request.Taxonomy)

		if err := uc.ProviderRepository.UpsertProvider(ctx, row); err != nil {
			return nil, err
		}
		return uc.providerProfile(ctx, user, row), nil
	}

	row, err := uc.PatientRepository.FindByPatientID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientProfileNotFound, constvars.ErrDevValidationFailed)
	}

	applyString(&row.FirstName, request.FirstName)
	applyString(&row.LastName, request.LastName)
	applyString(&row.PhoneNum, request.PhoneNum)
	applyString(&row.Gender, request.Gender)
	applyString(&row.State, request.State)
	applyString(&row.City, request.City)
	applyString(&row.Insurance, request.Insurance)

	if err := uc.PatientRepository.UpsertPatient(ctx, row); err != nil {
		return nil, err
	}
	return uc.patientProfile(ctx, user, row), nil
}

func (uc *profileUsecase) UploadProfilePicture(ctx context.Context, user *models.AuthUser, file multipart.File, fileHeader *multipart.FileHeader) (*responses.ProfilePicture, error) {
	if uc.Storage == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, "Object storage is not configured")
	}
	if fileHeader.Size > uc.MaxUploadBytes {
		return nil, exceptions.WrapWithoutError(constvars.StatusRequestEntityLarge, constvars.ErrClientPictureTooLarge, constvars.ErrDevValidationFailed)
	}

	objectName := fmt.Sprintf("%s%s", user.ID, filepath.Ext(fileHeader.Filename))
	if _, err := uc.Storage.UploadFile(ctx, file, fileHeader, objectName); err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if user.IsProvider() {
		row, err := uc.ProviderRepository.FindByProviderID(ctx, user.ID)
		if err == nil && row != nil {
			row.PictureURL = objectName
			err = uc.ProviderRepository.UpsertProvider(ctx, row)
		}
		if err != nil {
			uc.Log.Warn("profileUsecase failed to persist picture reference",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	} else {
		row, err := uc.PatientRepository.FindByPatientID(ctx, user.ID)
		if err == nil && row != nil {
			row.PictureURL = objectName
			err = uc.PatientRepository.UpsertPatient(ctx, row)
		}
		if err != nil {
			uc.Log.Warn("profileUsecase failed to persist picture reference",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	pictureURL := uc.presign(ctx, objectName)
	return &responses.ProfilePicture{
		Message:    constvars.UploadPictureSuccessMessage,
		PictureURL: pictureURL,
	}, nil
}

func (uc *profileUsecase) providerProfile(ctx context.Context, user *models.AuthUser, row *models.Provider) *responses.Profile {
	email := row.Email
	if email == "" {
		email = user.Email
	}
	return &responses.Profile{
		Role:       constvars.RoleProvider,
		Email:      email,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		PhoneNum:   row.PhoneNum,
		Gender:     row.Gender,
		State:      row.State,
		City:       row.City,
		Insurance:  row.Insurance,
		Location:   row.Location,
		Taxonomy:   row.Taxonomy,
		PictureURL: uc.presign(ctx, row.PictureURL),
	}
}

func (uc *profileUsecase) patientProfile(ctx context.Context, user *models.AuthUser, row *models.Patient) *responses.Profile {
	return &responses.Profile{
		Role:       constvars.RolePatient,
		Email:      user.Email,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		PhoneNum:   row.PhoneNum,
		Gender:     row.Gender,
		State:      row.State,
		City:       row.City,
		Insurance:  row.Insurance,
		PictureURL: uc.presign(ctx, row.PictureURL),
	}
}

// fallbackProfile answers from token claims alone when no directory row
// exists yet.
func (uc *profileUsecase) fallbackProfile(user *models.AuthUser) *responses.Profile {
	return &responses.Profile{
		Role:      user.Role(),
		Email:     user.Email,
		FirstName: user.UserMetadata["first_name"],
		LastName:  user.UserMetadata["last_name"],
	}
}

func (uc *profileUsecase) presign(ctx context.Context, objectName string) string {
	if uc.Storage == nil || objectName == "" {
		return ""
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, objectName, pictureURLExpiry)
	if err != nil {
		uc.Log.Warn("profileUsecase failed to presign picture",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func applyString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}
