package requests

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type RequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewRequestMongoRepository(db *mongo.Client, dbName string) contracts.RequestRepository {
	return &RequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRequests),
	}
}

func (r *RequestMongoRepository) InsertRequest(ctx context.Context, request *models.AppointmentRequest) error {
	_, err := r.Collection.InsertOne(ctx, request)
	if err != nil {
		return exceptions.ErrMongoInsertDocument(err)
	}
	return nil
}

func (r *RequestMongoRepository) FindByRequestID(ctx context.Context, requestID string) (*models.AppointmentRequest, error) {
	var request models.AppointmentRequest
	err := r.Collection.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	return &request, nil
}

func (r *RequestMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.AppointmentRequest, error) {
	return r.findMany(ctx, bson.M{"patient_id": patientID})
}

func (r *RequestMongoRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.AppointmentRequest, error) {
	return r.findMany(ctx, bson.M{"provider_id": providerID})
}

func (r *RequestMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.AppointmentRequest, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.AppointmentRequest
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoIterateDocuments(err)
	}
	return results, nil
}

// UpdateRequest replaces the stored document wholesale. Response is written
// explicitly so a cleared decision (nil) removes the stored field instead of
// surviving an omitempty skip.
func (r *RequestMongoRepository) UpdateRequest(ctx context.Context, request *models.AppointmentRequest) error {
	update := bson.M{
		"$set": bson.M{
			"patient_id":  request.PatientID,
			"provider_id": request.ProviderID,
			"message":     request.Message,
			"date":        request.Date,
			"time":        request.Time,
			"npi_num":     request.NPINum,
			"status":      request.Status,
			"response":    request.Response,
			"created_at":  request.CreatedAt,
		},
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"request_id": request.RequestID}, update)
	if err != nil {
		return exceptions.ErrMongoUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientRequestNotFound, constvars.ErrDevMongoUpdateDocument)
	}
	return nil
}

func (r *RequestMongoRepository) DeleteByRequestID(ctx context.Context, requestID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"request_id": requestID})
	if err != nil {
		return exceptions.ErrMongoDeleteDocument(err)
	}
	return nil
}
