package profiles

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) FindByPatientID(ctx context.Context, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, bson.M{"patient_id": patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindByPatientIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	if len(patientIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.Collection.Find(ctx, bson.M{"patient_id": bson.M{"$in": patientIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.Patient
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoIterateDocuments(err)
	}
	return results, nil
}

func (r *PatientMongoRepository) UpsertPatient(ctx context.Context, patient *models.Patient) error {
	filter := bson.M{"patient_id": patient.PatientID}
	update := bson.M{"$set": patient}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoUpdateDocument(err)
	}
	return nil
}
