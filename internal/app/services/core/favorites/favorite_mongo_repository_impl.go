package favorites

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteMongoRepository struct {
	Collection *mongo.Collection
}

func NewFavoriteMongoRepository(db *mongo.Client, dbName string) contracts.FavoriteRepository {
	return &FavoriteMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFavorites),
	}
}

func (r *FavoriteMongoRepository) InsertFavorite(ctx context.Context, favorite *models.Favorite) error {
	_, err := r.Collection.InsertOne(ctx, favorite)
	if err != nil {
		return exceptions.ErrMongoInsertDocument(err)
	}
	return nil
}

func (r *FavoriteMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Favorite, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.Favorite
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoIterateDocuments(err)
	}
	return results, nil
}

func (r *FavoriteMongoRepository) FindByPatientIDAndProviderID(ctx context.Context, patientID, providerID string) (*models.Favorite, error) {
	return r.findOne(ctx, bson.M{"patient_id": patientID, "provider_id": providerID})
}

func (r *FavoriteMongoRepository) FindByPatientIDAndProviderNPI(ctx context.Context, patientID string, providerNPI int64) (*models.Favorite, error) {
	return r.findOne(ctx, bson.M{"patient_id": patientID, "provider_npi": providerNPI})
}

func (r *FavoriteMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.Collection.FindOne(ctx, filter).Decode(&favorite)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	return &favorite, nil
}

func (r *FavoriteMongoRepository) DeleteByPatientIDAndProviderID(ctx context.Context, patientID, providerID string) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"patient_id": patientID, "provider_id": providerID})
	if err != nil {
		return exceptions.ErrMongoDeleteDocument(err)
	}
	return nil
}

func (r *FavoriteMongoRepository) DeleteByPatientIDAndProviderNPI(ctx context.Context, patientID string, providerNPI int64) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"patient_id": patientID, "provider_npi": providerNPI})
	if err != nil {
		return exceptions.ErrMongoDeleteDocument(err)
	}
	return nil
}
