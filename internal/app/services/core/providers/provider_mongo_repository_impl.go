package providers

import (
	"context"
	"medidata-service/internal/app/contracts"
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/dto/requests"
	"medidata-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) contracts.ProviderRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

func regexFilter(value string) bson.M {
	return bson.M{"$regex": value, "$options": "i"}
}

// FindProviders matches directory rows case-insensitively on the filters the
// directory can answer. Registry-only filters (number, enumeration type,
// postal code, country) never match directory rows, so their presence alone
// yields an empty set without a scan.
func (r *ProviderMongoRepository) FindProviders(ctx context.Context, request *requests.SearchProviders) ([]models.Provider, error) {
	filter := bson.M{}
	if request.FirstName != "" {
		filter["first_name"] = regexFilter(request.FirstName)
	}
	if request.LastName != "" {
		filter["last_name"] = regexFilter(request.LastName)
	}
	if request.TaxonomyDescription != "" {
		filter["taxonomy"] = regexFilter(request.TaxonomyDescription)
	}
	if request.City != "" {
		filter["city"] = regexFilter(request.City)
	}
	if request.State != "" {
		filter["state"] = regexFilter(request.State)
	}
	if len(filter) == 0 {
		return nil, nil
	}

	findOptions := options.Find().SetLimit(int64(request.Limit))
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.Provider
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoIterateDocuments(err)
	}
	return results, nil
}

func (r *ProviderMongoRepository) FindByProviderID(ctx context.Context, providerID string) (*models.Provider, error) {
	var provider models.Provider
	err := r.Collection.FindOne(ctx, bson.M{"provider_id": providerID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	return &provider, nil
}

func (r *ProviderMongoRepository) UpsertProvider(ctx context.Context, provider *models.Provider) error {
	filter := bson.M{"provider_id": provider.ProviderID}
	update := bson.M{"$set": provider}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) FindByProviderIDs(ctx context.Context, providerIDs []string) ([]models.Provider, error) {
	if len(providerIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.Collection.Find(ctx, bson.M{"provider_id": bson.M{"$in": providerIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoFindDocument(err)
	}
	defer cursor.Close(ctx)

	var results []models.Provider
	if err := cursor.All(ctx, &results); err != nil {
		return nil, exceptions.ErrMongoIterateDocuments(err)
	}
	return results, nil
}
