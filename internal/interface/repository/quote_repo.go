// internal/interface/repository/quote_repo.go
package repository

import (
	"context"
	"time"

	"pnr-quote-service/internal/domain/entity"
	"pnr-quote-service/internal/domain/repository"
	"pnr-quote-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultRecentLimit = 20

// MongoQuoteRepository implements QuoteRepository
type MongoQuoteRepository struct {
	collection *mongo.Collection
	logger     logger.Logger
}

// NewMongoQuoteRepository creates a new quote archive repository
func NewMongoQuoteRepository(db *mongo.Database, logger logger.Logger) repository.QuoteRepository {
	collection := db.Collection("quote_records")

	ctx := context.Background()

	// Unique sourceId only for records that carry one
	sourceIndex := mongo.IndexModel{
		Keys: bson.M{"sourceId": 1},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"sourceId": bson.M{"$type": "string"}}),
	}

	createdIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{sourceIndex, createdIndex})

	return &MongoQuoteRepository{
		collection: collection,
		logger:     logger,
	}
}

// Save inserts a record, or replaces the one with the same sourceId
func (r *MongoQuoteRepository) Save(ctx context.Context, record *entity.QuoteRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if record.SourceID == "" {
		record.ID = primitive.NewObjectID().Hex()
		_, err := r.collection.InsertOne(ctx, record)
		return err
	}

	doc := bson.M{
		"source":         record.Source,
		"sourceId":       record.SourceID,
		"currency":       record.Currency,
		"fare":           record.Fare,
		"baseTax":        record.BaseTax,
		"fee":            record.Fee,
		"incentive":      record.Incentive,
		"penalty":        record.Penalty,
		"ravPercent":     record.RAVPercent,
		"total":          record.Total,
		"isMulti":        record.IsMulti,
		"quotationCount": record.QuotationCount,
		"legCount":       record.LegCount,
		"overnightCount": record.OvernightCount,
		"decoderSource":  record.DecoderSource,
		"rawText":        record.RawText,
		"report":         record.Report,
		"createdAt":      record.CreatedAt,
	}

	opts := options.Update().SetUpsert(true)
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"sourceId": record.SourceID},
		bson.M{
			"$set":         doc,
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID().Hex()},
		},
		opts,
	)
	if err != nil {
		return err
	}

	if id, ok := result.UpsertedID.(string); ok {
		record.ID = id
		return nil
	}

	// Replaced an existing record; report its id
	var existing struct {
		ID string `bson:"_id"`
	}
	err = r.collection.FindOne(ctx, bson.M{"sourceId": record.SourceID},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Decode(&existing)
	if err != nil {
		return err
	}
	record.ID = existing.ID
	return nil
}

// FindBySourceIDs returns the archived records keyed by sourceId
func (r *MongoQuoteRepository) FindBySourceIDs(ctx context.Context, sourceIDs []string) (map[string]*entity.QuoteRecord, error) {
	if len(sourceIDs) == 0 {
		return make(map[string]*entity.QuoteRecord), nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"sourceId": bson.M{"$in": sourceIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeKeyed(ctx, cursor, func(q *entity.QuoteRecord) string { return q.SourceID }, r.logger)
}

// FindRecent returns the newest records first
func (r *MongoQuoteRepository) FindRecent(ctx context.Context, limit int) ([]*entity.QuoteRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]*entity.QuoteRecord, 0, limit)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
