package repository

import (
	"context"

	"pnr-quote-service/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// decodeKeyed drains cursor into a map keyed by key. Documents that fail to
// decode are logged and left out.
func decodeKeyed[T any](ctx context.Context, cursor *mongo.Cursor, key func(*T) string, log logger.Logger) (map[string]*T, error) {
	result := make(map[string]*T)
	for cursor.Next(ctx) {
		doc := new(T)
		if err := cursor.Decode(doc); err != nil {
			log.Warn("Skipping undecodable document", "id", cursor.Current.Lookup("_id").String(), "error", err)
			continue
		}
		result[key(doc)] = doc
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
