package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"video-processor/internal/model"
	"video-processor/internal/port"
	"video-processor/internal/usecase/video"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoLedger persists video records in a Mongo collection, keyed by the
// video id (`_id`). The unique index on `_id` is what makes Create an
// atomic create-if-absent: concurrent duplicate notifications race on the
// insert and exactly one wins.
type MongoLedger struct {
	coll collection
}

// compile-time check: *MongoLedger must satisfy port.Ledger
var _ port.Ledger = (*MongoLedger)(nil)

func NewMongoLedger(db *mongo.Database, collName string) *MongoLedger {
	return &MongoLedger{coll: db.Collection(collName)}
}

func (l *MongoLedger) Create(ctx context.Context, v *model.VideoRecord) error {
	log.Printf("creating ledger record for video #%s...", v.ID)

	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	if _, err := l.coll.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return video.ErrAlreadyExists
		}
		return fmt.Errorf("insert video #%s: %w", v.ID, err)
	}
	return nil
}

func (l *MongoLedger) Update(ctx context.Context, id string, upd model.VideoUpdate) error {
	log.Printf("updating ledger record for video #%s to status %q...", id, upd.Status)

	res, err := l.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     upd.Status,
		"filename":   upd.Filename,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update video #%s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return video.ErrVideoNotFound
	}
	return nil
}

func (l *MongoLedger) GetByID(ctx context.Context, id string) (*model.VideoRecord, error) {
	var v model.VideoRecord
	if err := l.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, video.ErrVideoNotFound
		}
		return nil, fmt.Errorf("get video #%s: %w", id, err)
	}
	return &v, nil
}
