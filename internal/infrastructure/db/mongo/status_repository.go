package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coopbat/intake-api/internal/core/domain"
)

const collectionRequestStatus = "request_status"

// StatusRepository stores the sparse per-artisan overlay. One document per
// (artisan_id, kind, request_id); the unique compound index makes the
// upsert race-free — concurrent writes to the same key collapse into the
// single existing document, last write wins.
type StatusRepository struct {
	col *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{col: db.Collection(collectionRequestStatus)}
}

type mongoStatusEntry struct {
	ArtisanID string        `bson:"artisan_id"`
	Kind      string        `bson:"kind"`
	RequestID int64         `bson:"request_id"`
	Status    domain.Status `bson:"status"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

func (r *StatusRepository) Find(ctx context.Context, artisanID string, ref domain.RequestRef) (*domain.StatusEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoStatusEntry
	err := r.col.FindOne(ctx, keyFilter(artisanID, ref)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, fmt.Errorf("find status entry: %w", err)
	}
	return entryFromDoc(&doc), nil
}

// Upsert writes the single overlay document for the composite key. One
// update statement, so no application-level locking is needed.
func (r *StatusRepository) Upsert(ctx context.Context, entry *domain.StatusEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		keyFilter(entry.ArtisanID, entry.Ref),
		bson.M{"$set": bson.M{
			"status":     entry.Status,
			"updated_at": entry.UpdatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert status entry: %w", err)
	}
	return nil
}

func (r *StatusRepository) ListByArtisan(ctx context.Context, artisanID string) ([]domain.StatusEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"artisan_id": artisanID})
	if err != nil {
		return nil, fmt.Errorf("list status entries: %w", err)
	}

	var docs []mongoStatusEntry
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode status entries: %w", err)
	}

	out := make([]domain.StatusEntry, 0, len(docs))
	for i := range docs {
		out = append(out, *entryFromDoc(&docs[i]))
	}
	return out, nil
}

// EnsureIndexes creates the unique compound key index and the artisan scan
// index.
func (r *StatusRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "artisan_id", Value: 1},
				{Key: "kind", Value: 1},
				{Key: "request_id", Value: 1},
			},
			Options: uniqueIndex(),
		},
		{Keys: bson.D{{Key: "artisan_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func keyFilter(artisanID string, ref domain.RequestRef) bson.M {
	return bson.M{
		"artisan_id": artisanID,
		"kind":       string(ref.Kind),
		"request_id": ref.ID,
	}
}

func entryFromDoc(doc *mongoStatusEntry) *domain.StatusEntry {
	return &domain.StatusEntry{
		ArtisanID: doc.ArtisanID,
		Ref:       domain.RequestRef{Kind: domain.RequestKind(doc.Kind), ID: doc.RequestID},
		Status:    doc.Status,
		UpdatedAt: doc.UpdatedAt,
	}
}
