package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coopbat/intake-api/internal/core/domain"
)

const (
	collectionSimpleRequests   = "simple_requests"
	collectionLeadRequests     = "lead_requests"
	collectionAdvancedRequests = "advanced_requests"
	collectionCounters         = "counters"
)

// RequestRepository is the append-only archive backing the three request
// kinds. Each kind has its own collection and its own id sequence, so ids
// are only unique within a kind.
type RequestRepository struct {
	simple   *mongo.Collection
	lead     *mongo.Collection
	advanced *mongo.Collection
	counters *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{
		simple:   db.Collection(collectionSimpleRequests),
		lead:     db.Collection(collectionLeadRequests),
		advanced: db.Collection(collectionAdvancedRequests),
		counters: db.Collection(collectionCounters),
	}
}

// nextID atomically increments the named sequence and returns the new value.
// The counter document is created on first use.
func (r *RequestRepository) nextID(ctx context.Context, sequence string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": sequence},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id for %s: %w", sequence, err)
	}
	return doc.Seq, nil
}

func (r *RequestRepository) InsertSimple(ctx context.Context, req *domain.SimpleRequest) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx, collectionSimpleRequests)
	if err != nil {
		return 0, err
	}
	req.ID = id

	if _, err := r.simple.InsertOne(ctx, req); err != nil {
		return 0, fmt.Errorf("insert simple request: %w", err)
	}
	return id, nil
}

func (r *RequestRepository) InsertLead(ctx context.Context, req *domain.LeadRequest) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx, collectionLeadRequests)
	if err != nil {
		return 0, err
	}
	req.ID = id

	if _, err := r.lead.InsertOne(ctx, req); err != nil {
		return 0, fmt.Errorf("insert lead request: %w", err)
	}
	return id, nil
}

func (r *RequestRepository) InsertAdvanced(ctx context.Context, req *domain.AdvancedRequest) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx, collectionAdvancedRequests)
	if err != nil {
		return 0, err
	}
	req.ID = id

	if _, err := r.advanced.InsertOne(ctx, req); err != nil {
		return 0, fmt.Errorf("insert advanced request: %w", err)
	}
	return id, nil
}

func (r *RequestRepository) ListRecentSimple(ctx context.Context, limit int64) ([]domain.SimpleRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.simple.Find(ctx, bson.M{}, listRecentOpts(limit))
	if err != nil {
		return nil, fmt.Errorf("list simple requests: %w", err)
	}

	var out []domain.SimpleRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode simple requests: %w", err)
	}
	return out, nil
}

func (r *RequestRepository) ListRecentLead(ctx context.Context, limit int64) ([]domain.LeadRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.lead.Find(ctx, bson.M{}, listRecentOpts(limit))
	if err != nil {
		return nil, fmt.Errorf("list lead requests: %w", err)
	}

	var out []domain.LeadRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode lead requests: %w", err)
	}
	return out, nil
}

func (r *RequestRepository) ListRecentAdvanced(ctx context.Context, limit int64) ([]domain.AdvancedRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.advanced.Find(ctx, bson.M{}, listRecentOpts(limit))
	if err != nil {
		return nil, fmt.Errorf("list advanced requests: %w", err)
	}

	var out []domain.AdvancedRequest
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode advanced requests: %w", err)
	}
	return out, nil
}

func listRecentOpts(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
}

// EnsureIndexes creates the per-kind unique id index and the created_at
// sort index on all three archive collections.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: uniqueIndex()},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	for _, col := range []*mongo.Collection{r.simple, r.lead, r.advanced} {
		if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}
