package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coopbat/intake-api/internal/core/domain"
)

const collectionTradeCategories = "trade_categories"

// CatalogRepository stores the public trade-category catalog.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionTradeCategories)}
}

type mongoTradeCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Position    int                `bson:"position"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *CatalogRepository) List(ctx context.Context) ([]domain.TradeCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list trade categories: %w", err)
	}

	var docs []mongoTradeCategory
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode trade categories: %w", err)
	}

	out := make([]domain.TradeCategory, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.TradeCategory{
			ID:          d.ID.Hex(),
			Title:       d.Title,
			Description: d.Description,
			ImageURL:    d.ImageURL,
			Position:    d.Position,
			CreatedAt:   d.CreatedAt,
		})
	}
	return out, nil
}

// Upsert inserts a new category when no id is given, otherwise replaces the
// editable fields of the existing one.
func (r *CatalogRepository) Upsert(ctx context.Context, category *domain.TradeCategory) (*domain.TradeCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid := primitive.NewObjectID()
	if category.ID != "" {
		parsed, err := primitive.ObjectIDFromHex(category.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id %q: %w", category.ID, err)
		}
		oid = parsed
	}

	now := time.Now().UTC()
	_, err := r.col.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{
			"title":       category.Title,
			"description": category.Description,
			"image_url":   category.ImageURL,
			"position":    category.Position,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("upsert trade category: %w", err)
	}

	saved := *category
	saved.ID = oid.Hex()
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = now
	}
	return &saved, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid category id %q: %w", id, err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete trade category: %w", err)
	}
	return nil
}
