package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coopbat/intake-api/internal/core/domain"
)

const (
	collectionProUsers = "pro_users"
	collectionArtisans = "artisan_users"
)

// AccountRepository persists pro and artisan accounts in two collections.
// Email uniqueness is enforced per collection by a unique index, so a pro
// and an artisan may share an address.
type AccountRepository struct {
	pros     *mongo.Collection
	artisans *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		pros:     db.Collection(collectionProUsers),
		artisans: db.Collection(collectionArtisans),
	}
}

type mongoProUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type mongoArtisan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ContactName   string             `bson:"contact_name"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	Commune       string             `bson:"commune"`
	RadiusKm      int                `bson:"radius_km"`
	Phone         string             `bson:"phone,omitempty"`
	ZoneNote      string             `bson:"zone_note,omitempty"`
	TokenDigest   string             `bson:"token_digest,omitempty"`
	TokenIssuedAt *time.Time         `bson:"token_issued_at,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (r *AccountRepository) CreatePro(ctx context.Context, user *domain.ProUser) (*domain.ProUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProUser{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}

	res, err := r.pros.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert pro user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AccountRepository) FindProByEmail(ctx context.Context, email string) (*domain.ProUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoProUser
	if err := r.pros.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find pro user: %w", err)
	}

	return &domain.ProUser{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (r *AccountRepository) CreateArtisan(ctx context.Context, artisan *domain.Artisan) (*domain.Artisan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoArtisan{
		ContactName:  artisan.ContactName,
		Email:        artisan.Email,
		PasswordHash: artisan.PasswordHash,
		Commune:      artisan.Commune,
		RadiusKm:     artisan.RadiusKm,
		Phone:        artisan.Phone,
		ZoneNote:     artisan.ZoneNote,
		CreatedAt:    artisan.CreatedAt,
	}

	res, err := r.artisans.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert artisan: %w", err)
	}

	created := *artisan
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AccountRepository) FindArtisanByEmail(ctx context.Context, email string) (*domain.Artisan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoArtisan
	if err := r.artisans.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find artisan: %w", err)
	}
	return artisanFromDoc(&doc), nil
}

func (r *AccountRepository) FindArtisanByID(ctx context.Context, id string) (*domain.Artisan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoArtisan
	if err := r.artisans.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find artisan: %w", err)
	}
	return artisanFromDoc(&doc), nil
}

// SetArtisanToken is a single-document update, atomic at storage level.
func (r *AccountRepository) SetArtisanToken(ctx context.Context, artisanID, tokenDigest string, issuedAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(artisanID)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.artisans.UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"token_digest": tokenDigest, "token_issued_at": issuedAt},
	})
	if err != nil {
		return fmt.Errorf("set token digest: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// ClearArtisanToken is idempotent: clearing an absent digest succeeds.
func (r *AccountRepository) ClearArtisanToken(ctx context.Context, artisanID string) error {
	oid, err := primitive.ObjectIDFromHex(artisanID)
	if err != nil {
		return domain.ErrAccountNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err = r.artisans.UpdateByID(ctx, oid, bson.M{
		"$unset": bson.M{"token_digest": "", "token_issued_at": ""},
	})
	if err != nil {
		return fmt.Errorf("clear token digest: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique email index on both collections.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: uniqueIndex(),
	}

	if _, err := r.pros.Indexes().CreateOne(ctx, emailIndex); err != nil {
		return err
	}
	_, err := r.artisans.Indexes().CreateOne(ctx, emailIndex)
	return err
}

func artisanFromDoc(doc *mongoArtisan) *domain.Artisan {
	return &domain.Artisan{
		ID:            doc.ID.Hex(),
		ContactName:   doc.ContactName,
		Email:         doc.Email,
		PasswordHash:  doc.PasswordHash,
		Commune:       doc.Commune,
		RadiusKm:      doc.RadiusKm,
		Phone:         doc.Phone,
		ZoneNote:      doc.ZoneNote,
		TokenDigest:   doc.TokenDigest,
		TokenIssuedAt: doc.TokenIssuedAt,
		CreatedAt:     doc.CreatedAt,
	}
}
