package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type accountDoc struct {
	ID                string    `bson:"_id"`
	Email             string    `bson:"email"`
	PasswordHash      string    `bson:"password_hash"`
	Subscription      string    `bson:"subscription"`
	AvatarURL         string    `bson:"avatar_url"`
	SessionToken      string    `bson:"session_token"`
	Verified          bool      `bson:"verified"`
	VerificationToken *string   `bson:"verification_token"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

// MongoRepository implements Repository against the accounts collection.
type MongoRepository struct {
	accounts *mongo.Collection
}

// NewMongoRepository creates a new Mongo-backed account repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{accounts: db.Collection("accounts")}
}

// EnsureIndexes creates the unique index on email. Uniqueness is enforced by
// the store, not by the application.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.accounts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}
	return nil
}

func (r *MongoRepository) Create(ctx context.Context, acct *Account) error {
	now := time.Now().UTC()
	acct.CreatedAt = now
	acct.UpdatedAt = now

	_, err := r.accounts.InsertOne(ctx, toDoc(acct))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailInUse
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()})
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) UpdateSessionToken(ctx context.Context, id uuid.UUID, token string) error {
	return r.setFields(ctx, id, bson.M{"session_token": token})
}

func (r *MongoRepository) UpdateSubscription(ctx context.Context, id uuid.UUID, subscription Subscription) error {
	return r.setFields(ctx, id, bson.M{"subscription": string(subscription)})
}

func (r *MongoRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	return r.setFields(ctx, id, bson.M{"avatar_url": avatarURL})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*Account, error) {
	var doc accountDoc
	err := r.accounts.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	return fromDoc(doc)
}

func (r *MongoRepository) setFields(ctx context.Context, id uuid.UUID, fields bson.M) error {
	fields["updated_at"] = time.Now().UTC()
	res, err := r.accounts.UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func toDoc(acct *Account) accountDoc {
	return accountDoc{
		ID:                acct.ID.String(),
		Email:             acct.Email,
		PasswordHash:      acct.PasswordHash,
		Subscription:      string(acct.Subscription),
		AvatarURL:         acct.AvatarURL,
		SessionToken:      acct.SessionToken,
		Verified:          acct.Verified,
		VerificationToken: acct.VerificationToken,
		CreatedAt:         acct.CreatedAt,
		UpdatedAt:         acct.UpdatedAt,
	}
}

func fromDoc(doc accountDoc) (*Account, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id in store: %w", err)
	}
	return &Account{
		ID:                id,
		Email:             doc.Email,
		PasswordHash:      doc.PasswordHash,
		Subscription:      Subscription(doc.Subscription),
		AvatarURL:         doc.AvatarURL,
		SessionToken:      doc.SessionToken,
		Verified:          doc.Verified,
		VerificationToken: doc.VerificationToken,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}, nil
}
