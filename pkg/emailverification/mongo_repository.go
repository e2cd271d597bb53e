package emailverification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// accountDoc mirrors the fields of the accounts collection this package
// reads and writes. The collection is owned by pkg/account.
type accountDoc struct {
	ID                string  `bson:"_id"`
	Email             string  `bson:"email"`
	Verified          bool    `bson:"verified"`
	VerificationToken *string `bson:"verification_token"`
}

// MongoRepository implements Repository against the accounts collection.
type MongoRepository struct {
	accounts *mongo.Collection
}

// NewMongoRepository creates a new Mongo-backed verification repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{accounts: db.Collection("accounts")}
}

// IssueToken overwrites the account's pending verification token.
func (r *MongoRepository) IssueToken(ctx context.Context, accountID uuid.UUID, encodedToken string) error {
	res, err := r.accounts.UpdateOne(ctx,
		bson.M{"_id": accountID.String()},
		bson.M{"$set": bson.M{"verification_token": encodedToken}},
	)
	if err != nil {
		return fmt.Errorf("failed to issue verification token: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByToken looks up the account holding the exact token string.
func (r *MongoRepository) FindByToken(ctx context.Context, encodedToken string) (*AccountStatus, error) {
	var doc accountDoc
	err := r.accounts.FindOne(ctx, bson.M{"verification_token": encodedToken}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up verification token: %w", err)
	}
	return docToStatus(doc)
}

// FindByEmail looks up the account with the given email.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*AccountStatus, error) {
	var doc accountDoc
	err := r.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account by email: %w", err)
	}
	return docToStatus(doc)
}

// MarkVerified flips the verified flag and clears the token in one update.
func (r *MongoRepository) MarkVerified(ctx context.Context, accountID uuid.UUID) error {
	res, err := r.accounts.UpdateOne(ctx,
		bson.M{"_id": accountID.String()},
		bson.M{"$set": bson.M{"verified": true, "verification_token": nil}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark account verified: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func docToStatus(doc accountDoc) (*AccountStatus, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id in store: %w", err)
	}
	return &AccountStatus{
		ID:                id,
		Email:             doc.Email,
		Verified:          doc.Verified,
		VerificationToken: doc.VerificationToken,
	}, nil
}
