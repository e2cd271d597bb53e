package contact

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

type contactDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	Favorite  bool      `bson:"favorite"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoRepository implements Repository against the contacts collection.
type MongoRepository struct {
	contacts *mongo.Collection
}

// NewMongoRepository creates a new Mongo-backed contact repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{contacts: db.Collection("contacts")}
}

func (r *MongoRepository) Create(ctx context.Context, c *Contact) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := r.contacts.InsertOne(ctx, toContactDoc(c))
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id uuid.UUID) (*Contact, error) {
	var doc contactDoc
	err := r.contacts.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to look up contact: %w", err)
	}
	return fromContactDoc(doc)
}

func (r *MongoRepository) List(ctx context.Context, params ListParams) ([]Contact, error) {
	params = params.Normalize()

	filter := bson.M{}
	if params.Favorite != nil {
		filter["favorite"] = *params.Favorite
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(int64((params.Page - 1) * params.Limit)).
		SetLimit(int64(params.Limit))

	cursor, err := r.contacts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []contactDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}

	contacts := make([]Contact, 0, len(docs))
	for _, doc := range docs {
		c, err := fromContactDoc(doc)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, nil
}

func (r *MongoRepository) Update(ctx context.Context, c *Contact) error {
	c.UpdatedAt = time.Now().UTC()

	res, err := r.contacts.UpdateOne(ctx, bson.M{"_id": c.ID.String()}, bson.M{"$set": bson.M{
		"name":       c.Name,
		"email":      c.Email,
		"phone":      c.Phone,
		"favorite":   c.Favorite,
		"updated_at": c.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrContactNotFound
	}
	return nil
}

func (r *MongoRepository) UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc contactDoc
	err := r.contacts.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, bson.M{"$set": bson.M{
		"favorite":   favorite,
		"updated_at": time.Now().UTC(),
	}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to update favorite: %w", err)
	}
	return fromContactDoc(doc)
}

func (r *MongoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.contacts.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrContactNotFound
	}
	return nil
}

func toContactDoc(c *Contact) contactDoc {
	return contactDoc{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Favorite:  c.Favorite,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromContactDoc(doc contactDoc) (*Contact, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid contact id in store: %w", err)
	}
	return &Contact{
		ID:        id,
		Name:      doc.Name,
		Email:     doc.Email,
		Phone:     doc.Phone,
		Favorite:  doc.Favorite,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
