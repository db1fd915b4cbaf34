package contact

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the store capability for the singleton profile. Upsert only
// sets the fields it is given; callers decide which fields to include.
type Repository interface {
	Get(ctx context.Context) (*Contact, error)
	Upsert(ctx context.Context, fields map[string]string) (*Contact, error)
	Delete(ctx context.Context) error
}

type mongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates the Mongo-backed contact repository.
func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(Collection)}
}

// Get returns nil without error when the profile has never been written.
func (r *mongoRepository) Get(ctx context.Context) (*Contact, error) {
	var c Contact
	err := r.col.FindOne(ctx, bson.M{"_id": ID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoRepository) Upsert(ctx context.Context, fields map[string]string) (*Contact, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var c Contact
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": ID}, bson.M{"$set": set}, opts).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete clears the profile; deleting an absent profile is not an error.
func (r *mongoRepository) Delete(ctx context.Context) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": ID})
	return err
}
