package feedback

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is the store capability used by the service. Tests substitute an
// in-memory fake that honors the expiry rule with a simulated clock.
type Repository interface {
	Insert(ctx context.Context, f *Feedback) error
	List(ctx context.Context) ([]Feedback, error)
	EnsureTTLIndex(ctx context.Context) error
}

type mongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates the Mongo-backed feedback repository.
func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(Collection)}
}

func (r *mongoRepository) Insert(ctx context.Context, f *Feedback) error {
	_, err := r.col.InsertOne(ctx, f)
	return err
}

func (r *mongoRepository) List(ctx context.Context) ([]Feedback, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	out := []Feedback{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnsureTTLIndex installs the standing expiry rule: documents disappear TTL
// after their created_at. Idempotent, run once at startup.
func (r *mongoRepository) EnsureTTLIndex(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(TTL / time.Second)),
	})
	return err
}
