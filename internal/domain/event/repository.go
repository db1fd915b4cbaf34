package event

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devimantras/internal/domain/media"
)

// Update names the fields an edit applies. Empty metadata strings and nil
// attachments are skipped entirely.
type Update struct {
	Name        string
	Description string
	Image       *media.Attachment
	PDF         *media.Attachment
}

// Empty reports whether the update names nothing at all.
func (u Update) Empty() bool {
	return u.Name == "" && u.Description == "" && u.Image == nil && u.PDF == nil
}

// Repository is the store capability used by the service. Tests substitute an
// in-memory fake.
type Repository interface {
	Insert(ctx context.Context, e *Event) (primitive.ObjectID, error)
	List(ctx context.Context) ([]Event, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	GetAttachment(ctx context.Context, id primitive.ObjectID, slot string) (*media.Attachment, error)
	Update(ctx context.Context, id primitive.ObjectID, upd Update) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates the Mongo-backed event repository.
func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(Collection)}
}

var metaProjection = bson.M{
	"image.data": 0,
	"pdf.data":   0,
}

func (r *mongoRepository) Insert(ctx context.Context, e *Event) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoRepository) List(ctx context.Context) ([]Event, error) {
	opts := options.Find().
		SetProjection(metaProjection).
		SetSort(bson.D{{Key: "_id", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	out := []Event{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mongoRepository) GetAttachment(ctx context.Context, id primitive.ObjectID, slot string) (*media.Attachment, error) {
	var e Event
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{slot: 1})).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	att := e.Slot(slot)
	if att == nil || len(att.Data) == 0 {
		return nil, ErrAttachmentNotFound
	}
	return att, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{}
	if upd.Name != "" {
		set["name"] = upd.Name
	}
	if upd.Description != "" {
		set["description"] = upd.Description
	}
	if upd.Image != nil {
		set["image"] = upd.Image
	}
	if upd.PDF != nil {
		set["pdf"] = upd.PDF
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
