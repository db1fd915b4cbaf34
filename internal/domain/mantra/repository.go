package mantra

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"devimantras/internal/domain/media"
)

// ListFilter narrows a listing; the zero value lists everything.
type ListFilter struct {
	Category string
	Language string
}

// Update is the field set applied by an edit. Metadata fields are always
// replaced; a nil attachment leaves the stored slot completely untouched.
type Update struct {
	Name        string
	Language    string
	Description string
	Category    string
	Image       *media.Attachment
	PDF         *media.Attachment
	Audio       *media.Attachment
}

// Repository is the store capability used by the service. The production
// implementation is Mongo-backed; tests substitute an in-memory fake.
type Repository interface {
	Insert(ctx context.Context, m *Mantra) (primitive.ObjectID, error)
	List(ctx context.Context, filter ListFilter) ([]Mantra, error)
	GetMeta(ctx context.Context, id primitive.ObjectID) (*Mantra, error)
	GetAttachment(ctx context.Context, id primitive.ObjectID, slot string) (*media.Attachment, error)
	Update(ctx context.Context, id primitive.ObjectID, upd Update) (*Mantra, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoRepository struct {
	col *mongo.Collection
}

// NewRepository creates the Mongo-backed mantra repository.
func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{col: db.Collection(Collection)}
}

// metaProjection strips binary payloads from reads. Filenames and content
// types still travel so URL derivation can see which slots are set.
var metaProjection = bson.M{
	"image.data": 0,
	"pdf.data":   0,
	"audio.data": 0,
}

func (r *mongoRepository) Insert(ctx context.Context, m *Mantra) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoRepository) List(ctx context.Context, filter ListFilter) ([]Mantra, error) {
	q := bson.M{}
	if filter.Category != "" {
		q["category"] = filter.Category
	}
	if filter.Language != "" {
		q["language"] = filter.Language
	}

	opts := options.Find().
		SetProjection(metaProjection).
		SetSort(bson.D{{Key: "_id", Value: -1}}) // newest first

	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}

	out := []Mantra{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoRepository) GetMeta(ctx context.Context, id primitive.ObjectID) (*Mantra, error) {
	var m Mantra
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(metaProjection)).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mongoRepository) GetAttachment(ctx context.Context, id primitive.ObjectID, slot string) (*media.Attachment, error) {
	var m Mantra
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{slot: 1})).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	att := m.Slot(slot)
	if att == nil || len(att.Data) == 0 {
		return nil, ErrAttachmentNotFound
	}
	return att, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*Mantra, error) {
	set := bson.M{
		"name":        upd.Name,
		"language":    upd.Language,
		"description": upd.Description,
		"category":    upd.Category,
	}
	// Only slots explicitly present in the edit overwrite stored attachments.
	if upd.Image != nil {
		set["image"] = upd.Image
	}
	if upd.PDF != nil {
		set["pdf"] = upd.PDF
	}
	if upd.Audio != nil {
		set["audio"] = upd.Audio
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(metaProjection)

	var m Mantra
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
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
