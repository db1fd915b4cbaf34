package event

import (
	"context"
	"mime/multipart"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devimantras/internal/domain/media"
)

// Service implements event business rules over the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput carries a parsed create request; both files may be nil.
type CreateInput struct {
	Name        string
	Description string
	Image       *multipart.FileHeader
	PDF         *multipart.FileHeader
}

// UpdateInput carries a parsed update request; everything is optional.
type UpdateInput struct {
	Name        string
	Description string
	Image       *multipart.FileHeader
	PDF         *multipart.FileHeader
}

// ParseID validates a caller-supplied id string before any store access.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// Create inserts a new event. The name is mandatory; attachments are not.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Event, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	e := &Event{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}

	var err error
	if in.Image != nil {
		if e.Image, err = media.FromFileHeader(in.Image, media.FallbackImage); err != nil {
			return nil, err
		}
	}
	if in.PDF != nil {
		if e.PDF, err = media.FromFileHeader(in.PDF, media.FallbackPDF); err != nil {
			return nil, err
		}
	}

	id, err := s.repo.Insert(ctx, e)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return e, nil
}

// List returns all events, newest first.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

// GetAttachment returns a slot's payload for streaming.
func (s *Service) GetAttachment(ctx context.Context, id, slot string) (*media.Attachment, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAttachment(ctx, oid, slot)
}

// Update applies only the non-empty fields of the request. A request naming
// nothing at all is rejected.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	upd := Update{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
	}
	if in.Image != nil {
		if upd.Image, err = media.FromFileHeader(in.Image, media.FallbackImage); err != nil {
			return err
		}
	}
	if in.PDF != nil {
		if upd.PDF, err = media.FromFileHeader(in.PDF, media.FallbackPDF); err != nil {
			return err
		}
	}

	// A missing record wins over an empty form: the record is looked up
	// before the form content is judged.
	if upd.Empty() {
		ok, err := s.repo.Exists(ctx, oid)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		return ErrNoUpdates
	}

	return s.repo.Update(ctx, oid, upd)
}

// Delete removes the record and all embedded attachments.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}
