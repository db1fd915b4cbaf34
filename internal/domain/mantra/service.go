package mantra

import (
	"context"
	"mime/multipart"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"devimantras/internal/domain/media"
)

// Service implements mantra business rules over the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UploadInput carries the parsed upload request. Image and PDF are mandatory;
// Audio may be nil.
type UploadInput struct {
	Name        string
	Language    string
	Description string
	Category    string
	Image       *multipart.FileHeader
	PDF         *multipart.FileHeader
	Audio       *multipart.FileHeader
}

// EditInput carries a full metadata replacement plus optional attachment
// replacements; nil file headers leave the stored slots untouched.
type EditInput struct {
	Name        string
	Language    string
	Description string
	Category    string
	Image       *multipart.FileHeader
	PDF         *multipart.FileHeader
	Audio       *multipart.FileHeader
}

// ParseID validates a caller-supplied id string before any store access.
func ParseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// Upload validates the category, reads the attachments and inserts the record.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*Mantra, error) {
	category, err := NormalizeCategory(in.Category)
	if err != nil {
		return nil, err
	}

	image, err := media.FromFileHeader(in.Image, media.FallbackImage)
	if err != nil {
		return nil, err
	}
	pdf, err := media.FromFileHeader(in.PDF, media.FallbackPDF)
	if err != nil {
		return nil, err
	}
	var audio *media.Attachment
	if in.Audio != nil {
		if audio, err = media.FromFileHeader(in.Audio, media.FallbackAudio); err != nil {
			return nil, err
		}
	}

	m := &Mantra{
		Name:        strings.TrimSpace(in.Name),
		Language:    strings.TrimSpace(in.Language),
		Description: strings.TrimSpace(in.Description),
		Category:    category,
		Image:       image,
		PDF:         pdf,
		Audio:       audio,
	}

	id, err := s.repo.Insert(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = id
	return m, nil
}

// List returns all mantras, newest first, optionally filtered by category
// and/or language. A non-empty category is normalized before filtering.
func (s *Service) List(ctx context.Context, category, language string) ([]Mantra, error) {
	var filter ListFilter
	if category != "" {
		normalized, err := NormalizeCategory(category)
		if err != nil {
			return nil, err
		}
		filter.Category = normalized
	}
	filter.Language = language
	return s.repo.List(ctx, filter)
}

// Grouped returns every mantra keyed by category. All allowed categories
// appear as keys, empty groups included.
func (s *Service) Grouped(ctx context.Context) (map[string][]Mantra, error) {
	all, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]Mantra, len(AllowedCategories))
	for _, cat := range AllowedCategories {
		grouped[cat] = []Mantra{}
	}
	for _, m := range all {
		// A record whose stored category fell outside the allowed set
		// must not surface as an extra key.
		if _, ok := grouped[m.Category]; ok {
			grouped[m.Category] = append(grouped[m.Category], m)
		}
	}
	return grouped, nil
}

// Get returns a single record without binary payloads.
func (s *Service) Get(ctx context.Context, id string) (*Mantra, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetMeta(ctx, oid)
}

// GetAttachment returns a slot's payload for streaming.
func (s *Service) GetAttachment(ctx context.Context, id, slot string) (*media.Attachment, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAttachment(ctx, oid, slot)
}

// Edit replaces the metadata and any attachments present in the request. An
// omitted attachment leaves the stored one byte-for-byte unchanged.
func (s *Service) Edit(ctx context.Context, id string, in EditInput) (*Mantra, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	category, err := NormalizeCategory(in.Category)
	if err != nil {
		return nil, err
	}

	upd := Update{
		Name:        strings.TrimSpace(in.Name),
		Language:    strings.TrimSpace(in.Language),
		Description: strings.TrimSpace(in.Description),
		Category:    category,
	}
	if in.Image != nil {
		if upd.Image, err = media.FromFileHeader(in.Image, media.FallbackImage); err != nil {
			return nil, err
		}
	}
	if in.PDF != nil {
		if upd.PDF, err = media.FromFileHeader(in.PDF, media.FallbackPDF); err != nil {
			return nil, err
		}
	}
	if in.Audio != nil {
		if upd.Audio, err = media.FromFileHeader(in.Audio, media.FallbackAudio); err != nil {
			return nil, err
		}
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
