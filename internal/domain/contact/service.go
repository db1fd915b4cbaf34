package contact

import (
	"context"
	"strings"
)

// Service implements the singleton-profile rules over the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SaveInput carries the form fields of a profile write. Every field is
// optional.
type SaveInput struct {
	Phone        string
	Email        string
	Location     string
	MapEmbed     string
	HeroImageURL string
}

// Get returns the stored profile, or the fixed default payload when none has
// ever been saved.
func (s *Service) Get(ctx context.Context) (*Contact, error) {
	c, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return Default(), nil
	}
	return c, nil
}

// Save upserts the profile keyed on the fixed identity. Empty fields are
// dropped before the upsert, so blank input never erases a previously stored
// value.
func (s *Service) Save(ctx context.Context, in SaveInput) (*Contact, error) {
	email := strings.TrimSpace(in.Email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	fields := map[string]string{}
	put := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			fields[key] = v
		}
	}
	put("phone", in.Phone)
	put("email", email)
	put("location", in.Location)
	put("map_embed", in.MapEmbed)
	put("hero_image_url", in.HeroImageURL)

	// The store rejects an update naming no fields, so an all-blank write
	// reads back the current profile instead of touching the store.
	if len(fields) == 0 {
		return s.Get(ctx)
	}

	return s.repo.Upsert(ctx, fields)
}

// Clear removes the stored profile; reads fall back to the default payload
// afterwards.
func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx)
}
