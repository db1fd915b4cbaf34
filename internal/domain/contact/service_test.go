package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRepo applies upserts field-by-field, the way the store's $set does. An
// upsert naming no fields would be rejected by the store, so it fails here too.
type fakeRepo struct {
	doc     *Contact
	upserts int
}

func (r *fakeRepo) Get(_ context.Context) (*Contact, error) {
	if r.doc == nil {
		return nil, nil
	}
	c := *r.doc
	return &c, nil
}

func (r *fakeRepo) Upsert(_ context.Context, fields map[string]string) (*Contact, error) {
	r.upserts++
	if len(fields) == 0 {
		return nil, errors.New("empty update")
	}
	if r.doc == nil {
		r.doc = &Contact{ID: ID}
	}
	for k, v := range fields {
		switch k {
		case "phone":
			r.doc.Phone = v
		case "email":
			r.doc.Email = v
		case "location":
			r.doc.Location = v
		case "map_embed":
			r.doc.MapEmbed = v
		case "hero_image_url":
			r.doc.HeroImageURL = v
		}
	}
	c := *r.doc
	return &c, nil
}

func (r *fakeRepo) Delete(_ context.Context) error {
	r.doc = nil
	return nil
}

func TestGetBeforeAnyWriteReturnsDefault(t *testing.T) {
	svc := NewService(&fakeRepo{})

	c, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestEmptyFieldsNeverOverwriteStoredValues(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	_, err := svc.Save(ctx, SaveInput{Phone: "+91 12345", Email: "x@y.com"})
	require.NoError(t, err)

	// blank phone and email must not erase the stored values
	_, err = svc.Save(ctx, SaveInput{Phone: "", Email: "", Location: "Hyderabad"})
	require.NoError(t, err)

	c, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "x@y.com", c.Email)
	require.Equal(t, "+91 12345", c.Phone)
	require.Equal(t, "Hyderabad", c.Location)
}

func TestAllBlankWriteSkipsTheUpsert(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Save(ctx, SaveInput{Phone: "+91 12345"})
	require.NoError(t, err)

	// nothing but blanks: the write must succeed without touching the store
	c, err := svc.Save(ctx, SaveInput{Phone: "", Email: "  "})
	require.NoError(t, err)
	require.Equal(t, 1, repo.upserts)
	require.Equal(t, "+91 12345", c.Phone)
}

func TestAllBlankWriteOnEmptyStoreReturnsDefault(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	c, err := svc.Save(context.Background(), SaveInput{})
	require.NoError(t, err)
	require.Zero(t, repo.upserts)
	require.Equal(t, Default(), c)
}

func TestSaveRejectsMalformedEmail(t *testing.T) {
	svc := NewService(&fakeRepo{})
	_, err := svc.Save(context.Background(), SaveInput{Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestClearFallsBackToDefault(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	_, err := svc.Save(ctx, SaveInput{Phone: "+91 12345"})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))

	c, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}
