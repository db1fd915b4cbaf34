package event

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devimantras/internal/domain/media"
)

type fakeRepo struct {
	byID  map[primitive.ObjectID]*Event
	order []primitive.ObjectID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[primitive.ObjectID]*Event{}}
}

func stripData(a *media.Attachment) *media.Attachment {
	if a == nil {
		return nil
	}
	return &media.Attachment{Filename: a.Filename, ContentType: a.ContentType}
}

func (r *fakeRepo) Insert(_ context.Context, e *Event) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *e
	stored.ID = id
	r.byID[id] = &stored
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeRepo) List(_ context.Context) ([]Event, error) {
	out := []Event{}
	for i := len(r.order) - 1; i >= 0; i-- {
		e := *r.byID[r.order[i]]
		e.Image = stripData(e.Image)
		e.PDF = stripData(e.PDF)
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeRepo) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeRepo) GetAttachment(_ context.Context, id primitive.ObjectID, slot string) (*media.Attachment, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	att := e.Slot(slot)
	if att == nil || len(att.Data) == 0 {
		return nil, ErrAttachmentNotFound
	}
	return att, nil
}

func (r *fakeRepo) Update(_ context.Context, id primitive.ObjectID, upd Update) error {
	e, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Name != "" {
		e.Name = upd.Name
	}
	if upd.Description != "" {
		e.Description = upd.Description
	}
	if upd.Image != nil {
		e.Image = upd.Image
	}
	if upd.PDF != nil {
		e.PDF = upd.PDF
	}
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func fileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestCreateRequiresName(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.Create(context.Background(), CreateInput{Name: "   "})
	require.ErrorIs(t, err, ErrNameRequired)
}

func TestBareEventGetsUpcomingMarker(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateInput{Name: "Navaratri"})
	require.NoError(t, err)

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, UpcomingStatus, ToResponse(&events[0]).Status)
}

func TestEventWithDescriptionHasNoMarker(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateInput{Name: "Navaratri", Description: "Nine nights"})
	require.NoError(t, err)

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, ToResponse(&events[0]).Status)
}

func TestEventWithAttachmentHasNoMarker(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Name:  "Navaratri",
		Image: fileHeader(t, "poster.jpg", []byte("jpeg")),
	})
	require.NoError(t, err)

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	resp := ToResponse(&events[0])
	require.Empty(t, resp.Status)
	require.NotEmpty(t, resp.ImageURL)
}

func TestUpdateAppliesOnlyNonEmptyFields(t *testing.T) {
	svc := NewService(newFakeRepo())

	e, err := svc.Create(context.Background(), CreateInput{Name: "Navaratri", Description: "Nine nights"})
	require.NoError(t, err)

	err = svc.Update(context.Background(), e.ID.Hex(), UpdateInput{Description: "Ten nights"})
	require.NoError(t, err)

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Navaratri", events[0].Name)
	require.Equal(t, "Ten nights", events[0].Description)
}

func TestUpdateWithNothingRejected(t *testing.T) {
	svc := NewService(newFakeRepo())

	e, err := svc.Create(context.Background(), CreateInput{Name: "Navaratri"})
	require.NoError(t, err)

	err = svc.Update(context.Background(), e.ID.Hex(), UpdateInput{Name: "  "})
	require.ErrorIs(t, err, ErrNoUpdates)
}

func TestUpdateMissingEvent(t *testing.T) {
	svc := NewService(newFakeRepo())
	err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateInput{Name: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEmptyUpdateOnMissingEventIsNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), UpdateInput{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingEvent(t *testing.T) {
	svc := NewService(newFakeRepo())
	require.ErrorIs(t, svc.Delete(context.Background(), primitive.NewObjectID().Hex()), ErrNotFound)
}

func TestMalformedID(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.GetAttachment(context.Background(), "nope", media.SlotImage)
	require.ErrorIs(t, err, ErrInvalidID)
}
