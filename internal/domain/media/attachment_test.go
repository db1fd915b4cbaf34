package media

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
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

func TestResolveContentType(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		filename string
		fallback string
		want     string
	}{
		{"declared wins", "audio/ogg", "chant.mp3", FallbackAudio, "audio/ogg"},
		{"extension guess", "", "scan.pdf", FallbackImage, "application/pdf"},
		{"unknown extension falls back", "", "payload.xyzq", FallbackAudio, FallbackAudio},
		{"no filename falls back", "", "", FallbackImage, FallbackImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveContentType(tt.declared, tt.filename, tt.fallback)
			if got != tt.want {
				t.Fatalf("ResolveContentType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromFileHeaderReadsPayload(t *testing.T) {
	payload := []byte("%PDF-1.4 fake")
	fh := fileHeader(t, "mantra.pdf", "", payload)

	att, err := FromFileHeader(fh, FallbackPDF)
	require.NoError(t, err)
	require.Equal(t, payload, att.Data)
	require.Equal(t, "mantra.pdf", att.Filename)
	require.Equal(t, "application/pdf", att.ContentType)
	require.True(t, att.Present())
}

func TestFromFileHeaderKeepsDeclaredContentType(t *testing.T) {
	fh := fileHeader(t, "cover", "image/png", []byte{0x89, 'P', 'N', 'G'})

	att, err := FromFileHeader(fh, FallbackImage)
	require.NoError(t, err)
	require.Equal(t, "image/png", att.ContentType)
}

func TestAbsentSlotIsNotPresent(t *testing.T) {
	var a *Attachment
	if a.Present() {
		t.Fatal("nil attachment must not report present")
	}
}

func TestURLShape(t *testing.T) {
	got := URL("mantras", "64f0c8aa1c9d440000a1b2c3", SlotAudio)
	if got != "/mantras/64f0c8aa1c9d440000a1b2c3/audio" {
		t.Fatalf("unexpected url %q", got)
	}
}
