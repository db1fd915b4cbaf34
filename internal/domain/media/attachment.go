// Package media defines the shared attachment model used by every
// binary-bearing record: a record owns zero or more named slots, each either
// structurally absent or holding a payload with its filename and content type.
package media

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
)

// Slot names. They double as the last segment of derived fetch URLs.
const (
	SlotImage = "image"
	SlotPDF   = "pdf"
	SlotAudio = "audio"
)

// Per-slot fallback content types, used when the upload declares no type and
// the filename extension is unknown.
const (
	FallbackImage = "image/jpeg"
	FallbackPDF   = "application/pdf"
	FallbackAudio = "audio/mpeg"
)

// Attachment is a binary payload embedded in its parent record. A nil
// *Attachment means the slot is absent: no bytes, no filename, no content
// type is ever stored for it.
type Attachment struct {
	Data        []byte `bson:"data"`
	Filename    string `bson:"filename"`
	ContentType string `bson:"content_type"`
}

// Present reports whether the slot carries a payload. URL derivation keys off
// the filename, matching what metadata reads can see without the bytes.
func (a *Attachment) Present() bool {
	return a != nil && a.Filename != ""
}

// ResolveContentType picks the effective MIME type for an upload: the
// caller-declared type wins, then a guess from the filename extension, then
// the slot fallback.
func ResolveContentType(declared, filename, fallback string) string {
	if declared != "" {
		return declared
	}
	if filename != "" {
		if mt := mime.TypeByExtension(filepath.Ext(filename)); mt != "" {
			return mt
		}
	}
	return fallback
}

// FromFileHeader reads the whole multipart file into memory and wraps it as
// an attachment. Payloads are not size-bounded here; the store caps document
// size.
func FromFileHeader(fh *multipart.FileHeader, fallback string) (*Attachment, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}

	return &Attachment{
		Data:        data,
		Filename:    fh.Filename,
		ContentType: ResolveContentType(fh.Header.Get("Content-Type"), fh.Filename, fallback),
	}, nil
}

// URL derives the public fetch path for a slot: /{collection}/{id}/{slot}.
func URL(collection, id, slot string) string {
	return "/" + collection + "/" + id + "/" + slot
}
