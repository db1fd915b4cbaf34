package mantra

import "devimantras/internal/domain/media"

// UploadForm is the multipart metadata of POST /mantras/upload. Files ride
// alongside under the image/pdf/audio field names.
type UploadForm struct {
	Name        string `form:"mantra_name" validate:"required"`
	Language    string `form:"language" validate:"required"`
	Description string `form:"description"`
	Category    string `form:"category" validate:"required"`
}

// EditForm is the multipart metadata of PUT /mantras/{id}. Metadata is always
// replaced in full; partial metadata update is not supported.
type EditForm struct {
	Name        string `form:"mantra_name" validate:"required"`
	Language    string `form:"language" validate:"required"`
	Description string `form:"description"`
	Category    string `form:"category" validate:"required"`
}

// Response is the wire shape of a mantra: metadata plus derived attachment
// URLs. Binary payloads never appear here.
type Response struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Language      string `json:"language"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	ImageFilename string `json:"image_filename,omitempty"`
	PDFFilename   string `json:"pdf_filename,omitempty"`
	AudioFilename string `json:"audio_filename,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	PDFURL        string `json:"pdf_url,omitempty"`
	AudioURL      string `json:"audio_url,omitempty"`
}

// ToResponse strips the record to its wire shape. A *_url field is present
// exactly when the slot's filename is set.
func ToResponse(m *Mantra) Response {
	id := m.ID.Hex()
	r := Response{
		ID:          id,
		Name:        m.Name,
		Language:    m.Language,
		Description: m.Description,
		Category:    m.Category,
	}
	if m.Image.Present() {
		r.ImageFilename = m.Image.Filename
		r.ImageURL = media.URL(Collection, id, media.SlotImage)
	}
	if m.PDF.Present() {
		r.PDFFilename = m.PDF.Filename
		r.PDFURL = media.URL(Collection, id, media.SlotPDF)
	}
	if m.Audio.Present() {
		r.AudioFilename = m.Audio.Filename
		r.AudioURL = media.URL(Collection, id, media.SlotAudio)
	}
	return r
}

// ToResponseList maps a listing, preserving order.
func ToResponseList(ms []Mantra) []Response {
	out := make([]Response, len(ms))
	for i := range ms {
		out[i] = ToResponse(&ms[i])
	}
	return out
}
