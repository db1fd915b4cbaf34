package event

import "devimantras/internal/domain/media"

// UpcomingStatus annotates listed events that have no description and no
// attachments yet. It is computed at read time, never stored.
const UpcomingStatus = "Upcoming Event"

// CreateForm is the multipart metadata of POST /events. Files ride alongside
// under the image/pdf field names.
type CreateForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description"`
}

// UpdateForm is the multipart metadata of PUT /events/{id}. Every field is
// optional; only non-empty ones are applied.
type UpdateForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
}

// Response is the wire shape of an event: metadata, derived attachment URLs
// and the synthetic status marker. Binary payloads never appear here.
type Response struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageFilename string `json:"image_filename,omitempty"`
	PDFFilename   string `json:"pdf_filename,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	PDFURL        string `json:"pdf_url,omitempty"`
	Status        string `json:"status,omitempty"`
}

// ToResponse strips the record to its wire shape.
func ToResponse(e *Event) Response {
	id := e.ID.Hex()
	r := Response{
		ID:          id,
		Name:        e.Name,
		Description: e.Description,
	}
	if e.Image.Present() {
		r.ImageFilename = e.Image.Filename
		r.ImageURL = media.URL(Collection, id, media.SlotImage)
	}
	if e.PDF.Present() {
		r.PDFFilename = e.PDF.Filename
		r.PDFURL = media.URL(Collection, id, media.SlotPDF)
	}
	if e.Bare() {
		r.Status = UpcomingStatus
	}
	return r
}

// ToResponseList maps a listing, preserving order.
func ToResponseList(es []Event) []Response {
	out := make([]Response, len(es))
	for i := range es {
		out[i] = ToResponse(&es[i])
	}
	return out
}
