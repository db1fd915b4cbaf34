package event

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devimantras/internal/domain/media"
)

// Collection is the store collection name and the URL prefix for attachments.
const Collection = "events"

// Event is a stored event record. Both attachment slots are optional; there
// is no audio slot.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Image       *media.Attachment  `bson:"image,omitempty"`
	PDF         *media.Attachment  `bson:"pdf,omitempty"`
}

// Slot returns the attachment stored under the given slot name, nil for
// unknown slots.
func (e *Event) Slot(name string) *media.Attachment {
	switch name {
	case media.SlotImage:
		return e.Image
	case media.SlotPDF:
		return e.PDF
	}
	return nil
}

// Bare reports whether the event has no description and no attachments;
// listings annotate such events as upcoming placeholders.
func (e *Event) Bare() bool {
	return e.Description == "" && !e.Image.Present() && !e.PDF.Present()
}
