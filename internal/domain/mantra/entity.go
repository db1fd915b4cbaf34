package mantra

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"devimantras/internal/domain/media"
)

// Collection is the store collection name; it is also the first segment of
// every derived attachment URL.
const Collection = "mantras"

// Mantra is a stored mantra record. Attachment slots are nil when absent, so
// an absent slot stores no keys at all.
type Mantra struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Language    string             `bson:"language"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Image       *media.Attachment  `bson:"image,omitempty"`
	PDF         *media.Attachment  `bson:"pdf,omitempty"`
	Audio       *media.Attachment  `bson:"audio,omitempty"`
}

// Slot returns the attachment stored under the given slot name, nil for
// unknown slots.
func (m *Mantra) Slot(name string) *media.Attachment {
	switch name {
	case media.SlotImage:
		return m.Image
	case media.SlotPDF:
		return m.PDF
	case media.SlotAudio:
		return m.Audio
	}
	return nil
}
