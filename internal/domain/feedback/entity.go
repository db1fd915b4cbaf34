package feedback

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection is the store collection name.
const Collection = "feedback"

// TTL is how long a submission is retained; the store removes expired
// documents through a standing index on created_at.
const TTL = 30 * 24 * time.Hour

// Feedback is a transient public submission. The store-assigned id is never
// returned to callers.
type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
