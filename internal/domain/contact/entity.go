package contact

// Collection holds exactly one logical document.
const Collection = "contact"

// ID is the fixed key of the singleton profile document.
const ID = "contact_profile"

// Contact is the deployment's single contact profile. All fields are plain
// strings; there are no attachments.
type Contact struct {
	ID           string `bson:"_id" json:"-"`
	Phone        string `bson:"phone" json:"phone"`
	Email        string `bson:"email" json:"email"`
	Location     string `bson:"location" json:"location"`
	MapEmbed     string `bson:"map_embed" json:"map_embed"`
	HeroImageURL string `bson:"hero_image_url" json:"hero_image_url"`
}

// Default is what reads return before any profile has been saved.
func Default() *Contact {
	return &Contact{ID: ID}
}
