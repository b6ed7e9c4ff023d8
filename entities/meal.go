package entities

// Meal is a menu item as the remote breakfast4U API represents it.
// The API is Mongo-backed, so identity comes back as "_id".
type Meal struct {
	ID              string   `json:"_id"`
	OwnerID         string   `json:"owner,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	TimeOfDay       string   `json:"timeOfDay"` // "morning", "afternoon", "evening"
	Tags            []string `json:"tags,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	ReviewCount     int      `json:"reviewCount,omitempty"`
	PreparationTime int      `json:"preparationTime,omitempty"`
	IsAvailable     bool     `json:"isAvailable"`
	Image           string   `json:"image"`
}
