package entities

type StoreAddress struct {
	Street string `json:"street,omitempty"`
	Area   string `json:"area,omitempty"`
	City   string `json:"city,omitempty"`
}

type Store struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Address     StoreAddress `json:"address,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Specialties []string     `json:"specialties,omitempty"`
	Features    []string     `json:"features,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
	IsActive    bool         `json:"isActive"`
	Images      []string     `json:"images,omitempty"`
}
