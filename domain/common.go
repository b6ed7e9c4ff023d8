package domain

import (
	"errors"
	"sort"
	"strings"
)

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
)

// Sentinel selections meaning "no filter applied".
const (
	AllCategories = "All Categories"
	AnyTime       = "Any Time"
	AllAreas      = "All Areas"
)

var (
	Categories = []string{
		"Pancakes", "Street Food", "South Indian", "Maharashtrian",
		"Snacks", "Chaats", "Breakfast", "Beverages",
	}

	MealTags = []string{
		"Vegetarian", "Vegan", "Gluten-Free", "Healthy",
		"Protein-Rich", "Spicy", "Sweet",
	}

	Areas = []string{"Sakhrale", "Takari", "Islampur", "Walwa"}
)

var (
	MesaageUserNotAllowed       = "user not allowed"
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExpired   = errors.New("session expired")
	ErrUserNotAllowed   = errors.New("user not allowed")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

// ValidationError carries per-field messages from client-side checks, so a
// form can show each message next to the offending input.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, m := range e.Fields {
		msgs = append(msgs, m)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, ", ")
}
