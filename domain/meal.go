package domain

import "errors"

var (
	MessageSuccessCreateMeal = "Meal added successfully!"
	MessageSuccessUpdateMeal = "Meal updated successfully!"
	MessageSuccessDeleteMeal = "Meal deleted successfully!"
	MessageSuccessGetMeals   = "meals retrieved successfully"

	MessageFailedCreateMeal         = "Failed to create meal"
	MessageFailedUpdateMeal         = "Failed to update meal"
	MessageFailedDeleteMeal         = "Failed to delete meal"
	MessageFailedFetchMeals         = "Failed to fetch meals"
	MessageFailedToggleAvailability = "Failed to update availability"

	ErrMealValidation     = errors.New("meal validation failed")
	ErrDeleteNotConfirmed = errors.New("delete requires confirmation")
)

type (
	// MealRequest is the payload for both create and update of a menu item.
	// TimeOfDay is not user-chosen on the dashboard form; it is fixed to the
	// active time-slot tab before submission.
	MealRequest struct {
		Name            string   `json:"name" validate:"required"`
		Description     string   `json:"description" validate:"required"`
		Price           float64  `json:"price" validate:"gte=0"`
		Image           string   `json:"image" validate:"required,url"`
		Category        string   `json:"category" validate:"required"`
		TimeOfDay       string   `json:"timeOfDay" validate:"required,oneof=morning afternoon evening"`
		Tags            []string `json:"tags"`
		PreparationTime int      `json:"preparationTime" validate:"required,min=1"`
		IsAvailable     bool     `json:"isAvailable"`
	}

	// MealForm mirrors the dashboard form fields before normalization: price and
	// preparation time arrive as text, tags may be a single selection.
	MealForm struct {
		Name            string   `json:"name" form:"name"`
		Description     string   `json:"description" form:"description"`
		Price           string   `json:"price" form:"price"`
		Image           string   `json:"image" form:"image"`
		Category        string   `json:"category" form:"category"`
		Tags            []string `json:"tags" form:"tags"`
		PreparationTime string   `json:"preparationTime" form:"preparationTime"`
	}
)
