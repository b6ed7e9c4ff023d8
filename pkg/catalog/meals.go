// Package catalog computes the render-ready view of a fetched collection:
// pure filter and sort passes over meals and stores. Inputs are never
// mutated; every call returns a fresh slice.
package catalog

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/entities"
	"sort"
	"strings"
)

type SortOption string

const (
	SortHighestRated SortOption = "Highest Rated"
	SortPriceLowHigh SortOption = "Price: Low to High"
	SortPriceHighLow SortOption = "Price: High to Low"
	SortMostPopular  SortOption = "Most Popular"
)

var SortOptions = []SortOption{
	SortHighestRated, SortPriceLowHigh, SortPriceHighLow, SortMostPopular,
}

// MealQuery carries the active selections of the menu page. Zero values and
// the sentinel selections ("All Categories", "Any Time") apply no filter.
type MealQuery struct {
	Search    string
	Category  string
	TimeOfDay string
	SortBy    SortOption
}

// Meals runs the full pipeline: filter, then stable sort.
func Meals(items []entities.Meal, q MealQuery) []entities.Meal {
	return SortMeals(FilterMeals(items, q), q.SortBy)
}

func FilterMeals(items []entities.Meal, q MealQuery) []entities.Meal {
	search := strings.ToLower(q.Search)

	out := make([]entities.Meal, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		if q.Category != "" && q.Category != domain.AllCategories && item.Category != q.Category {
			continue
		}
		if q.TimeOfDay != "" && q.TimeOfDay != domain.AnyTime && item.TimeOfDay != q.TimeOfDay {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SortMeals orders a copy of items by the selected key. Missing ratings and
// review counts count as zero. Equal keys keep their incoming order.
func SortMeals(items []entities.Meal, by SortOption) []entities.Meal {
	out := make([]entities.Meal, len(items))
	copy(out, items)

	switch by {
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortMostPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReviewCount > out[j].ReviewCount
		})
	default: // Highest Rated
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}

// MealsByTimeOfDay keeps the meals of one dashboard time-slot tab.
func MealsByTimeOfDay(items []entities.Meal, timeOfDay string) []entities.Meal {
	out := make([]entities.Meal, 0, len(items))
	for _, item := range items {
		if item.TimeOfDay == timeOfDay {
			out = append(out, item)
		}
	}
	return out
}
