package catalog

import (
	"breakfast4u-web/domain"
	"breakfast4u-web/entities"
	"strings"
)

// StoreQuery carries the active selections of the store directory. Category
// is the cross-navigation filter carried over from a menu item; it matches
// any store whose specialties contain it as a case-insensitive substring.
type StoreQuery struct {
	Search   string
	Area     string
	OpenNow  bool
	Category string
}

func FilterStores(items []entities.Store, q StoreQuery) []entities.Store {
	search := strings.ToLower(q.Search)
	category := strings.ToLower(q.Category)

	out := make([]entities.Store, 0, len(items))
	for _, store := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(store.Name), search) &&
			!anySpecialtyContains(store.Specialties, search) {
			continue
		}
		if q.Area != "" && q.Area != domain.AllAreas && store.Address.Area != q.Area {
			continue
		}
		if q.OpenNow && !store.IsActive {
			continue
		}
		if category != "" && !anySpecialtyContains(store.Specialties, category) {
			continue
		}
		out = append(out, store)
	}
	return out
}

func anySpecialtyContains(specialties []string, needle string) bool {
	for _, s := range specialties {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
