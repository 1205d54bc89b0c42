package domain

import "strings"

// Category identifies a themed word list
type Category string

const (
	CategoryFruits    Category = "fruits"
	CategorySports    Category = "sports"
	CategoryArtists   Category = "artists"
	CategoryCountries Category = "countries"
	CategoryPlaces    Category = "places"
	CategoryObjects   Category = "objects"
	CategoryAnimals   Category = "animals"
)

// CategoryInfo is the display configuration for a category
type CategoryInfo struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
	Icon  string   `json:"icon"`
}

// categoryTable is the fixed display order shown on the setup screen
var categoryTable = []CategoryInfo{
	{Key: CategoryFruits, Label: "Fruits", Icon: "🍎"},
	{Key: CategorySports, Label: "Sports", Icon: "⚽"},
	{Key: CategoryArtists, Label: "Artists", Icon: "🎤"},
	{Key: CategoryCountries, Label: "Countries", Icon: "🌍"},
	{Key: CategoryPlaces, Label: "Places", Icon: "📍"},
	{Key: CategoryObjects, Label: "Objects", Icon: "🧸"},
	{Key: CategoryAnimals, Label: "Animals", Icon: "🐶"},
}

// Categories returns the category table in display order
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// ParseCategory resolves a category key
func ParseCategory(key string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(key)))
	if _, ok := wordBank[c]; !ok {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// Info returns the label and icon for the category. Unknown keys echo the key.
func (c Category) Info() CategoryInfo {
	for _, info := range categoryTable {
		if info.Key == c {
			return info
		}
	}
	return CategoryInfo{Key: c, Label: string(c)}
}

// DisplayName returns the icon followed by the label
func (c Category) DisplayName() string {
	info := c.Info()
	if info.Icon == "" {
		return info.Label
	}
	return info.Icon + " " + info.Label
}
