package domain

// Rand is the random source used for word and impostor selection.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// wordBank holds the candidate secret words per category. Every list is non-empty.
var wordBank = map[Category][]string{
	CategoryFruits: {
		"Apple", "Banana", "Strawberry", "Mango", "Orange",
		"Pineapple", "Grape", "Pear", "Melon", "Watermelon",
	},
	CategorySports: {
		"Football", "Basketball", "Tennis", "Swimming", "Athletics",
		"Cycling", "Volleyball", "Baseball", "Golf", "Boxing",
	},
	CategoryArtists: {
		"Bad Bunny", "Shakira", "Mozart", "Picasso", "Michael Jackson",
		"Beyoncé", "Leonardo da Vinci", "Frida Kahlo", "Elvis Presley", "Madonna",
	},
	CategoryCountries: {
		"Ecuador", "Mexico", "Spain", "Argentina", "Colombia",
		"Chile", "Peru", "Brazil", "Venezuela", "Uruguay",
	},
	CategoryPlaces: {
		"Beach", "Mountain", "Park", "Airport", "Restaurant",
		"Library", "Hospital", "School", "Stadium", "Shopping Mall",
	},
	CategoryObjects: {
		"Phone", "Laptop", "Watch", "Backpack", "Glasses",
		"Keys", "Handbag", "Wallet", "Headphones", "Camera",
	},
	CategoryAnimals: {
		"Dog", "Cat", "Lion", "Elephant", "Tiger",
		"Giraffe", "Monkey", "Dolphin", "Eagle", "Turtle",
	},
}

// WordsFor returns a copy of the word list for a category
func WordsFor(c Category) ([]string, error) {
	words, ok := wordBank[c]
	if !ok {
		return nil, ErrInvalidCategory
	}
	out := make([]string, len(words))
	copy(out, words)
	return out, nil
}

// PickSecretWord returns a uniformly random word from the category
func PickSecretWord(rng Rand, c Category) (string, error) {
	words, ok := wordBank[c]
	if !ok {
		return "", ErrInvalidCategory
	}
	return words[rng.IntN(len(words))], nil
}

// PickSecretWordExcluding returns a random word that's not in the excluded list.
// Once every word of the category has been used it falls back to any word.
func PickSecretWordExcluding(rng Rand, c Category, excluded []string) (string, error) {
	words, ok := wordBank[c]
	if !ok {
		return "", ErrInvalidCategory
	}

	excludeMap := make(map[string]bool, len(excluded))
	for _, w := range excluded {
		excludeMap[w] = true
	}

	remaining := make([]string, 0, len(words))
	for _, w := range words {
		if !excludeMap[w] {
			remaining = append(remaining, w)
		}
	}

	if len(remaining) == 0 {
		return words[rng.IntN(len(words))], nil
	}
	return remaining[rng.IntN(len(remaining))], nil
}
