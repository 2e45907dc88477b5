// Package catalog holds the fixed set of quiz topics.
package catalog

import (
	"fmt"

	"trivia-palooza/internal/domain"
)

var topics = []domain.Topic{
	{
		ID: "anime", Name: "Anime/Manga", Category: 31, Difficulty: "hard", Amount: 20, Icon: "🌸",
		Theme: domain.Theme{Primary: "pink", Secondary: "pink", Accent: "purple", Background: "pink"},
	},
	{
		ID: "cartoons", Name: "Cartoons/Animation", Category: 32, Difficulty: "medium", Amount: 20, Icon: "🎨",
		Theme: domain.Theme{Primary: "blue", Secondary: "blue", Accent: "blue", Background: "cyan"},
	},
	{
		ID: "videogames", Name: "Video Games", Category: 15, Difficulty: "medium", Amount: 20, Icon: "🎮",
		Theme: domain.Theme{Primary: "green", Secondary: "green", Accent: "green", Background: "emerald"},
	},
	{
		ID: "television", Name: "Television", Category: 14, Difficulty: "medium", Amount: 10, Icon: "📺",
		Theme: domain.Theme{Primary: "orange", Secondary: "orange", Accent: "red", Background: "red"},
	},
	{
		ID: "comics", Name: "Comics", Category: 29, Difficulty: "medium", Amount: 20, Icon: "💥",
		Theme: domain.Theme{Primary: "yellow", Secondary: "yellow", Accent: "orange", Background: "orange"},
	},
	{
		ID: "movies", Name: "Movies", Category: 11, Difficulty: "medium", Amount: 20, Icon: "🎬",
		Theme: domain.Theme{Primary: "indigo", Secondary: "indigo", Accent: "purple", Background: "purple"},
	},
}

// Topics returns a copy of the catalog in display order.
func Topics() []domain.Topic {
	out := make([]domain.Topic, len(topics))
	copy(out, topics)
	return out
}

// Lookup finds a topic by id.
func Lookup(id string) (domain.Topic, error) {
	for _, t := range topics {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Topic{}, fmt.Errorf("%w: %s", domain.ErrTopicNotFound, id)
}
