package services

import (
	"fmt"

	"github.com/Francobelbruno/Portafolio/internal/models"
)

// cardAnimationStep staggers the entrance animation of consecutive cards
const cardAnimationStep = 0.1

// BuildCards prepares the gallery projects for display, in gallery order
func BuildCards(g *models.Gallery) []models.Card {
	cards := make([]models.Card, 0, len(g.Projects))
	for i, p := range g.Projects {
		tags := make([]string, 0, len(p.Topics)+1)
		if p.Language != nil && *p.Language != "" {
			tags = append(tags, *p.Language)
		}
		tags = append(tags, p.Topics...)

		cards = append(cards, models.Card{
			Project:        p,
			DisplayName:    FormatDisplayName(p.Name),
			Category:       Classify(p),
			DemoURL:        InferDemoURL(g.Account, p),
			Tags:           tags,
			AnimationDelay: fmt.Sprintf("%.1fs", float64(i)*cardAnimationStep),
		})
	}
	return cards
}

// ApplyFilter marks every card outside filter as hidden
func ApplyFilter(cards []models.Card, filter models.Category) []models.Card {
	out := make([]models.Card, len(cards))
	for i, c := range cards {
		c.Hidden = !c.Category.Matches(filter)
		out[i] = c
	}
	return out
}

// VisibleCards returns the cards shown under filter
func VisibleCards(cards []models.Card, filter models.Category) []models.Card {
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if c.Category.Matches(filter) {
			out = append(out, c)
		}
	}
	return out
}
