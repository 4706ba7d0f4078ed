package dashboard

import (
	"github.com/trezcool/talanta/core/intelligence"
	"github.com/trezcool/talanta/core/rating"
)

// Cards builds one Card per canonical category: real cards in input order, then placeholders in registry order.
// Records that cannot be resolved, or that resolve to an already produced category, are returned as Unmatched.
func (svc *Service) Cards(categories []CategoryRating) ([]Card, []Unmatched) {
	reg := svc.norm.Registry()
	cards := make([]Card, 0, reg.Len())
	seen := make(map[string]bool, reg.Len())
	var unmatched []Unmatched

	for _, cr := range categories {
		cat, err := svc.norm.Resolve(cr.CategoryName)
		if err != nil {
			um := Unmatched{Name: cr.CategoryName, CategoryID: cr.CategoryID.Int(), Reason: ReasonUnknown}
			if sugg, _, ok := svc.norm.Suggest(cr.CategoryName); ok {
				um.Suggestion = sugg.ID
			}
			unmatched = append(unmatched, um)
			continue
		}
		// first record wins
		if seen[cat.ID] {
			unmatched = append(unmatched, Unmatched{
				Name:       cr.CategoryName,
				CategoryID: cr.CategoryID.Int(),
				Reason:     ReasonDuplicate,
				Suggestion: cat.ID,
			})
			continue
		}
		seen[cat.ID] = true
		cards = append(cards, svc.newCard(cat, cr))
	}

	for _, cat := range reg.All() {
		if !seen[cat.ID] {
			cards = append(cards, newPlaceholderCard(cat))
		}
	}
	return cards, unmatched
}

func (svc *Service) newCard(cat intelligence.Category, cr CategoryRating) Card {
	r := rating.Clamp(cr.AverageRating.Float64())
	cls := svc.thresholds.Classify(r)
	return Card{
		ID:          cat.ID,
		Title:       cat.Title(),
		Icon:        cat.Icon,
		Description: cat.Description,
		Rating:      r,
		Level:       cls.Level,
		Color:       cat.Color,
		LevelColor:  cls.Color,
		RecordCount: nonNegative(cr.RecordCount.Int()),
	}
}

func newPlaceholderCard(cat intelligence.Category) Card {
	cls := rating.NoDataClassification()
	return Card{
		ID:            cat.ID,
		Title:         cat.Title(),
		Icon:          cat.Icon,
		Description:   cat.Description,
		Level:         cls.Level,
		Color:         cat.Color,
		LevelColor:    cls.Color,
		IsPlaceholder: true,
	}
}

// VisibleCards drops placeholders, for views that hide "No Data" cards.
func VisibleCards(cards []Card) []Card {
	visible := make([]Card, 0, len(cards))
	for _, c := range cards {
		if !c.IsPlaceholder {
			visible = append(visible, c)
		}
	}
	return visible
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
