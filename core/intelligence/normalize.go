package intelligence

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/talanta/core"
)

// MinSuggestionRatio is the lowest similarity ratio for which Suggest reports a category.
const MinSuggestionRatio = .6

var ErrCategoryNotFound = errors.New("category not found")

// Normalizer resolves raw backend category names to canonical categories.
type Normalizer struct {
	reg *Registry
}

func NewNormalizer(reg *Registry) *Normalizer {
	return &Normalizer{reg: reg}
}

// DefaultNormalizer resolves against the Default registry.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(Default)
}

func (n *Normalizer) Registry() *Registry { return n.reg }

// Resolve matches `raw` exactly against every known display name, then case-insensitively (ignoring surrounding
// whitespace). There is no partial matching: anything else is ErrCategoryNotFound.
func (n *Normalizer) Resolve(raw string) (Category, error) {
	id, ok := n.reg.byName[raw]
	if !ok {
		id, ok = n.reg.byLower[core.CleanString(raw, true /* lower */)]
	}
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	cat, _ := n.reg.Get(id)
	return cat, nil
}

// Suggest returns the category whose display name looks the most like `raw`, with the similarity ratio.
// It is meant for diagnostics only and must never be used to build real cards.
func (n *Normalizer) Suggest(raw string) (Category, float64, bool) {
	lraw := core.CleanString(raw, true /* lower */)
	if lraw == "" {
		return Category{}, 0, false
	}

	var (
		bestID    string
		bestRatio float64
	)
	// walk in registry order so ties resolve deterministically
	a := strings.Split(lraw, "")
	for _, cat := range n.reg.categories {
		for _, name := range cat.Names {
			ratio := difflib.NewMatcher(a, strings.Split(strings.ToLower(name), "")).Ratio()
			if ratio > bestRatio {
				bestID, bestRatio = cat.ID, ratio
			}
		}
	}
	if bestRatio < MinSuggestionRatio {
		return Category{}, bestRatio, false
	}
	cat, _ := n.reg.Get(bestID)
	return cat, bestRatio, true
}
