package intelligence

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/talanta/core"
)

// Category IDs
const (
	Linguistic    = "linguistic"
	Logical       = "logical-mathematical"
	Spatial       = "visual-spatial"
	Bodily        = "bodily-kinesthetic"
	Musical       = "musical"
	Interpersonal = "interpersonal"
	Intrapersonal = "intrapersonal"
	Naturalistic  = "naturalistic"
	Existential   = "existential"
	Emotional     = "emotional"
	Creative      = "creative"
	Digital       = "digital"
	Social        = "social"
)

var (
	// errors
	ErrDuplicateID   = errors.New("duplicate category id")
	ErrDuplicateName = errors.New("category name claimed twice")
	ErrNoNames       = errors.New("category has no display name")

	// Default holds the 13 intelligence areas tracked per student, in display order.
	Default = mustRegistry(
		Category{
			ID:          Linguistic,
			Names:       []string{"Linguistic Intelligence", "Verbal-Linguistic Intelligence", "Verbal Linguistic Intelligence"},
			Icon:        "book-open-variant",
			Color:       "#4F46E5",
			Description: "Reading, writing, storytelling and working with words.",
		},
		Category{
			ID: Logical,
			Names: []string{
				"Logical-Mathematical Intelligence", "Logical Mathematical Intelligence",
				"Logical/Mathematical Intelligence", "Logical Intelligence",
			},
			Icon:        "calculator-variant",
			Color:       "#0EA5E9",
			Description: "Reasoning, patterns, numbers and problem solving.",
		},
		Category{
			ID:          Spatial,
			Names:       []string{"Visual-Spatial Intelligence", "Visual Spatial Intelligence", "Spatial Intelligence"},
			Icon:        "palette",
			Color:       "#F59E0B",
			Description: "Visualising, drawing, building and reading maps.",
		},
		Category{
			ID:          Bodily,
			Names:       []string{"Bodily-Kinesthetic Intelligence", "Bodily Kinesthetic Intelligence", "Kinesthetic Intelligence"},
			Icon:        "run",
			Color:       "#EF4444",
			Description: "Coordination, movement, sports and hands-on work.",
		},
		Category{
			ID:          Musical,
			Names:       []string{"Music Intelligence", "Musical Intelligence", "Musical-Rhythmic Intelligence"},
			Icon:        "music-note",
			Color:       "#EC4899",
			Description: "Rhythm, pitch, melody and musical expression.",
		},
		Category{
			ID:          Interpersonal,
			Names:       []string{"Interpersonal Intelligence", "Inter-personal Intelligence"},
			Icon:        "account-group",
			Color:       "#10B981",
			Description: "Understanding and cooperating with others.",
		},
		Category{
			ID:          Intrapersonal,
			Names:       []string{"Intrapersonal Intelligence", "Intra-personal Intelligence"},
			Icon:        "account-heart",
			Color:       "#8B5CF6",
			Description: "Self-awareness, reflection and goal setting.",
		},
		Category{
			ID:          Naturalistic,
			Names:       []string{"Naturalistic Intelligence", "Naturalist Intelligence"},
			Icon:        "leaf",
			Color:       "#22C55E",
			Description: "Observing and classifying nature, plants and animals.",
		},
		Category{
			ID:          Existential,
			Names:       []string{"Existential Intelligence", "Existential"},
			Icon:        "head-question",
			Color:       "#6366F1",
			Description: "Asking big questions about life and meaning.",
		},
		Category{
			ID:          Emotional,
			Names:       []string{"Emotional Intelligence"},
			Icon:        "emoticon-happy",
			Color:       "#F97316",
			Description: "Recognising and managing feelings.",
		},
		Category{
			ID:          Creative,
			Names:       []string{"Creative Intelligence", "Creativity Intelligence"},
			Icon:        "lightbulb-on",
			Color:       "#EAB308",
			Description: "Imagination, originality and creating new ideas.",
		},
		Category{
			ID:          Digital,
			Names:       []string{"Digital Intelligence", "Technological Intelligence"},
			Icon:        "laptop",
			Color:       "#06B6D4",
			Description: "Using technology safely and purposefully.",
		},
		Category{
			ID:          Social,
			Names:       []string{"Social Intelligence", "Society Intelligence", "Social & Society Intelligence"},
			Icon:        "earth",
			Color:       "#14B8A6",
			Description: "Civic awareness and taking part in school and society.",
		},
	)
)

// Category is one of the fixed intelligence areas.
type Category struct {
	ID          string   `json:"id"`
	Names       []string `json:"names"` // display-name variants, the first one is the title
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Description string   `json:"description"`
}

func (c Category) Title() string {
	if len(c.Names) == 0 {
		return c.ID
	}
	return c.Names[0]
}

// Registry is an immutable, ordered set of categories. Safe for concurrent use.
type Registry struct {
	categories []Category
	byID       map[string]int
	byName     map[string]string // exact variant: ID
	byLower    map[string]string // lowered variant: ID
}

// NewRegistry builds a Registry, rejecting duplicate IDs and display names claimed by more than one category.
// Names are compared both exactly and case-insensitively.
func NewRegistry(cats ...Category) (*Registry, error) {
	reg := &Registry{
		categories: make([]Category, 0, len(cats)),
		byID:       make(map[string]int, len(cats)),
		byName:     make(map[string]string),
		byLower:    make(map[string]string),
	}
	for _, cat := range cats {
		if _, ok := reg.byID[cat.ID]; ok {
			return nil, errors.Wrap(ErrDuplicateID, cat.ID)
		}
		if len(cat.Names) == 0 {
			return nil, errors.Wrap(ErrNoNames, cat.ID)
		}
		for _, name := range cat.Names {
			lname := core.CleanString(name, true /* lower */)
			if id, ok := reg.byLower[lname]; ok {
				return nil, errors.Wrap(ErrDuplicateName, fmt.Sprintf("%q (%s, %s)", name, id, cat.ID))
			}
			reg.byName[name] = cat.ID
			reg.byLower[lname] = cat.ID
		}
		names := make([]string, len(cat.Names))
		copy(names, cat.Names)
		cat.Names = names

		reg.byID[cat.ID] = len(reg.categories)
		reg.categories = append(reg.categories, cat)
	}
	return reg, nil
}

func mustRegistry(cats ...Category) *Registry {
	reg, err := NewRegistry(cats...)
	if err != nil {
		panic(err)
	}
	return reg
}

// All returns a copy of the categories in registry order.
func (reg *Registry) All() []Category {
	cats := make([]Category, len(reg.categories))
	copy(cats, reg.categories)
	return cats
}

func (reg *Registry) Get(id string) (Category, bool) {
	idx, ok := reg.byID[id]
	if !ok {
		return Category{}, false
	}
	return reg.categories[idx], true
}

func (reg *Registry) Len() int { return len(reg.categories) }
