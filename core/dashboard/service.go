package dashboard

import (
	"github.com/trezcool/talanta/core"
	"github.com/trezcool/talanta/core/chart"
	"github.com/trezcool/talanta/core/intelligence"
	"github.com/trezcool/talanta/core/rating"
)

// Service turns backend payloads into dashboard views. It keeps no state between calls.
type Service struct {
	logger     core.Logger
	norm       *intelligence.Normalizer
	thresholds rating.Thresholds
	minAngle   float64
}

func NewService(logger core.Logger, thresholds rating.Thresholds, minAngle float64) *Service {
	return &Service{
		logger:     logger,
		norm:       intelligence.DefaultNormalizer(),
		thresholds: thresholds,
		minAngle:   minAngle,
	}
}

// NewServiceFromConfig uses the configured rating thresholds and pie minimum angle.
func NewServiceFromConfig(logger core.Logger, conf *core.Config) *Service {
	th := rating.Thresholds{
		Excellent:      conf.Rating.Excellent,
		Good:           conf.Rating.Good,
		NeedsAttention: conf.Rating.NeedsAttention,
	}
	return NewService(logger, th, conf.Chart.MinAngle)
}

func (svc *Service) Normalizer() *intelligence.Normalizer { return svc.norm }

func (svc *Service) MinAngle() float64 { return svc.minAngle }

// Build assembles the whole Dashboard. A failed or empty payload gives the empty Dashboard:
// a placeholder for every category and the empty Overall.
func (svc *Service) Build(p Payload) Dashboard {
	if !p.Success || p.Data == nil {
		svc.logger.Debug("empty dashboard payload", map[string]interface{}{"success": p.Success})
		cards, _ := svc.Cards(nil)
		return Dashboard{Cards: cards, Overall: svc.Overall(nil), Unmatched: []Unmatched{}}
	}

	cards, unmatched := svc.Cards(p.Data.Categories)
	if unmatched == nil {
		unmatched = []Unmatched{}
	}
	for _, um := range unmatched {
		svc.logger.Warn("unmatched category", map[string]interface{}{
			"name":        um.Name,
			"category_id": um.CategoryID,
			"reason":      um.Reason,
			"suggestion":  um.Suggestion,
		})
	}
	return Dashboard{
		Cards:     cards,
		Overall:   svc.Overall(p.Data.Summary),
		Unmatched: unmatched,
	}
}

// Pie allocates a pie sector per card, in card order. Placeholders keep a minimum angle,
// the configured one unless `minAngle` is given.
func (svc *Service) Pie(cards []Card, minAngle ...float64) []chart.Sector {
	entries := make([]chart.Entry, 0, len(cards))
	for _, c := range cards {
		entries = append(entries, chart.Entry{Label: c.Title, Rating: c.Rating, Color: c.Color})
	}
	minAng := svc.minAngle
	if len(minAngle) > 0 && minAngle[0] > 0 {
		minAng = minAngle[0]
	}
	return chart.Allocate(entries, minAng)
}
