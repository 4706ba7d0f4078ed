package rating

import "math"

// Rating bounds
const (
	Min = 0.
	Max = 5.
)

// Levels
const (
	Excellent      = "Excellent"
	Good           = "Good"
	NeedsAttention = "Needs Attention"
	AtRisk         = "At-Risk Level"

	// NoData is reserved for synthesized placeholders, Classify never returns it.
	NoData = "No Data"
)

// Level colors
const (
	ExcellentColor      = "#22C55E"
	GoodColor           = "#3B82F6"
	NeedsAttentionColor = "#F59E0B"
	AtRiskColor         = "#EF4444"
	NoDataColor         = "#9CA3AF"
)

var (
	// DefaultThresholds are the inclusive lower bounds shared by cards, charts and badges.
	DefaultThresholds = Thresholds{Excellent: 4.5, Good: 3.5, NeedsAttention: 2.5}

	tiers = map[string]int{
		NoData:         0,
		AtRisk:         1,
		NeedsAttention: 2,
		Good:           3,
		Excellent:      4,
	}
)

type Classification struct {
	Level string `json:"level"`
	Color string `json:"color"`
}

// Thresholds holds the inclusive lower bound of each level above AtRisk.
type Thresholds struct {
	Excellent      float64
	Good           float64
	NeedsAttention float64
}

// Classify maps `r` to its level, evaluating bounds top-down. `r` is expected within [Min, Max]; see Clamp.
func (th Thresholds) Classify(r float64) Classification {
	switch {
	case r >= th.Excellent:
		return Classification{Level: Excellent, Color: ExcellentColor}
	case r >= th.Good:
		return Classification{Level: Good, Color: GoodColor}
	case r >= th.NeedsAttention:
		return Classification{Level: NeedsAttention, Color: NeedsAttentionColor}
	default:
		return Classification{Level: AtRisk, Color: AtRiskColor}
	}
}

// Classify uses DefaultThresholds.
func Classify(r float64) Classification {
	return DefaultThresholds.Classify(r)
}

// NoDataClassification is what callers attach to synthesized placeholders.
func NoDataClassification() Classification {
	return Classification{Level: NoData, Color: NoDataColor}
}

// Tier orders levels: NoData < AtRisk < NeedsAttention < Good < Excellent. Unknown levels are -1.
func Tier(level string) int {
	if t, ok := tiers[level]; ok {
		return t
	}
	return -1
}

// Clamp bounds `r` to [Min, Max]. NaN becomes Min.
func Clamp(r float64) float64 {
	if math.IsNaN(r) {
		return Min
	}
	return math.Max(Min, math.Min(Max, r))
}
