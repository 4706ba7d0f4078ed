package chart

import "math"

const (
	FullCircle = 360.

	// DefaultMinAngle keeps zero-rated entries visible (and tappable) in a pie.
	DefaultMinAngle = 3.
)

type Entry struct {
	Label  string  `json:"label"`
	Rating float64 `json:"rating"`
	Color  string  `json:"color"`
}

// Sector is a pie wedge, angles in degrees.
type Sector struct {
	Label      string  `json:"label"`
	Rating     float64 `json:"rating"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Percentage float64 `json:"percentage"`
}

func (s Sector) Angle() float64 { return s.EndAngle - s.StartAngle }

// Allocate converts entries into contiguous pie sectors, keeping input order.
//
// Each entry gets its rating's share of the circle. Zero-rated entries are forced up to minAngle (DefaultMinAngle
// when omitted or not positive) and, when every rating is zero, the circle is split equally. If the forced minimums
// push the total above 360°, every angle is rescaled by 360/total. Percentage is the share before that correction.
// Ratings must not be negative.
func Allocate(entries []Entry, minAngle ...float64) []Sector {
	if len(entries) == 0 {
		return []Sector{}
	}

	minAng := DefaultMinAngle
	if len(minAngle) > 0 && minAngle[0] > 0 {
		minAng = minAngle[0]
	}

	var total float64
	for _, e := range entries {
		total += e.Rating
	}

	angles := make([]float64, len(entries))
	sectors := make([]Sector, len(entries))
	var sum float64
	for i, e := range entries {
		var share float64
		if total > 0 {
			share = e.Rating / total
			angles[i] = share * FullCircle
			if e.Rating == 0 {
				angles[i] = minAng
			}
		} else {
			share = 1 / float64(len(entries))
			angles[i] = FullCircle * share
		}
		sum += angles[i]
		sectors[i] = Sector{
			Label:      e.Label,
			Rating:     e.Rating,
			Color:      e.Color,
			Percentage: share * 100,
		}
	}

	// overflow correction
	if sum > FullCircle {
		scale := FullCircle / sum
		for i := range angles {
			angles[i] *= scale
		}
	}

	var start float64
	for i := range sectors {
		end := start + angles[i]
		sectors[i].StartAngle = start
		sectors[i].EndAngle = math.Min(end, FullCircle)
		start = sectors[i].EndAngle
	}
	return sectors
}
