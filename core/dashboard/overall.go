package dashboard

import "github.com/trezcool/talanta/core/rating"

// NoDataPeriodLabel is the period label of an empty Overall.
const NoDataPeriodLabel = "No data"

// Overall reads the backend summary as is; cards are never re-averaged.
// A nil summary gives the empty Overall.
func (svc *Service) Overall(summary *Summary) Overall {
	if summary == nil {
		cls := rating.NoDataClassification()
		return Overall{
			Level:               cls.Level,
			LevelColor:          cls.Color,
			FilteredPeriodLabel: NoDataPeriodLabel,
		}
	}

	r := rating.Clamp(summary.AverageOverall.Float64())
	cls := svc.thresholds.Classify(r)
	return Overall{
		Rating:              r,
		Level:               cls.Level,
		LevelColor:          cls.Color,
		TotalRecords:        nonNegative(summary.TotalRecords.Int()),
		FilteredPeriodLabel: summary.FilteredPeriod,
	}
}
