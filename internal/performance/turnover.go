package performance

import (
	"fmt"
	"math"
	"sort"
	"time"

	"sfquant/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// DefaultTurnoverWindow is the rolling window for the turnover series, in
// trading days.
const DefaultTurnoverWindow = 252

// TurnoverPoint is the rolling mean of two-sided turnover on a date. The
// value is NaN during the rolling window warm-up.
type TurnoverPoint struct {
	Date             time.Time
	TwoSidedTurnover float64
}

// TurnoverStats summarizes the rolling two-sided turnover series; warm-up
// NaN entries are excluded. Values are rounded to 4 places.
type TurnoverStats struct {
	Mean float64
	Min  float64
	Max  float64
}

// ComputeTurnover computes two-sided turnover - the sum of absolute weight
// changes per date - and returns its rolling mean over window days. Each
// asset's first observation has no prior weight and contributes nothing on
// that date.
func ComputeTurnover(weights []domain.PortfolioWeight, window int) ([]TurnoverPoint, error) {
	if window <= 0 {
		return nil, fmt.Errorf("turnover window must be positive, got %d", window)
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("cannot compute turnover from empty weights")
	}

	sorted := append([]domain.PortfolioWeight{}, weights...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Barrid != sorted[j].Barrid {
			return sorted[i].Barrid < sorted[j].Barrid
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	turnoverByDate := map[time.Time]decimal.Decimal{}
	for i, w := range sorted {
		if _, ok := turnoverByDate[w.Date]; !ok {
			turnoverByDate[w.Date] = decimal.Zero
		}
		if i == 0 || sorted[i-1].Barrid != w.Barrid {
			continue
		}
		diff := w.Weight.Sub(sorted[i-1].Weight).Abs()
		turnoverByDate[w.Date] = turnoverByDate[w.Date].Add(diff)
	}

	dates := make([]time.Time, 0, len(turnoverByDate))
	for date := range turnoverByDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	daily := make([]float64, len(dates))
	for i, date := range dates {
		daily[i] = turnoverByDate[date].InexactFloat64()
	}

	rolled := rollingMean(daily, window)

	out := make([]TurnoverPoint, len(dates))
	for i, date := range dates {
		out[i] = TurnoverPoint{Date: date, TwoSidedTurnover: rolled[i]}
	}

	return out, nil
}

// GetTurnoverStats computes mean/min/max of the rolling two-sided turnover.
func GetTurnoverStats(weights []domain.PortfolioWeight, window int) (*TurnoverStats, error) {
	turnover, err := ComputeTurnover(weights, window)
	if err != nil {
		return nil, err
	}

	observed := []float64{}
	for _, p := range turnover {
		if !math.IsNaN(p.TwoSidedTurnover) {
			observed = append(observed, p.TwoSidedTurnover)
		}
	}
	if len(observed) == 0 {
		return nil, fmt.Errorf("turnover series has no observations past the %d-day warm-up", window)
	}

	mean, err := stats.Mean(observed)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(observed)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(observed)
	if err != nil {
		return nil, err
	}

	mean, _ = stats.Round(mean, 4)
	min, _ = stats.Round(min, 4)
	max, _ = stats.Round(max, 4)

	return &TurnoverStats{
		Mean: mean,
		Min:  min,
		Max:  max,
	}, nil
}

// rollingMean computes a windowed mean, NaN until a full window is
// available.
func rollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}
