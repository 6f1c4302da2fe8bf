package performance

import (
	"fmt"
	"math"
	"sort"
	"time"

	"sfquant/internal/domain"

	"github.com/montanaflynn/stats"
)

// ICMethod selects how the information coefficient is computed.
type ICMethod string

const (
	// ICMethodPearson correlates raw alpha and return values.
	ICMethodPearson ICMethod = "pearson"
	// ICMethodRank computes the Spearman IC: Pearson correlation of
	// average-ranked values within each date.
	ICMethodRank ICMethod = "rank"
)

// AlphaICs computes the per-date information coefficient between the
// previous day's alpha and the realized return. Alphas are lagged one
// observation per asset before joining with returns on (date, barrid);
// observations with non-finite alpha or return are excluded. Dates with
// fewer than two usable observations are skipped - a correlation on one
// point is undefined.
func AlphaICs(alphas []domain.AlphaRow, rets []domain.SecurityReturn, method ICMethod) ([]domain.InformationCoefficient, error) {
	if method != ICMethodPearson && method != ICMethodRank {
		return nil, fmt.Errorf("ic method must be %q or %q, got %q", ICMethodPearson, ICMethodRank, method)
	}

	lagged := lagAlphas(alphas)

	returnByKey := make(map[time.Time]map[string]float64, len(rets))
	for _, r := range rets {
		if _, ok := returnByKey[r.Date]; !ok {
			returnByKey[r.Date] = map[string]float64{}
		}
		returnByKey[r.Date][r.Barrid] = r.Return
	}

	type observation struct {
		alphaLag float64
		ret      float64
	}
	byDate := map[time.Time][]observation{}
	for _, a := range lagged {
		ret, ok := returnByKey[a.Date][a.Barrid]
		if !ok {
			continue
		}
		if !isFinite(a.Alpha) || !isFinite(ret) {
			continue
		}
		byDate[a.Date] = append(byDate[a.Date], observation{alphaLag: a.Alpha, ret: ret})
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := []domain.InformationCoefficient{}
	for _, date := range dates {
		obs := byDate[date]
		if len(obs) < 2 {
			continue
		}

		alphaVals := make([]float64, len(obs))
		retVals := make([]float64, len(obs))
		for i, o := range obs {
			alphaVals[i] = o.alphaLag
			retVals[i] = o.ret
		}

		if method == ICMethodRank {
			alphaVals = averageRanks(alphaVals)
			retVals = averageRanks(retVals)
		}

		ic, err := stats.Correlation(alphaVals, retVals)
		if err != nil {
			return nil, fmt.Errorf("failed to compute ic for %s: %w", date.Format(time.DateOnly), err)
		}

		out = append(out, domain.InformationCoefficient{
			Date: date,
			IC:   ic,
			N:    len(obs),
		})
	}

	return out, nil
}

// lagAlphas shifts each asset's alpha forward one observation: the alpha
// from an asset's previous date is re-dated to its next date, aligning
// yesterday's signal with today's realized return.
func lagAlphas(alphas []domain.AlphaRow) []domain.AlphaRow {
	sorted := append([]domain.AlphaRow{}, alphas...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Barrid != sorted[j].Barrid {
			return sorted[i].Barrid < sorted[j].Barrid
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	lagged := []domain.AlphaRow{}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Barrid != sorted[i-1].Barrid {
			continue
		}
		lagged = append(lagged, domain.AlphaRow{
			Date:   sorted[i].Date,
			Barrid: sorted[i].Barrid,
			Alpha:  sorted[i-1].Alpha,
		})
	}
	return lagged
}

// averageRanks assigns 1-based ranks, with tied values sharing the average
// of the ranks they span.
func averageRanks(values []float64) []float64 {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	ranks := make([]float64, len(values))
	i := 0
	for i < len(idx) {
		j := i
		for j+1 < len(idx) && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// ranks i+1..j+1 averaged across the tie group
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
