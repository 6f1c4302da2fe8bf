package performance

import (
	"math"
	"testing"

	"sfquant/internal/domain"
	"sfquant/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func singleAssetWeights(values ...float64) []domain.PortfolioWeight {
	out := make([]domain.PortfolioWeight, len(values))
	for i, v := range values {
		out[i] = domain.PortfolioWeight{
			Date:   util.NewDate(2024, 1, 2+i),
			Barrid: "A",
			Weight: decimal.NewFromFloat(v),
		}
	}
	return out
}

func Test_ComputeTurnover(t *testing.T) {
	t.Run("daily turnover is the sum of absolute weight changes", func(t *testing.T) {
		weights := singleAssetWeights(0.5, 0.6, 0.4, 0.5)

		out, err := ComputeTurnover(weights, 1)
		require.NoError(t, err)
		require.Len(t, out, 4)

		// first date has no prior weight
		require.Equal(t, 0.0, out[0].TwoSidedTurnover)
		require.InDelta(t, 0.1, out[1].TwoSidedTurnover, 1e-12)
		require.InDelta(t, 0.2, out[2].TwoSidedTurnover, 1e-12)
		require.InDelta(t, 0.1, out[3].TwoSidedTurnover, 1e-12)
	})

	t.Run("rolling window warms up with NaN", func(t *testing.T) {
		weights := singleAssetWeights(0.5, 0.6, 0.4, 0.5)

		out, err := ComputeTurnover(weights, 2)
		require.NoError(t, err)

		require.True(t, math.IsNaN(out[0].TwoSidedTurnover))
		require.InDelta(t, 0.05, out[1].TwoSidedTurnover, 1e-12)
		require.InDelta(t, 0.15, out[2].TwoSidedTurnover, 1e-12)
		require.InDelta(t, 0.15, out[3].TwoSidedTurnover, 1e-12)
	})

	t.Run("two assets sum per date", func(t *testing.T) {
		date1 := util.NewDate(2024, 1, 2)
		date2 := util.NewDate(2024, 1, 3)
		weights := []domain.PortfolioWeight{
			{Date: date1, Barrid: "A", Weight: decimal.NewFromFloat(0.5)},
			{Date: date1, Barrid: "B", Weight: decimal.NewFromFloat(0.5)},
			{Date: date2, Barrid: "A", Weight: decimal.NewFromFloat(0.7)},
			{Date: date2, Barrid: "B", Weight: decimal.NewFromFloat(0.3)},
		}

		out, err := ComputeTurnover(weights, 1)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.InDelta(t, 0.4, out[1].TwoSidedTurnover, 1e-12)
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		_, err := ComputeTurnover(nil, 1)
		require.Error(t, err)

		_, err = ComputeTurnover(singleAssetWeights(0.5), 0)
		require.Error(t, err)
	})
}

func Test_GetTurnoverStats(t *testing.T) {
	weights := singleAssetWeights(0.5, 0.6, 0.4, 0.5)

	stats, err := GetTurnoverStats(weights, 1)
	require.NoError(t, err)

	require.Equal(t, 0.1, stats.Mean)
	require.Equal(t, 0.0, stats.Min)
	require.Equal(t, 0.2, stats.Max)
}

func Test_GetTurnoverStats_allWarmup(t *testing.T) {
	weights := singleAssetWeights(0.5, 0.6)

	_, err := GetTurnoverStats(weights, 252)
	require.Error(t, err)
}
