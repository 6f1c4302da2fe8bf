package research

import (
	"math"
	"testing"
	"time"

	"sfquant/internal/domain"
	mock_repository "sfquant/internal/repository/mocks"
	"sfquant/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func signalRows(d time.Time, signals, fwdReturns []float64) []domain.SignalRow {
	out := make([]domain.SignalRow, len(signals))
	for i := range signals {
		out[i] = domain.SignalRow{
			Date:      d,
			Barrid:    string(rune('A' + i)),
			Signal:    signals[i],
			FwdReturn: fwdReturns[i],
		}
	}
	return out
}

func Test_binMeanReturns(t *testing.T) {
	t.Run("equal-count bins, lowest signal first", func(t *testing.T) {
		rows := signalRows(util.NewDate(2024, 1, 2),
			[]float64{6, 5, 4, 3, 2, 1},
			[]float64{0.06, 0.05, 0.04, 0.03, 0.02, 0.01},
		)

		out := binMeanReturns(rows, 3)

		require.InDelta(t, 0.015, out[0], 1e-12)
		require.InDelta(t, 0.035, out[1], 1e-12)
		require.InDelta(t, 0.055, out[2], 1e-12)
	})

	t.Run("short cross-sections leave empty bins NaN", func(t *testing.T) {
		rows := signalRows(util.NewDate(2024, 1, 2),
			[]float64{1, 2},
			[]float64{0.01, 0.02},
		)

		out := binMeanReturns(rows, 3)

		require.True(t, math.IsNaN(out[0]))
		require.Equal(t, 0.01, out[1])
		require.Equal(t, 0.02, out[2])
	})
}

func Test_VolScale(t *testing.T) {
	series := []float64{0.01, 0.02, 0.01}

	out := VolScale(series, 0.05, 2)

	require.True(t, math.IsNaN(out[0]))
	// sample sd of {0.01, 0.02} is 0.00707107; annualized by sqrt(252)
	require.InDelta(t, 0.0089087081, out[1], 1e-9)
	require.InDelta(t, 0.0044543541, out[2], 1e-9)
}

func Test_BetaScale(t *testing.T) {
	t.Run("unit beta leaves the series unscaled", func(t *testing.T) {
		series := []float64{0.01, -0.02, 0.03, -0.01, 0.02}

		out := BetaScale(series, series, 1.0, 3)

		require.True(t, math.IsNaN(out[0]))
		require.True(t, math.IsNaN(out[1]))
		for i := 2; i < len(series); i++ {
			require.InDelta(t, series[i], out[i], 1e-12)
		}
	})

	t.Run("beta is clipped at five", func(t *testing.T) {
		market := []float64{0.01, -0.02, 0.03, -0.01, 0.02}
		series := make([]float64, len(market))
		for i, v := range market {
			series[i] = 10 * v
		}

		out := BetaScale(series, market, 1.0, 3)

		for i := 2; i < len(series); i++ {
			require.InDelta(t, series[i]/5, out[i], 1e-12)
		}
	})

	t.Run("undefined beta falls back to one", func(t *testing.T) {
		series := []float64{0.01, -0.02, 0.03}
		market := []float64{0.01, 0.01, 0.01}

		out := BetaScale(series, market, 1.0, 3)

		require.InDelta(t, series[2], out[2], 1e-12)
	})
}

func Test_QuantilePortfolios(t *testing.T) {
	t.Run("shape, labels and benchmark join", func(t *testing.T) {
		date1 := util.NewDate(2024, 1, 2)
		date2 := util.NewDate(2024, 1, 3)

		signal := append(
			signalRows(util.NewDate(2024, 1, 2), []float64{1, 2, 3, 4}, []float64{0.01, 0.02, 0.03, 0.04}),
			signalRows(util.NewDate(2024, 1, 3), []float64{4, 3, 2, 1}, []float64{0.08, 0.06, 0.04, 0.02})...,
		)

		ctrl := gomock.NewController(t)
		benchmarkRepository := mock_repository.NewMockBenchmarkRepository(ctrl)
		benchmarkRepository.EXPECT().List(date1, date2).Return([]domain.BenchmarkWeight{
			{Date: date1, Barrid: "A", Weight: 1.0},
			{Date: date2, Barrid: "A", Weight: 1.0},
		}, nil)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		ret1, ret2 := 2.0, 3.0
		assetRepository.EXPECT().List(date1, date2, true).Return([]domain.AssetRisk{
			{Date: date1, Barrid: "A", Return: &ret1, InUniverse: true},
			{Date: date2, Barrid: "A", Return: &ret2, InUniverse: true},
		}, nil)

		handler := quantileServiceHandler{
			AssetRepository:     assetRepository,
			BenchmarkRepository: benchmarkRepository,
			Log:                 zap.NewNop().Sugar(),
		}

		out, err := handler.QuantilePortfolios(signal, 2)
		require.NoError(t, err)

		require.Equal(t, []time.Time{date1, date2}, out.Dates)
		require.Equal(t, 2, out.NumBins)
		require.Equal(t, []string{"p_1", "p_2", "spread"}, out.PortfolioNames())
		require.Len(t, out.Spread, 2)
		require.InDelta(t, 0.02, out.Benchmark[0], 1e-12)
		require.InDelta(t, 0.03, out.Benchmark[1], 1e-12)

		// two dates are inside every scaling warm-up window
		for _, name := range out.PortfolioNames() {
			series := out.Series(name)
			require.Len(t, series, 2)
			for _, v := range series {
				require.True(t, math.IsNaN(v))
			}
		}
		require.Nil(t, out.Series("p_9"))
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		handler := quantileServiceHandler{Log: zap.NewNop().Sugar()}

		_, err := handler.QuantilePortfolios(nil, 5)
		require.Error(t, err)

		_, err = handler.QuantilePortfolios(signalRows(util.NewDate(2024, 1, 2), []float64{1}, []float64{0.01}), 1)
		require.Error(t, err)
	})
}
