package performance

import (
	"testing"

	"sfquant/internal/domain"
	mock_repository "sfquant/internal/repository/mocks"
	"sfquant/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPointer(v float64) *float64 {
	return &v
}

func Test_ReturnsFromWeights(t *testing.T) {
	date1 := util.NewDate(2024, 1, 2)
	date2 := util.NewDate(2024, 1, 3)

	weights := []domain.PortfolioWeight{
		{Date: date1, Barrid: "A", Weight: decimal.NewFromFloat(0.5)},
		{Date: date1, Barrid: "B", Weight: decimal.NewFromFloat(0.5)},
		{Date: date2, Barrid: "A", Weight: decimal.NewFromFloat(0.5)},
		{Date: date2, Barrid: "B", Weight: decimal.NewFromFloat(0.5)},
	}

	// returns in percent units, ordered barrid then date
	assets := []domain.AssetRisk{
		{Date: date1, Barrid: "A", Return: floatPointer(2.0), InUniverse: true},
		{Date: date2, Barrid: "A", Return: floatPointer(4.0), InUniverse: true},
		{Date: date1, Barrid: "B", Return: floatPointer(2.0), InUniverse: true},
		{Date: date2, Barrid: "B", Return: floatPointer(2.8), InUniverse: true},
	}

	t.Run("weighted same-day and forward returns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		assetRepository.EXPECT().List(date1, date2, true).Return(assets, nil)

		handler := returnsServiceHandler{AssetRepository: assetRepository}

		out, err := handler.ReturnsFromWeights(weights)
		require.NoError(t, err)
		require.Len(t, out, 2)

		require.Equal(t, date1, out[0].Date)
		require.InDelta(t, 0.02, out[0].Return, 1e-12)
		require.InDelta(t, 0.034, out[0].FwdReturn, 1e-12)

		// the last date has no next trading day
		require.Equal(t, date2, out[1].Date)
		require.InDelta(t, 0.034, out[1].Return, 1e-12)
		require.Equal(t, 0.0, out[1].FwdReturn)
	})

	t.Run("asset with no return row contributes zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		assetRepository.EXPECT().List(date1, date1, true).Return([]domain.AssetRisk{
			{Date: date1, Barrid: "A", Return: floatPointer(2.0), InUniverse: true},
		}, nil)

		handler := returnsServiceHandler{AssetRepository: assetRepository}

		out, err := handler.ReturnsFromWeights([]domain.PortfolioWeight{
			{Date: date1, Barrid: "A", Weight: decimal.NewFromFloat(0.5)},
			{Date: date1, Barrid: "MISSING", Weight: decimal.NewFromFloat(0.5)},
		})
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.InDelta(t, 0.01, out[0].Return, 1e-12)
	})

	t.Run("empty weights are rejected", func(t *testing.T) {
		handler := returnsServiceHandler{}

		_, err := handler.ReturnsFromWeights(nil)
		require.Error(t, err)
	})
}

func Test_MultiReturnsFromWeights(t *testing.T) {
	date1 := util.NewDate(2024, 1, 2)
	date2 := util.NewDate(2024, 1, 3)

	weights := []domain.PortfolioWeight{
		{Date: date1, Barrid: "A", Weight: decimal.NewFromFloat(0.5)},
		{Date: date1, Barrid: "B", Weight: decimal.NewFromFloat(0.5)},
		{Date: date2, Barrid: "A", Weight: decimal.NewFromFloat(0.5)},
		{Date: date2, Barrid: "B", Weight: decimal.NewFromFloat(0.5)},
	}

	assets := []domain.AssetRisk{
		{Date: date1, Barrid: "A", Return: floatPointer(2.0), InUniverse: true},
		{Date: date2, Barrid: "A", Return: floatPointer(4.0), InUniverse: true},
		{Date: date1, Barrid: "B", Return: floatPointer(2.0), InUniverse: true},
		{Date: date2, Barrid: "B", Return: floatPointer(2.8), InUniverse: true},
	}

	benchmark := []domain.BenchmarkWeight{
		{Date: date1, Barrid: "A", Weight: 0.6},
		{Date: date1, Barrid: "B", Weight: 0.3},
		{Date: date2, Barrid: "A", Weight: 0.6},
		{Date: date2, Barrid: "B", Weight: 0.3},
	}

	ctrl := gomock.NewController(t)
	assetRepository := mock_repository.NewMockAssetRepository(ctrl)
	assetRepository.EXPECT().List(date1, date2, true).Return(assets, nil)
	benchmarkRepository := mock_repository.NewMockBenchmarkRepository(ctrl)
	benchmarkRepository.EXPECT().List(date1, date2).Return(benchmark, nil)

	handler := returnsServiceHandler{
		AssetRepository:     assetRepository,
		BenchmarkRepository: benchmarkRepository,
	}

	out, err := handler.MultiReturnsFromWeights(weights)
	require.NoError(t, err)
	require.Len(t, out, 6)

	// ordered by date then portfolio name: active, benchmark, total
	require.Equal(t, domain.PortfolioActive, out[0].Portfolio)
	require.Equal(t, date1, out[0].Date)
	require.InDelta(t, 0.002, out[0].Return, 1e-12)

	require.Equal(t, domain.PortfolioBenchmark, out[1].Portfolio)
	require.InDelta(t, 0.018, out[1].Return, 1e-12)

	require.Equal(t, domain.PortfolioTotal, out[2].Portfolio)
	require.InDelta(t, 0.02, out[2].Return, 1e-12)

	// active + benchmark reconstructs total on every date
	for i := 0; i < len(out); i += 3 {
		require.InDelta(t, out[i+2].Return, out[i].Return+out[i+1].Return, 1e-12)
		require.InDelta(t, out[i+2].FwdReturn, out[i].FwdReturn+out[i+1].FwdReturn, 1e-12)
	}
}
