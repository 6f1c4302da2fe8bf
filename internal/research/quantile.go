package research

import (
	"fmt"
	"math"
	"sort"
	"time"

	"sfquant/internal/domain"
	"sfquant/internal/logger"
	"sfquant/internal/repository"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

const (
	tradingDaysPerYear = 252

	// DefaultTargetVol is the annualized volatility the scaled portfolio
	// return series are normalized to.
	DefaultTargetVol = 0.05
	// DefaultVolWindow is the rolling window for volatility estimation,
	// about one month of trading days.
	DefaultVolWindow = 22
	// DefaultTargetBeta scales portfolios to move in line with the
	// benchmark.
	DefaultTargetBeta = 1.0
	// DefaultBetaLookback is the rolling window for beta estimation.
	DefaultBetaLookback = 60
)

// QuantilePortfolioSet holds the return series of signal-sorted quantile
// portfolios, aligned on Dates. Bins[b] is the equal-weighted forward
// return series of quantile b+1 (lowest signal first); Spread is top minus
// bottom. Entries are NaN during scaling warm-up windows.
type QuantilePortfolioSet struct {
	Dates     []time.Time
	NumBins   int
	Bins      [][]float64
	Spread    []float64
	Benchmark []float64
}

// PortfolioNames returns the series labels: p_1 .. p_numBins, spread.
func (q *QuantilePortfolioSet) PortfolioNames() []string {
	names := make([]string, 0, q.NumBins+1)
	for b := 1; b <= q.NumBins; b++ {
		names = append(names, fmt.Sprintf("p_%d", b))
	}
	return append(names, "spread")
}

// Series returns the return series for a portfolio label, nil if unknown.
func (q *QuantilePortfolioSet) Series(name string) []float64 {
	if name == "spread" {
		return q.Spread
	}
	for b := 1; b <= q.NumBins; b++ {
		if name == fmt.Sprintf("p_%d", b) {
			return q.Bins[b-1]
		}
	}
	return nil
}

// QuantileService builds signal-sorted quantile portfolios.
type QuantileService interface {
	// QuantilePortfolios bins assets into numBins quantiles by signal
	// value within each date, computes equal-weighted forward returns per
	// bin and the long-short spread, joins benchmark returns, then
	// beta-scales and vol-scales the series.
	QuantilePortfolios(signal []domain.SignalRow, numBins int) (*QuantilePortfolioSet, error)
}

type quantileServiceHandler struct {
	AssetRepository     repository.AssetRepository
	BenchmarkRepository repository.BenchmarkRepository
	Log                 *zap.SugaredLogger
}

func NewQuantileService(assetRepository repository.AssetRepository, benchmarkRepository repository.BenchmarkRepository) QuantileService {
	return quantileServiceHandler{
		AssetRepository:     assetRepository,
		BenchmarkRepository: benchmarkRepository,
		Log:                 logger.New(),
	}
}

func (h quantileServiceHandler) QuantilePortfolios(signal []domain.SignalRow, numBins int) (*QuantilePortfolioSet, error) {
	if numBins < 2 {
		return nil, fmt.Errorf("need at least 2 quantile bins, got %d", numBins)
	}
	if len(signal) == 0 {
		return nil, fmt.Errorf("cannot build quantile portfolios from empty signal")
	}

	reportMissing(signal, h.Log)

	byDate := map[time.Time][]domain.SignalRow{}
	for _, row := range signal {
		if !isFinite(row.Signal) || !isFinite(row.FwdReturn) {
			continue
		}
		byDate[row.Date] = append(byDate[row.Date], row)
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	set := &QuantilePortfolioSet{
		Dates:   dates,
		NumBins: numBins,
		Bins:    make([][]float64, numBins),
		Spread:  make([]float64, len(dates)),
	}
	for b := range set.Bins {
		set.Bins[b] = make([]float64, len(dates))
	}

	for t, date := range dates {
		binReturns := binMeanReturns(byDate[date], numBins)
		for b := 0; b < numBins; b++ {
			set.Bins[b][t] = binReturns[b]
		}
		set.Spread[t] = binReturns[numBins-1] - binReturns[0]
	}

	benchmark, err := h.benchmarkReturns(dates)
	if err != nil {
		return nil, err
	}
	set.Benchmark = benchmark

	// Beta scaling covers the quantile portfolios only; vol scaling also
	// covers the spread.
	for b := range set.Bins {
		set.Bins[b] = BetaScale(set.Bins[b], set.Benchmark, DefaultTargetBeta, DefaultBetaLookback)
	}
	for b := range set.Bins {
		set.Bins[b] = VolScale(set.Bins[b], DefaultTargetVol, DefaultVolWindow)
	}
	set.Spread = VolScale(set.Spread, DefaultTargetVol, DefaultVolWindow)

	return set, nil
}

// binMeanReturns sorts rows by signal and splits them into numBins
// equal-count bins, returning each bin's mean forward return. Bins left
// empty by a short cross-section are NaN.
func binMeanReturns(rows []domain.SignalRow, numBins int) []float64 {
	sorted := append([]domain.SignalRow{}, rows...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Signal < sorted[j].Signal })

	out := make([]float64, numBins)
	n := len(sorted)
	for b := 0; b < numBins; b++ {
		lo := b * n / numBins
		hi := (b + 1) * n / numBins
		if lo >= hi {
			out[b] = math.NaN()
			continue
		}
		var sum float64
		for _, row := range sorted[lo:hi] {
			sum += row.FwdReturn
		}
		out[b] = sum / float64(hi-lo)
	}
	return out
}

// benchmarkReturns computes the benchmark's weighted return for each date
// from benchmark weights and asset returns.
func (h quantileServiceHandler) benchmarkReturns(dates []time.Time) ([]float64, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	start, end := dates[0], dates[len(dates)-1]

	weights, err := h.BenchmarkRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmark weights: %w", err)
	}

	assets, err := h.AssetRepository.List(start, end, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset returns: %w", err)
	}
	returnByKey := map[time.Time]map[string]float64{}
	for _, a := range assets {
		if a.Return == nil {
			continue
		}
		if _, ok := returnByKey[a.Date]; !ok {
			returnByKey[a.Date] = map[string]float64{}
		}
		returnByKey[a.Date][a.Barrid] = *a.Return / 100
	}

	byDate := map[time.Time]float64{}
	for _, w := range weights {
		if r, ok := returnByKey[w.Date][w.Barrid]; ok {
			byDate[w.Date] += w.Weight * r
		}
	}

	out := make([]float64, len(dates))
	for i, date := range dates {
		if v, ok := byDate[date]; ok {
			out[i] = v
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// VolScale scales a return series to a target annualized volatility using a
// rolling standard deviation; warm-up entries are NaN.
func VolScale(series []float64, targetVol float64, window int) []float64 {
	out := make([]float64, len(series))
	for i := range series {
		if i < window-1 {
			out[i] = math.NaN()
			continue
		}
		sd, err := stats.StandardDeviationSample(series[i-window+1 : i+1])
		if err != nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = series[i] * (targetVol / (sd * math.Sqrt(tradingDaysPerYear)))
	}
	return out
}

// BetaScale scales a return series to a target beta against the market
// series. Beta is rolling covariance over rolling market variance, clipped
// to [0, 5]; an undefined beta falls back to 1 (no scaling).
func BetaScale(series, market []float64, targetBeta float64, lookback int) []float64 {
	out := make([]float64, len(series))
	for i := range series {
		if i < lookback-1 {
			out[i] = math.NaN()
			continue
		}
		window := series[i-lookback+1 : i+1]
		marketWindow := market[i-lookback+1 : i+1]

		cov, covErr := stats.Covariance(window, marketWindow)
		variance, varErr := stats.SampleVariance(marketWindow)

		beta := math.NaN()
		if covErr == nil && varErr == nil {
			beta = cov / variance
		}
		beta = clip(beta, 0, 5)
		if math.IsNaN(beta) {
			beta = 1
		}
		out[i] = series[i] * (targetBeta / beta)
	}
	return out
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
