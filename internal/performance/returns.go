package performance

import (
	"fmt"
	"sort"
	"time"

	"sfquant/internal/domain"
	"sfquant/internal/repository"
)

// Asset returns are stored in percent units; all series this package emits
// are decimal.
const percentPerDecimal = 100.0

// ReturnsService derives portfolio return series from portfolio weights.
type ReturnsService interface {
	// ReturnsFromWeights computes the weighted same-day and forward
	// (next trading day) return of the weighted portfolio, per date.
	ReturnsFromWeights(weights []domain.PortfolioWeight) ([]domain.PortfolioReturn, error)
	// MultiReturnsFromWeights additionally joins benchmark weights and
	// emits total, benchmark and active (total minus benchmark weight)
	// return series.
	MultiReturnsFromWeights(weights []domain.PortfolioWeight) ([]domain.MultiPortfolioReturn, error)
}

type returnsServiceHandler struct {
	AssetRepository     repository.AssetRepository
	BenchmarkRepository repository.BenchmarkRepository
}

func NewReturnsService(assetRepository repository.AssetRepository, benchmarkRepository repository.BenchmarkRepository) ReturnsService {
	return returnsServiceHandler{
		AssetRepository:     assetRepository,
		BenchmarkRepository: benchmarkRepository,
	}
}

// assetReturns holds same-day and forward returns keyed by barrid then date,
// already converted to decimal units.
type assetReturns struct {
	ret map[string]map[time.Time]float64
	fwd map[string]map[time.Time]float64
}

func (h returnsServiceHandler) loadAssetReturns(start, end time.Time) (*assetReturns, error) {
	// List orders by barrid then date, so each asset's rows are already a
	// consecutive time series.
	assets, err := h.AssetRepository.List(start, end, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset returns: %w", err)
	}

	out := &assetReturns{
		ret: map[string]map[time.Time]float64{},
		fwd: map[string]map[time.Time]float64{},
	}

	for i, a := range assets {
		if a.Return == nil {
			continue
		}
		if _, ok := out.ret[a.Barrid]; !ok {
			out.ret[a.Barrid] = map[time.Time]float64{}
			out.fwd[a.Barrid] = map[time.Time]float64{}
		}
		out.ret[a.Barrid][a.Date] = *a.Return / percentPerDecimal

		// forward return: the asset's return on its next trading day
		if i+1 < len(assets) && assets[i+1].Barrid == a.Barrid && assets[i+1].Return != nil {
			out.fwd[a.Barrid][a.Date] = *assets[i+1].Return / percentPerDecimal
		}
	}

	return out, nil
}

func weightsDateRange(weights []domain.PortfolioWeight) (time.Time, time.Time, error) {
	if len(weights) == 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("cannot compute returns from empty weights")
	}
	start, end := weights[0].Date, weights[0].Date
	for _, w := range weights {
		if w.Date.Before(start) {
			start = w.Date
		}
		if w.Date.After(end) {
			end = w.Date
		}
	}
	return start, end, nil
}

func (h returnsServiceHandler) ReturnsFromWeights(weights []domain.PortfolioWeight) ([]domain.PortfolioReturn, error) {
	start, end, err := weightsDateRange(weights)
	if err != nil {
		return nil, err
	}

	returns, err := h.loadAssetReturns(start, end)
	if err != nil {
		return nil, err
	}

	byDate := map[time.Time]*domain.PortfolioReturn{}
	for _, w := range weights {
		entry, ok := byDate[w.Date]
		if !ok {
			entry = &domain.PortfolioReturn{Date: w.Date}
			byDate[w.Date] = entry
		}
		weight := w.Weight.InexactFloat64()
		if r, ok := returns.ret[w.Barrid][w.Date]; ok {
			entry.Return += weight * r
		}
		if r, ok := returns.fwd[w.Barrid][w.Date]; ok {
			entry.FwdReturn += weight * r
		}
	}

	out := make([]domain.PortfolioReturn, 0, len(byDate))
	for _, entry := range byDate {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	return out, nil
}

func (h returnsServiceHandler) MultiReturnsFromWeights(weights []domain.PortfolioWeight) ([]domain.MultiPortfolioReturn, error) {
	start, end, err := weightsDateRange(weights)
	if err != nil {
		return nil, err
	}

	returns, err := h.loadAssetReturns(start, end)
	if err != nil {
		return nil, err
	}

	benchmark, err := h.BenchmarkRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmark weights: %w", err)
	}
	benchmarkWeight := map[time.Time]map[string]float64{}
	for _, b := range benchmark {
		if _, ok := benchmarkWeight[b.Date]; !ok {
			benchmarkWeight[b.Date] = map[string]float64{}
		}
		benchmarkWeight[b.Date][b.Barrid] = b.Weight
	}

	type accumulator struct {
		ret map[string]float64
		fwd map[string]float64
	}
	byDate := map[time.Time]*accumulator{}

	for _, w := range weights {
		acc, ok := byDate[w.Date]
		if !ok {
			acc = &accumulator{ret: map[string]float64{}, fwd: map[string]float64{}}
			byDate[w.Date] = acc
		}

		total := w.Weight.InexactFloat64()
		bmk := benchmarkWeight[w.Date][w.Barrid] // zero when the asset is not in the benchmark
		active := total - bmk

		if r, ok := returns.ret[w.Barrid][w.Date]; ok {
			acc.ret[domain.PortfolioTotal] += total * r
			acc.ret[domain.PortfolioBenchmark] += bmk * r
			acc.ret[domain.PortfolioActive] += active * r
		}
		if r, ok := returns.fwd[w.Barrid][w.Date]; ok {
			acc.fwd[domain.PortfolioTotal] += total * r
			acc.fwd[domain.PortfolioBenchmark] += bmk * r
			acc.fwd[domain.PortfolioActive] += active * r
		}
	}

	portfolios := []string{domain.PortfolioActive, domain.PortfolioBenchmark, domain.PortfolioTotal}

	out := make([]domain.MultiPortfolioReturn, 0, len(byDate)*len(portfolios))
	for date, acc := range byDate {
		for _, p := range portfolios {
			out = append(out, domain.MultiPortfolioReturn{
				Date:      date,
				Portfolio: p,
				Return:    acc.ret[p],
				FwdReturn: acc.fwd[p],
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Portfolio < out[j].Portfolio
	})

	return out, nil
}
