package riskmodel

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"sfquant/internal/domain"
	"sfquant/internal/factors"
	"sfquant/internal/logger"
	"sfquant/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CovarianceMatrixBuilder assembles the asset-by-asset covariance matrix for
// a date from three sources: the factor exposure table, the upper-triangular
// factor covariance table, and the per-asset specific risk table. Build is a
// pure function of its inputs and the store's state - nothing is cached or
// mutated across calls, so distinct dates may be built concurrently.
type CovarianceMatrixBuilder interface {
	Build(ctx context.Context, date time.Time, assetIDs []string) (*domain.CovarianceMatrix, error)
	BuildRange(ctx context.Context, dates []time.Time, assetIDs []string) (map[time.Time]*domain.CovarianceMatrix, error)
}

type covarianceMatrixBuilderHandler struct {
	ExposureRepository         repository.ExposureRepository
	FactorCovarianceRepository repository.FactorCovarianceRepository
	AssetRepository            repository.AssetRepository

	// FactorIDs is the closed factor enumeration, sorted ascending. It
	// fixes both the exposure matrix column order and the factor
	// covariance row/column order, so the two can never drift apart.
	FactorIDs []string

	MissingDataPolicy MissingDataPolicy
	Log               *zap.SugaredLogger
}

func NewCovarianceMatrixBuilder(
	exposureRepository repository.ExposureRepository,
	factorCovarianceRepository repository.FactorCovarianceRepository,
	assetRepository repository.AssetRepository,
) CovarianceMatrixBuilder {
	return covarianceMatrixBuilderHandler{
		ExposureRepository:         exposureRepository,
		FactorCovarianceRepository: factorCovarianceRepository,
		AssetRepository:            assetRepository,
		FactorIDs:                  factors.All(),
		MissingDataPolicy:          ZeroFillMissing,
		Log:                        logger.New(),
	}
}

func (h covarianceMatrixBuilderHandler) Build(ctx context.Context, date time.Time, assetIDs []string) (*domain.CovarianceMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := h.Log.With(
		"buildId", uuid.NewString(),
		"date", date.Format(time.DateOnly),
	)

	sortedIDs, err := validateAssetIDs(assetIDs)
	if err != nil {
		return nil, err
	}

	exposures, err := h.buildExposureMatrix(date, sortedIDs, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build exposure matrix: %w", err)
	}

	factorCov, err := h.buildFactorCovarianceMatrix(date)
	if err != nil {
		return nil, fmt.Errorf("failed to build factor covariance matrix: %w", err)
	}

	specificVar, err := h.buildSpecificRiskMatrix(date, sortedIDs, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build specific risk matrix: %w", err)
	}

	return compose(date, sortedIDs, exposures, factorCov, specificVar)
}

// BuildRange builds one covariance matrix per date. Dates are independent
// of each other, so they run concurrently, bounded by GOMAXPROCS. The first
// failure cancels the remaining builds.
func (h covarianceMatrixBuilderHandler) BuildRange(ctx context.Context, dates []time.Time, assetIDs []string) (map[time.Time]*domain.CovarianceMatrix, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	out := make(map[time.Time]*domain.CovarianceMatrix, len(dates))

	for _, date := range dates {
		date := date
		g.Go(func() error {
			matrix, err := h.Build(ctx, date, assetIDs)
			if err != nil {
				return fmt.Errorf("failed to build covariance matrix for %s: %w", date.Format(time.DateOnly), err)
			}
			mu.Lock()
			out[date] = matrix
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// validateAssetIDs rejects empty and duplicated requests and returns the
// ids sorted ascending - the row/column order used by every stage.
func validateAssetIDs(assetIDs []string) ([]string, error) {
	if len(assetIDs) == 0 {
		return nil, fmt.Errorf("cannot build covariance matrix for empty asset list")
	}

	seen := make(map[string]struct{}, len(assetIDs))
	for _, id := range assetIDs {
		if _, ok := seen[id]; ok {
			return nil, DuplicateAssetError{Barrid: id}
		}
		seen[id] = struct{}{}
	}

	sorted := append([]string{}, assetIDs...)
	sort.Strings(sorted)
	return sorted, nil
}
