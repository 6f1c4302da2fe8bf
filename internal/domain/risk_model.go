package domain

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
)

// ExposureRow holds one asset's factor exposures on a single date. Factors
// the provider omitted (below its materiality threshold) are simply absent
// from the map and are treated as exposure 0.0 downstream.
type ExposureRow struct {
	Date      time.Time
	Barrid    string
	Exposures map[string]float64
}

// FactorCovariance is one upper-triangular entry of the factor covariance
// table: Factor1 <= Factor2 lexicographically, covariance in percent-variance
// units. Covariance is nil when the provider emitted a NaN cell.
type FactorCovariance struct {
	Date       time.Time
	Factor1    string
	Factor2    string
	Covariance *float64
}

// AssetRisk is one row of the per-asset risk table. SpecificRisk is
// annualized idiosyncratic volatility in percent units. Return is the
// asset's same-day return in percent units.
type AssetRisk struct {
	Date         time.Time
	Barrid       string
	SpecificRisk *float64
	Return       *float64
	InUniverse   bool
}

// CovarianceMatrix is a dense symmetric asset-by-asset covariance matrix in
// decimal (not percent) units. Row i / column j is Cov(r_i, r_j); rows and
// columns share the same ordering, AssetIDs, which is always sorted
// ascending.
type CovarianceMatrix struct {
	Date     time.Time
	AssetIDs []string

	data  *mat.SymDense
	index map[string]int
}

func NewCovarianceMatrix(date time.Time, assetIDs []string, data *mat.SymDense) (*CovarianceMatrix, error) {
	if data.SymmetricDim() != len(assetIDs) {
		return nil, fmt.Errorf("covariance matrix is %dx%d but has %d asset labels", data.SymmetricDim(), data.SymmetricDim(), len(assetIDs))
	}
	index := make(map[string]int, len(assetIDs))
	for i, id := range assetIDs {
		index[id] = i
	}
	return &CovarianceMatrix{
		Date:     date,
		AssetIDs: assetIDs,
		data:     data,
		index:    index,
	}, nil
}

// Dim returns N, the number of assets.
func (c *CovarianceMatrix) Dim() int {
	return len(c.AssetIDs)
}

// At returns the covariance at row i, column j.
func (c *CovarianceMatrix) At(i, j int) float64 {
	return c.data.At(i, j)
}

// Covariance looks up the covariance between two assets by id.
func (c *CovarianceMatrix) Covariance(barrid1, barrid2 string) (float64, error) {
	i, ok := c.index[barrid1]
	if !ok {
		return 0, fmt.Errorf("asset %s not in covariance matrix", barrid1)
	}
	j, ok := c.index[barrid2]
	if !ok {
		return 0, fmt.Errorf("asset %s not in covariance matrix", barrid2)
	}
	return c.data.At(i, j), nil
}

// Variance looks up an asset's total variance (diagonal entry).
func (c *CovarianceMatrix) Variance(barrid string) (float64, error) {
	return c.Covariance(barrid, barrid)
}

// Sym exposes the underlying symmetric matrix for downstream numerical
// consumers (optimizers, risk reports). Callers must not mutate it.
func (c *CovarianceMatrix) Sym() *mat.SymDense {
	return c.data
}
