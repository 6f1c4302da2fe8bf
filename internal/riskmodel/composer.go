package riskmodel

import (
	"fmt"
	"time"

	"sfquant/internal/domain"

	"gonum.org/v1/gonum/mat"
)

// Source volatilities and covariances are in percent units, so covariance
// scales as the square of a percent.
const percentSquaredPerDecimal = 100.0 * 100.0

// compose combines the three stage outputs into the final labeled matrix:
//
//	sigma = X * sigmaF * X^T + D
//
// systematic variance from factor exposures and their covariance, plus
// additive idiosyncratic variance on the diagonal, converted from percent^2
// to decimal units. Every shape is checked before the multiply - a mismatch
// here means an upstream alignment bug, and computing anyway would corrupt
// every downstream consumer without an error.
func compose(date time.Time, assetIDs []string, exposures *mat.Dense, factorCov *mat.SymDense, specificVar *mat.DiagDense) (*domain.CovarianceMatrix, error) {
	n, k := exposures.Dims()

	if n != len(assetIDs) {
		return nil, AlignmentError{Detail: fmt.Sprintf(
			"exposure matrix has %d rows for %d assets", n, len(assetIDs))}
	}
	if kf := factorCov.SymmetricDim(); kf != k {
		return nil, DimensionError{Detail: fmt.Sprintf(
			"exposure matrix has %d factor columns but factor covariance is %dx%d", k, kf, kf)}
	}
	if dn, _ := specificVar.Dims(); dn != n {
		return nil, DimensionError{Detail: fmt.Sprintf(
			"specific risk matrix is %dx%d but exposure matrix has %d rows", dn, dn, n)}
	}

	var scaled mat.Dense
	scaled.Mul(exposures, factorCov)

	var systematic mat.Dense
	systematic.Mul(&scaled, exposures.T())

	// The algebraic form guarantees symmetry given aligned inputs; filling
	// from the upper triangle makes the result exactly symmetric despite
	// floating point evaluation order.
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := systematic.At(i, j)
			if i == j {
				v += specificVar.At(i, i)
			}
			out.SetSym(i, j, v/percentSquaredPerDecimal)
		}
	}

	return domain.NewCovarianceMatrix(date, assetIDs, out)
}
