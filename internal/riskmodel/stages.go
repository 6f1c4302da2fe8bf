package riskmodel

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// buildExposureMatrix builds the N x K factor exposure matrix for the
// requested assets, rows ordered by sortedIDs, columns ordered by
// h.FactorIDs. Assets with no exposure row for the date are kept with an
// all-zero row - dropping them would silently change N between stages.
// Factor exposures the provider omitted fill with 0.0.
func (h covarianceMatrixBuilderHandler) buildExposureMatrix(date time.Time, sortedIDs []string, log *zap.SugaredLogger) (*mat.Dense, error) {
	rows, err := h.ExposureRepository.GetByDate(date)
	if err != nil {
		return nil, err
	}

	factorIndex := make(map[string]int, len(h.FactorIDs))
	for j, id := range h.FactorIDs {
		factorIndex[id] = j
	}

	requested := make(map[string]int, len(sortedIDs))
	for i, id := range sortedIDs {
		requested[id] = i
	}

	x := mat.NewDense(len(sortedIDs), len(h.FactorIDs), nil)
	found := make(map[string]struct{}, len(sortedIDs))

	for _, row := range rows {
		i, ok := requested[row.Barrid]
		if !ok {
			continue
		}
		found[row.Barrid] = struct{}{}
		for factorID, exposure := range row.Exposures {
			j, ok := factorIndex[factorID]
			if !ok {
				return nil, AlignmentError{Detail: fmt.Sprintf(
					"exposure source has factor %s outside the model's factor set", factorID)}
			}
			x.Set(i, j, exposure)
		}
	}

	if missing := len(sortedIDs) - len(found); missing > 0 {
		if h.MissingDataPolicy == StrictMissing {
			for _, id := range sortedIDs {
				if _, ok := found[id]; !ok {
					return nil, MissingDataError{Barrid: id, Source: "exposure"}
				}
			}
		}
		log.Warnw("assets missing exposure rows were zero-filled",
			"missing", missing,
			"requested", len(sortedIDs),
		)
	}

	return x, nil
}

// buildFactorCovarianceMatrix reconstructs the full symmetric K x K factor
// covariance matrix from the upper-triangular source. For each unordered
// factor pair the value is whichever side is present; a pair missing on both
// sides resolves to 0.0. Units are left in percent-variance space - the
// composer converts to decimal.
func (h covarianceMatrixBuilderHandler) buildFactorCovarianceMatrix(date time.Time) (*mat.SymDense, error) {
	entries, err := h.FactorCovarianceRepository.GetByDate(date)
	if err != nil {
		return nil, err
	}

	k := len(h.FactorIDs)
	factorIndex := make(map[string]int, k)
	for j, id := range h.FactorIDs {
		factorIndex[id] = j
	}

	// staged[i][j] is NaN until an entry fills it
	staged := make([][]float64, k)
	for i := range staged {
		staged[i] = make([]float64, k)
		for j := range staged[i] {
			staged[i][j] = math.NaN()
		}
	}

	for _, e := range entries {
		i, ok := factorIndex[e.Factor1]
		if !ok {
			return nil, AlignmentError{Detail: fmt.Sprintf(
				"covariance source has factor %s outside the model's factor set", e.Factor1)}
		}
		j, ok := factorIndex[e.Factor2]
		if !ok {
			return nil, AlignmentError{Detail: fmt.Sprintf(
				"covariance source has factor %s outside the model's factor set", e.Factor2)}
		}
		if e.Covariance != nil {
			staged[i][j] = *e.Covariance
		}
	}

	return mirrorFill(staged), nil
}

// mirrorFill turns a staged matrix holding NaN for absent cells into a full
// symmetric matrix: cov[i][j] = cov[j][i] whenever exactly one side is
// present; both-NaN cells resolve to 0.0.
func mirrorFill(staged [][]float64) *mat.SymDense {
	k := len(staged)
	sym := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			v := staged[i][j]
			if math.IsNaN(v) {
				v = staged[j][i]
			}
			if math.IsNaN(v) {
				v = 0
			}
			sym.SetSym(i, j, v)
		}
	}
	return sym
}

// buildSpecificRiskMatrix builds the N x N diagonal idiosyncratic variance
// matrix aligned to sortedIDs. The asset table is loaded unfiltered so that
// out-of-universe holdings still get a specific risk. Assets absent from
// the table get 0.0 under ZeroFillMissing - the provider's convention, kept
// for compatibility but surfaced via the policy and the warn log.
func (h covarianceMatrixBuilderHandler) buildSpecificRiskMatrix(date time.Time, sortedIDs []string, log *zap.SugaredLogger) (*mat.DiagDense, error) {
	assets, err := h.AssetRepository.GetByDate(date, false)
	if err != nil {
		return nil, err
	}

	riskByBarrid := make(map[string]float64, len(assets))
	for _, a := range assets {
		if a.SpecificRisk != nil {
			riskByBarrid[a.Barrid] = *a.SpecificRisk
		}
	}

	diag := mat.NewDiagDense(len(sortedIDs), nil)
	missing := 0
	for i, barrid := range sortedIDs {
		specificRisk, ok := riskByBarrid[barrid]
		if !ok {
			if h.MissingDataPolicy == StrictMissing {
				return nil, MissingDataError{Barrid: barrid, Source: "specific risk"}
			}
			missing++
		}
		// volatility to variance
		diag.SetDiag(i, specificRisk*specificRisk)
	}

	if missing > 0 {
		log.Warnw("assets missing specific risk were assigned zero idiosyncratic variance",
			"missing", missing,
			"requested", len(sortedIDs),
		)
	}

	return diag, nil
}
