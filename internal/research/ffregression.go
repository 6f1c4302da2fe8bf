package research

import (
	"fmt"
	"math"
	"time"

	"sfquant/internal/repository"

	"gonum.org/v1/gonum/mat"
)

// Regression term labels, intercept first, matching the design matrix
// column order.
var regressionTerms = []string{"alpha", "beta_mkt", "beta_smb", "beta_hml", "beta_rmw", "beta_cma"}

// RegressionTerm is one estimated coefficient and its t-statistic.
type RegressionTerm struct {
	Term        string
	Coefficient float64
	TValue      float64
}

// Format renders the term the way research reports read it: coefficient,
// t-statistic, and a star when |t| > 2.
func (t RegressionTerm) Format() string {
	star := ""
	if math.Abs(t.TValue) > 2 {
		star = "*"
	}
	return fmt.Sprintf("%.4f (%.2f)%s", t.Coefficient, t.TValue, star)
}

// FFRegressionResult holds the Fama-French 5-factor regression estimates for
// one portfolio.
type FFRegressionResult struct {
	Portfolio string
	Terms     []RegressionTerm
}

// AttributionService runs factor attribution regressions on portfolio
// return series.
type AttributionService interface {
	// FamaFrenchRegression regresses each portfolio's excess returns
	// (net of the risk-free rate) on the Fama-French 5 factors with an
	// intercept. Dates where any portfolio series is NaN (scaling
	// warm-up) are dropped before the join.
	FamaFrenchRegression(ports *QuantilePortfolioSet) ([]FFRegressionResult, error)
}

type attributionServiceHandler struct {
	FamaFrenchRepository repository.FamaFrenchRepository
}

func NewAttributionService(famaFrenchRepository repository.FamaFrenchRepository) AttributionService {
	return attributionServiceHandler{FamaFrenchRepository: famaFrenchRepository}
}

func (h attributionServiceHandler) FamaFrenchRegression(ports *QuantilePortfolioSet) ([]FFRegressionResult, error) {
	names := ports.PortfolioNames()

	// drop scaling warm-up rows
	kept := []int{}
	for t := range ports.Dates {
		complete := true
		for _, name := range names {
			if math.IsNaN(ports.Series(name)[t]) {
				complete = false
				break
			}
		}
		if complete {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("no complete observations to regress on")
	}

	start := ports.Dates[kept[0]]
	end := ports.Dates[kept[len(kept)-1]]
	ffRows, err := h.FamaFrenchRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load fama-french factors: %w", err)
	}
	ffByDate := map[time.Time]int{}
	for i, row := range ffRows {
		ffByDate[row.Date] = i
	}

	// inner join on date
	joined := []int{}
	ffIdx := []int{}
	for _, t := range kept {
		if i, ok := ffByDate[ports.Dates[t]]; ok {
			joined = append(joined, t)
			ffIdx = append(ffIdx, i)
		}
	}

	n := len(joined)
	p := len(regressionTerms)
	if n <= p {
		return nil, fmt.Errorf("need more than %d observations for the regression, got %d", p, n)
	}

	x := mat.NewDense(n, p, nil)
	for row, i := range ffIdx {
		ff := ffRows[i]
		x.SetRow(row, []float64{1, ff.MktRF, ff.SMB, ff.HML, ff.RMW, ff.CMA})
	}

	results := make([]FFRegressionResult, 0, len(names))
	for _, name := range names {
		series := ports.Series(name)
		y := make([]float64, n)
		for row, t := range joined {
			y[row] = series[t] - ffRows[ffIdx[row]].RF
		}

		coefs, tvals, err := olsWithTStats(x, y)
		if err != nil {
			return nil, fmt.Errorf("regression failed for portfolio %s: %w", name, err)
		}

		terms := make([]RegressionTerm, p)
		for j, term := range regressionTerms {
			terms[j] = RegressionTerm{Term: term, Coefficient: coefs[j], TValue: tvals[j]}
		}
		results = append(results, FFRegressionResult{Portfolio: name, Terms: terms})
	}

	return results, nil
}

// olsWithTStats fits y = X b by least squares and returns the coefficient
// estimates and their t-statistics, computed from the unbiased residual
// variance and the diagonal of (X^T X)^-1.
func olsWithTStats(x *mat.Dense, y []float64) ([]float64, []float64, error) {
	n, p := x.Dims()

	var qr mat.QR
	qr.Factorize(x)

	yVec := mat.NewVecDense(n, y)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, yVec); err != nil {
		return nil, nil, fmt.Errorf("least squares solve failed: %w", err)
	}

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	var rss float64
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		rss += r * r
	}
	sigma2 := rss / float64(n-p)

	var xtx mat.Dense
	xtx.Mul(x.T(), x)
	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, nil, fmt.Errorf("design matrix is singular: %w", err)
	}

	coefs := make([]float64, p)
	tvals := make([]float64, p)
	for j := 0; j < p; j++ {
		coefs[j] = beta.AtVec(j)
		se := math.Sqrt(sigma2 * xtxInv.At(j, j))
		tvals[j] = coefs[j] / se
	}

	return coefs, tvals, nil
}
