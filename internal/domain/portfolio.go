package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioWeight is one asset's weight in a portfolio on a date. Weights
// come from upstream portfolio construction and are exact decimals; they are
// converted to floats only at the point of numerical aggregation.
type PortfolioWeight struct {
	Date   time.Time
	Barrid string
	Weight decimal.Decimal
}

// BenchmarkWeight is one asset's weight in the benchmark on a date.
type BenchmarkWeight struct {
	Date   time.Time
	Barrid string
	Weight float64
}

// PortfolioReturn is a portfolio's realized return series entry. Return is
// the weighted same-day return, FwdReturn the weighted next-trading-day
// return, both in decimal units.
type PortfolioReturn struct {
	Date      time.Time
	Return    float64
	FwdReturn float64
}

// Portfolio labels for multi-portfolio return series.
const (
	PortfolioTotal     = "total"
	PortfolioBenchmark = "benchmark"
	PortfolioActive    = "active"
)

// MultiPortfolioReturn is one entry of a total/benchmark/active return
// series. Portfolio is one of the Portfolio* constants.
type MultiPortfolioReturn struct {
	Date      time.Time
	Portfolio string
	Return    float64
	FwdReturn float64
}

// AlphaRow is one asset's alpha signal value on a date.
type AlphaRow struct {
	Date   time.Time
	Barrid string
	Alpha  float64
}

// SecurityReturn is one asset's realized return on a date, in decimal units.
type SecurityReturn struct {
	Date   time.Time
	Barrid string
	Return float64
}

// InformationCoefficient is the cross-sectional correlation between the
// previous day's alpha and the realized return, for one date. N is the
// number of observations used.
type InformationCoefficient struct {
	Date time.Time
	IC   float64
	N    int
}

// SignalRow is one asset's signal value and forward return on a date, the
// input to quantile portfolio construction.
type SignalRow struct {
	Date      time.Time
	Barrid    string
	Signal    float64
	FwdReturn float64
}

// FamaFrenchRow holds the Fama-French 5 factor returns and the risk-free
// rate for one date, in decimal units.
type FamaFrenchRow struct {
	Date  time.Time
	MktRF float64
	SMB   float64
	HML   float64
	RMW   float64
	CMA   float64
	RF    float64
}
