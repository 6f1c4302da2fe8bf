package research

import (
	"fmt"
	"math"

	"sfquant/internal/domain"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// SignalStats summarizes the distribution of a signal.
type SignalStats struct {
	Mean float64
	Std  float64
	Min  float64
	Max  float64
	Q25  float64
	Q50  float64
	Q75  float64
}

// ComputeSignalStats computes distribution statistics over the finite
// values of a signal.
func ComputeSignalStats(values []float64) (*SignalStats, error) {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return nil, fmt.Errorf("cannot compute stats on a signal with no finite values")
	}

	mean, err := stats.Mean(finite)
	if err != nil {
		return nil, err
	}
	std, err := stats.StandardDeviationSample(finite)
	if err != nil {
		return nil, err
	}
	min, err := stats.Min(finite)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(finite)
	if err != nil {
		return nil, err
	}
	q25, err := stats.Percentile(finite, 25)
	if err != nil {
		return nil, err
	}
	q50, err := stats.Percentile(finite, 50)
	if err != nil {
		return nil, err
	}
	q75, err := stats.Percentile(finite, 75)
	if err != nil {
		return nil, err
	}

	return &SignalStats{
		Mean: mean,
		Std:  std,
		Min:  min,
		Max:  max,
		Q25:  q25,
		Q50:  q50,
		Q75:  q75,
	}, nil
}

// reportMissing counts non-finite signal and return observations and logs a
// warning when any are found, so silently degraded signal data is
// detectable.
func reportMissing(signal []domain.SignalRow, log *zap.SugaredLogger) (signalMissing, returnMissing int) {
	for _, row := range signal {
		if math.IsNaN(row.Signal) || math.IsInf(row.Signal, 0) {
			signalMissing++
		}
		if math.IsNaN(row.FwdReturn) || math.IsInf(row.FwdReturn, 0) {
			returnMissing++
		}
	}
	if signalMissing > 0 {
		log.Warnw("signal column has missing values", "count", signalMissing)
	}
	if returnMissing > 0 {
		log.Warnw("return column has missing values", "count", returnMissing)
	}
	return signalMissing, returnMissing
}
