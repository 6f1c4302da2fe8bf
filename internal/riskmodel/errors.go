package riskmodel

import "fmt"

// MissingDataPolicy controls how the builder treats assets that have no
// exposure row or no specific-risk row for the requested date. The risk
// model provider treats these as zero risk, not unknown risk, so
// ZeroFillMissing preserves source behavior; StrictMissing rejects instead,
// for callers that would rather fail than price an unmodeled asset as
// risk-free.
type MissingDataPolicy int

const (
	ZeroFillMissing MissingDataPolicy = iota
	StrictMissing
)

// DuplicateAssetError is returned when the requested asset list contains
// repeats. Requests are rejected rather than silently deduplicated.
type DuplicateAssetError struct {
	Barrid string
}

func (e DuplicateAssetError) Error() string {
	return fmt.Sprintf("duplicate asset id in request: %s", e.Barrid)
}

// AlignmentError is returned when asset or factor labels disagree between
// stage outputs. It aborts the composition: a silently misaligned multiply
// would produce a plausible-looking but wrong matrix.
type AlignmentError struct {
	Detail string
}

func (e AlignmentError) Error() string {
	return "covariance matrix alignment error: " + e.Detail
}

// DimensionError is returned when stage output shapes are incompatible for
// the matrix composition.
type DimensionError struct {
	Detail string
}

func (e DimensionError) Error() string {
	return "covariance matrix dimension error: " + e.Detail
}

// MissingDataError is returned under StrictMissing when a requested asset
// has no row in one of the sources for the date.
type MissingDataError struct {
	Barrid string
	Source string
}

func (e MissingDataError) Error() string {
	return fmt.Sprintf("asset %s has no %s row for the requested date", e.Barrid, e.Source)
}
