package riskmodel

import (
	"math"
	"testing"

	"sfquant/internal/util"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func Test_mirrorFill(t *testing.T) {
	nan := math.NaN()

	t.Run("upper triangle mirrors into the lower", func(t *testing.T) {
		staged := [][]float64{
			{1, 2, 3},
			{nan, 4, 5},
			{nan, nan, 6},
		}

		sym := mirrorFill(staged)

		require.Equal(t, 3, sym.SymmetricDim())
		require.Equal(t, 2.0, sym.At(1, 0))
		require.Equal(t, 3.0, sym.At(2, 0))
		require.Equal(t, 5.0, sym.At(2, 1))
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				require.Equal(t, sym.At(i, j), sym.At(j, i))
			}
		}
	})

	t.Run("lower triangle entries survive when the upper side is absent", func(t *testing.T) {
		staged := [][]float64{
			{1, nan},
			{7, 4},
		}

		sym := mirrorFill(staged)

		require.Equal(t, 7.0, sym.At(0, 1))
		require.Equal(t, 7.0, sym.At(1, 0))
	})

	t.Run("cells absent on both sides resolve to zero", func(t *testing.T) {
		staged := [][]float64{
			{1, nan},
			{nan, 4},
		}

		sym := mirrorFill(staged)

		require.Equal(t, 0.0, sym.At(0, 1))
		require.Equal(t, 0.0, sym.At(1, 0))
		require.Equal(t, 1.0, sym.At(0, 0))
		require.Equal(t, 4.0, sym.At(1, 1))
	})
}

func Test_compose(t *testing.T) {
	date := util.NewDate(2024, 1, 2)

	t.Run("row count must match asset labels", func(t *testing.T) {
		exposures := mat.NewDense(2, 1, []float64{1, 2})
		factorCov := mat.NewSymDense(1, []float64{100})
		specificVar := mat.NewDiagDense(2, []float64{0, 0})

		_, err := compose(date, []string{"A", "B", "C"}, exposures, factorCov, specificVar)
		var alignErr AlignmentError
		require.ErrorAs(t, err, &alignErr)
	})

	t.Run("factor covariance dimension must match exposure columns", func(t *testing.T) {
		exposures := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
		factorCov := mat.NewSymDense(1, []float64{100})
		specificVar := mat.NewDiagDense(2, []float64{0, 0})

		_, err := compose(date, []string{"A", "B"}, exposures, factorCov, specificVar)
		var dimErr DimensionError
		require.ErrorAs(t, err, &dimErr)
	})

	t.Run("specific risk dimension must match asset count", func(t *testing.T) {
		exposures := mat.NewDense(2, 1, []float64{1, 2})
		factorCov := mat.NewSymDense(1, []float64{100})
		specificVar := mat.NewDiagDense(3, []float64{0, 0, 0})

		_, err := compose(date, []string{"A", "B"}, exposures, factorCov, specificVar)
		var dimErr DimensionError
		require.ErrorAs(t, err, &dimErr)
	})

	t.Run("idiosyncratic variance lands on the diagonal only", func(t *testing.T) {
		exposures := mat.NewDense(2, 1, []float64{0, 0})
		factorCov := mat.NewSymDense(1, []float64{100})
		specificVar := mat.NewDiagDense(2, []float64{400, 900})

		matrix, err := compose(date, []string{"A", "B"}, exposures, factorCov, specificVar)
		require.NoError(t, err)

		require.InDelta(t, 0.04, matrix.At(0, 0), 1e-12)
		require.InDelta(t, 0.09, matrix.At(1, 1), 1e-12)
		require.Equal(t, 0.0, matrix.At(0, 1))
		require.Equal(t, 0.0, matrix.At(1, 0))
	})
}
