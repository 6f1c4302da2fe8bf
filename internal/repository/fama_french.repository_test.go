package repository

import (
	"os"
	"path/filepath"
	"testing"

	"sfquant/internal/util"

	"github.com/stretchr/testify/require"
)

func writeFactorFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ff5_daily.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func Test_FamaFrenchRepository_List(t *testing.T) {
	path := writeFactorFile(t, `date,mkt_rf,smb,hml,rmw,cma,rf
2024-01-03,0.0055,-0.0012,0.0004,0.0009,-0.0003,0.0002
2024-01-02,0.0041,0.0021,-0.0013,0.0002,0.0008,0.0002
2024-01-04,-0.0032,0.0005,0.0011,-0.0006,0.0001,0.0002
`)

	repo := NewFamaFrenchRepository(path)

	rows, err := repo.List(util.NewDate(2024, 1, 2), util.NewDate(2024, 1, 3))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// ordered by date regardless of file order, end date inclusive
	require.Equal(t, util.NewDate(2024, 1, 2), rows[0].Date)
	require.Equal(t, 0.0041, rows[0].MktRF)
	require.Equal(t, 0.0021, rows[0].SMB)
	require.Equal(t, -0.0013, rows[0].HML)
	require.Equal(t, 0.0002, rows[0].RF)
	require.Equal(t, util.NewDate(2024, 1, 3), rows[1].Date)
}

func Test_FamaFrenchRepository_missingFile(t *testing.T) {
	repo := NewFamaFrenchRepository("/does/not/exist.csv")

	_, err := repo.List(util.NewDate(2024, 1, 2), util.NewDate(2024, 1, 3))
	require.Error(t, err)
}

func Test_FamaFrenchRepository_malformedFile(t *testing.T) {
	path := writeFactorFile(t, `date,mkt_rf,smb,hml,rmw,cma,rf
not-a-date,0.0041,0.0021,-0.0013,0.0002,0.0008,0.0002
`)

	repo := NewFamaFrenchRepository(path)

	_, err := repo.List(util.NewDate(2024, 1, 2), util.NewDate(2024, 1, 3))
	require.Error(t, err)
}
