package repository

import (
	"database/sql"
	"fmt"
	"time"

	"sfquant/internal/db/models/postgres/public/model"
	"sfquant/internal/db/models/postgres/public/table"
	"sfquant/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type BenchmarkRepository interface {
	// List returns benchmark weights for the date range [start, end],
	// inclusive, ordered by date then barrid.
	List(start, end time.Time) ([]domain.BenchmarkWeight, error)
}

type benchmarkRepositoryHandler struct {
	Db *sql.DB
}

func NewBenchmarkRepository(db *sql.DB) BenchmarkRepository {
	return benchmarkRepositoryHandler{db}
}

func (h benchmarkRepositoryHandler) List(start, end time.Time) ([]domain.BenchmarkWeight, error) {
	query := table.BenchmarkWeight.
		SELECT(table.BenchmarkWeight.AllColumns).
		WHERE(
			table.BenchmarkWeight.Date.GT_EQ(postgres.DateT(start)).
				AND(table.BenchmarkWeight.Date.LT_EQ(postgres.DateT(end))),
		).
		ORDER_BY(table.BenchmarkWeight.Date.ASC(), table.BenchmarkWeight.Barrid.ASC())

	out := []model.BenchmarkWeight{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list benchmark weights from %s to %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), err)
	}

	weights := make([]domain.BenchmarkWeight, 0, len(out))
	for _, m := range out {
		weights = append(weights, domain.BenchmarkWeight{
			Date:   m.Date,
			Barrid: m.Barrid,
			Weight: m.Weight,
		})
	}

	return weights, nil
}
