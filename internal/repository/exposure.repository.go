package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"sfquant/internal/db/models/postgres/public/model"
	"sfquant/internal/db/models/postgres/public/table"
	"sfquant/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type ExposureRepository interface {
	GetByDate(date time.Time) ([]domain.ExposureRow, error)
}

type exposureRepositoryHandler struct {
	Db *sql.DB
}

func NewExposureRepository(db *sql.DB) ExposureRepository {
	return exposureRepositoryHandler{db}
}

// GetByDate loads every exposure row for the date and pivots the tall
// (barrid, factor_id, exposure) storage into one row per asset. Output is
// sorted ascending by barrid.
func (h exposureRepositoryHandler) GetByDate(date time.Time) ([]domain.ExposureRow, error) {
	query := table.FactorExposure.
		SELECT(table.FactorExposure.AllColumns).
		WHERE(table.FactorExposure.Date.EQ(postgres.DateT(date)))

	out := []model.FactorExposure{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to load factor exposures on %s: %w", date.Format(time.DateOnly), err)
	}

	byBarrid := map[string]map[string]float64{}
	for _, m := range out {
		if _, ok := byBarrid[m.Barrid]; !ok {
			byBarrid[m.Barrid] = map[string]float64{}
		}
		byBarrid[m.Barrid][m.FactorID] = m.Exposure
	}

	barrids := make([]string, 0, len(byBarrid))
	for barrid := range byBarrid {
		barrids = append(barrids, barrid)
	}
	sort.Strings(barrids)

	rows := make([]domain.ExposureRow, 0, len(barrids))
	for _, barrid := range barrids {
		rows = append(rows, domain.ExposureRow{
			Date:      date,
			Barrid:    barrid,
			Exposures: byBarrid[barrid],
		})
	}

	return rows, nil
}
