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

type FactorCovarianceRepository interface {
	GetByDate(date time.Time) ([]domain.FactorCovariance, error)
}

type factorCovarianceRepositoryHandler struct {
	Db *sql.DB
}

func NewFactorCovarianceRepository(db *sql.DB) FactorCovarianceRepository {
	return factorCovarianceRepositoryHandler{db}
}

// GetByDate loads the upper-triangular factor covariance entries for the
// date. Only factor_1 <= factor_2 pairs are stored; mirroring to the full
// symmetric matrix happens in the risk model, not here. Covariance is nil
// where the provider emitted a NaN cell.
func (h factorCovarianceRepositoryHandler) GetByDate(date time.Time) ([]domain.FactorCovariance, error) {
	query := table.FactorCovariance.
		SELECT(table.FactorCovariance.AllColumns).
		WHERE(table.FactorCovariance.Date.EQ(postgres.DateT(date))).
		ORDER_BY(table.FactorCovariance.Factor1.ASC(), table.FactorCovariance.Factor2.ASC())

	out := []model.FactorCovariance{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to load factor covariances on %s: %w", date.Format(time.DateOnly), err)
	}

	entries := make([]domain.FactorCovariance, 0, len(out))
	for _, m := range out {
		entries = append(entries, domain.FactorCovariance{
			Date:       m.Date,
			Factor1:    m.Factor1,
			Factor2:    m.Factor2,
			Covariance: m.Covariance,
		})
	}

	return entries, nil
}
