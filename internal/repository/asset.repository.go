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

type AssetRepository interface {
	// GetByDate returns the per-asset risk rows for a single date. When
	// inUniverseOnly is false the full table is returned, so assets held
	// outside the estimation universe still carry a specific risk.
	GetByDate(date time.Time, inUniverseOnly bool) ([]domain.AssetRisk, error)
	// List returns risk rows for the date range [start, end], inclusive,
	// ordered by barrid then date.
	List(start, end time.Time, inUniverseOnly bool) ([]domain.AssetRisk, error)
}

type assetRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetRepository(db *sql.DB) AssetRepository {
	return assetRepositoryHandler{db}
}

func (h assetRepositoryHandler) GetByDate(date time.Time, inUniverseOnly bool) ([]domain.AssetRisk, error) {
	where := table.AssetRisk.Date.EQ(postgres.DateT(date))
	if inUniverseOnly {
		where = where.AND(table.AssetRisk.InUniverse.IS_TRUE())
	}

	query := table.AssetRisk.
		SELECT(table.AssetRisk.AllColumns).
		WHERE(where).
		ORDER_BY(table.AssetRisk.Barrid.ASC())

	out := []model.AssetRisk{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets on %s: %w", date.Format(time.DateOnly), err)
	}

	return assetModelsToDomain(out), nil
}

func (h assetRepositoryHandler) List(start, end time.Time, inUniverseOnly bool) ([]domain.AssetRisk, error) {
	where := table.AssetRisk.Date.GT_EQ(postgres.DateT(start)).
		AND(table.AssetRisk.Date.LT_EQ(postgres.DateT(end)))
	if inUniverseOnly {
		where = where.AND(table.AssetRisk.InUniverse.IS_TRUE())
	}

	query := table.AssetRisk.
		SELECT(table.AssetRisk.AllColumns).
		WHERE(where).
		ORDER_BY(table.AssetRisk.Barrid.ASC(), table.AssetRisk.Date.ASC())

	out := []model.AssetRisk{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets from %s to %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), err)
	}

	return assetModelsToDomain(out), nil
}

func assetModelsToDomain(in []model.AssetRisk) []domain.AssetRisk {
	rows := make([]domain.AssetRisk, 0, len(in))
	for _, m := range in {
		rows = append(rows, domain.AssetRisk{
			Date:         m.Date,
			Barrid:       m.Barrid,
			SpecificRisk: m.SpecificRisk,
			Return:       m.Return,
			InUniverse:   m.InUniverse,
		})
	}
	return rows
}
