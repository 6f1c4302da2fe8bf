// Package sfquant wires the risk model, performance and research services
// against the factor model database and the local Fama-French factor file.
package sfquant

import (
	"database/sql"
	"fmt"

	"sfquant/internal/performance"
	"sfquant/internal/repository"
	"sfquant/internal/research"
	"sfquant/internal/riskmodel"
	"sfquant/internal/util"

	_ "github.com/lib/pq"
)

// Client bundles the library's services over a shared database connection.
type Client struct {
	RiskModel   riskmodel.CovarianceMatrixBuilder
	Returns     performance.ReturnsService
	Quantiles   research.QuantileService
	Attribution research.AttributionService

	db *sql.DB
}

// NewClient connects to the database described by the secrets file and
// constructs every service.
func NewClient() (*Client, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	return NewClientFromDb(db, secrets.FamaFrenchFile), nil
}

// NewClientFromDb constructs the services over an existing connection. The
// caller keeps ownership of the connection unless Close is used.
func NewClientFromDb(db *sql.DB, famaFrenchFile string) *Client {
	exposureRepository := repository.NewExposureRepository(db)
	factorCovarianceRepository := repository.NewFactorCovarianceRepository(db)
	assetRepository := repository.NewAssetRepository(db)
	benchmarkRepository := repository.NewBenchmarkRepository(db)
	famaFrenchRepository := repository.NewFamaFrenchRepository(famaFrenchFile)

	return &Client{
		RiskModel:   riskmodel.NewCovarianceMatrixBuilder(exposureRepository, factorCovarianceRepository, assetRepository),
		Returns:     performance.NewReturnsService(assetRepository, benchmarkRepository),
		Quantiles:   research.NewQuantileService(assetRepository, benchmarkRepository),
		Attribution: research.NewAttributionService(famaFrenchRepository),
		db:          db,
	}
}

// Close releases the underlying database connection.
func (c *Client) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
