package repository

import (
	"fmt"
	"os"
	"sort"
	"time"

	"sfquant/internal/domain"

	"github.com/gocarina/gocsv"
)

type FamaFrenchRepository interface {
	// List returns Fama-French 5 factor rows for the date range
	// [start, end], inclusive, ordered by date.
	List(start, end time.Time) ([]domain.FamaFrenchRow, error)
}

// famaFrenchCsvDate parses the date column of the factor file
// (YYYY-MM-DD).
type famaFrenchCsvDate struct {
	time.Time
}

func (d *famaFrenchCsvDate) UnmarshalCSV(csv string) error {
	t, err := time.Parse(time.DateOnly, csv)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type famaFrenchCsvRow struct {
	Date  famaFrenchCsvDate `csv:"date"`
	MktRF float64           `csv:"mkt_rf"`
	SMB   float64           `csv:"smb"`
	HML   float64           `csv:"hml"`
	RMW   float64           `csv:"rmw"`
	CMA   float64           `csv:"cma"`
	RF    float64           `csv:"rf"`
}

type famaFrenchRepositoryHandler struct {
	FilePath string
}

// NewFamaFrenchRepository reads factor returns from a local CSV download of
// the Fama-French 5-factor daily series, with columns
// date,mkt_rf,smb,hml,rmw,cma,rf in decimal units.
func NewFamaFrenchRepository(filePath string) FamaFrenchRepository {
	return famaFrenchRepositoryHandler{FilePath: filePath}
}

func (h famaFrenchRepositoryHandler) List(start, end time.Time) ([]domain.FamaFrenchRow, error) {
	f, err := os.Open(h.FilePath)
	if err != nil {
		return nil, fmt.Errorf("could not open fama-french factor file: %w", err)
	}
	defer f.Close()

	csvRows := []famaFrenchCsvRow{}
	if err := gocsv.UnmarshalFile(f, &csvRows); err != nil {
		return nil, fmt.Errorf("failed to parse fama-french factor file %s: %w", h.FilePath, err)
	}

	rows := []domain.FamaFrenchRow{}
	for _, r := range csvRows {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		rows = append(rows, domain.FamaFrenchRow{
			Date:  r.Date.Time,
			MktRF: r.MktRF,
			SMB:   r.SMB,
			HML:   r.HML,
			RMW:   r.RMW,
			CMA:   r.CMA,
			RF:    r.RF,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	return rows, nil
}
