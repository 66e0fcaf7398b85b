// Package golden embeds the reference regression dataset: 47 compact
// objects with full-precision expected model outputs and the recorded
// winner per row.
package golden

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/error-wtf/segmented-calculation-suite/domain/catalog"
	"github.com/error-wtf/segmented-calculation-suite/domain/core"
	"github.com/error-wtf/segmented-calculation-suite/domain/result"
)

//go:embed golden_objects.csv
var goldenCSV []byte

// ExpectedObjects is the dataset size the regression contract is written
// against.
const ExpectedObjects = 47

var header = []string{"name", "m_solar", "r_km", "v_kms", "z_obs", "z_seg_ref", "z_grsr_ref", "winner"}

// Row is one reference object together with the outputs the engine is
// required to reproduce.
type Row struct {
	Object    catalog.CelestialObject
	RefZSSZ   float64
	RefZGRxSR float64
	RefWinner result.Winner
}

// Load parses and validates the embedded dataset. Any shape defect makes
// the whole dataset unusable; the harness treats that as fatal.
func Load() ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(goldenCSV))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrGoldenDataset, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", core.ErrGoldenDataset)
	}
	if len(records[0]) != len(header) {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", core.ErrGoldenDataset, len(header), len(records[0]))
	}
	for i, name := range header {
		if records[0][i] != name {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", core.ErrGoldenDataset, i, records[0][i], name)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := parseRow(rec)
		if err != nil {
			return nil, core.NewGoldenDatasetError(i+1, err)
		}
		if err := row.Object.Validate(); err != nil {
			return nil, core.NewGoldenDatasetError(i+1, err)
		}
		rows = append(rows, row)
	}

	if len(rows) != ExpectedObjects {
		return nil, fmt.Errorf("%w: expected %d objects, got %d", core.ErrGoldenDataset, ExpectedObjects, len(rows))
	}
	return rows, nil
}

func parseRow(rec []string) (Row, error) {
	fields := make([]float64, 6)
	for i := range fields {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return Row{}, fmt.Errorf("column %s: %v", header[i+1], err)
		}
		fields[i] = v
	}
	winner, err := result.ParseWinner(rec[7])
	if err != nil {
		return Row{}, err
	}
	observed := fields[3]
	return Row{
		Object: catalog.CelestialObject{
			Name:        rec[0],
			MassSolar:   fields[0],
			RadiusKm:    fields[1],
			VelocityKmS: fields[2],
			ObservedZ:   &observed,
		},
		RefZSSZ:   fields[4],
		RefZGRxSR: fields[5],
		RefWinner: winner,
	}, nil
}
