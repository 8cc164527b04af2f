// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{"run_id", "benefit", "good", "kind", "mutation_rate", "value"}

// ExportCSV writes every point of runID to w, one row per (series, rate),
// in Series order. Floats use the shortest exact representation.
func (s *Store) ExportCSV(ctx context.Context, runID int64, w io.Writer) error {
	if _, err := s.Run(ctx, runID); err != nil {
		return err
	}
	series, err := s.Series(ctx, runID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	id := strconv.FormatInt(runID, 10)
	for _, sr := range series {
		benefit := formatFloat(sr.Benefit)
		for i := range sr.Rates {
			rec := []string{id, benefit, sr.Good.Short(), string(sr.Kind), formatFloat(sr.Rates[i]), formatFloat(sr.Values[i])}
			if err = cw.Write(rec); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
