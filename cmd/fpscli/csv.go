package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// readCSV parses a CSV file into a dense row-major point cloud. Every
// record must have the same number of fields.
func readCSV(path string) ([][]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([][]float32, len(records))
	for i, rec := range records {
		row := make([]float32, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %w", i, j, err)
			}
			row[j] = float32(v)
		}
		rows[i] = row
	}
	return rows, nil
}
