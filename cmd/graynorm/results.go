package main

import (
	"encoding/csv"
	"os"

	"github.com/graynorm/graynorm/normalize"
)

// writeResults serializes the ranked combinations. The output file is only
// created here, after ranking has finished, so a fatal error never leaves a
// partial result file behind.
func writeResults(path string, nrConditions int, results []normalize.Combination) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(normalize.HeaderRow(nrConditions)); err != nil {
		f.Close()
		return err
	}
	for _, r := range results {
		if err := w.Write(r.OutputRow()); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
