// Graynorm ranks combinations of candidate reference genes from an RT-qPCR
// experiment by how stable their combined normalization factor stays across
// the experimental conditions. Every non-empty subset of the candidate genes
// is scored, so runtime grows as 2^k in the candidate count; keep the
// candidate list modest.
//
// Exit statuses: 1 malformed controls directive or internal consistency
// fault, 2 I/O failure, 3 no candidate genes resolvable, 4 missing column
// configuration, 5 unknown column names, 6 non-numeric measurement, 7 empty
// control group, 8 condition group too small for sample statistics.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/carbocation/pfx"
	"github.com/graynorm/graynorm"
	"github.com/graynorm/graynorm/normalize"
	"github.com/graynorm/graynorm/refstats"
)

func main() {
	var (
		inputFile  string
		geneSpec   string
		outputFile string
		verbose    bool
		workers    int
	)

	flag.StringVar(&inputFile, "in", "", "CSV file to read input from. May be gzip/zip/xz/bzip2 compressed.")
	flag.StringVar(&geneSpec, "refgenes", "", "Optional. Comma-separated 1-based column indices of the candidate normalization genes, e.g. 3,5-8. The file's refgenes directive takes precedence.")
	flag.StringVar(&outputFile, "out", "", "CSV file to write the ranked results to.")
	flag.BoolVar(&verbose, "verbose", false, "Print feedback during the run.")
	flag.IntVar(&workers, "workers", 1, "Number of goroutines scoring gene combinations.")
	flag.Parse()

	if inputFile == "" || outputFile == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(inputFile, geneSpec, outputFile, verbose, workers); err != nil {
		log.Println(pfx.Err(err))
		os.Exit(exitCode(err))
	}
}

func run(inputFile, geneSpec, outputFile string, verbose bool, workers int) error {
	in, err := graynorm.ReadInput(inputFile)
	if err != nil {
		return err
	}

	cfg := normalize.Config{
		SampleColumn:     in.SampleColumn,
		ConditionColumns: in.ConditionColumns,
		ControlValues:    in.ControlValues,
		GeneColumns:      in.GeneColumns,
	}
	if len(cfg.GeneColumns) == 0 && geneSpec != "" {
		if cfg.GeneIndices, err = graynorm.ParseGeneIndexSpec(geneSpec); err != nil {
			return err
		}
	}

	tab, err := normalize.NewTable(in.Headers, cfg)
	if err != nil {
		return err
	}
	for _, row := range in.Rows {
		if err := tab.AddRow(row); err != nil {
			return err
		}
	}

	genes, err := tab.Genes()
	if err != nil {
		return err
	}

	if verbose {
		log.Println("sample column:", in.SampleColumn)
		log.Println("condition columns:", in.ConditionColumns)
		log.Println("control values:", tab.ControlValues().Label())
		controls := make([]string, 0, len(tab.ControlRows()))
		for _, idx := range tab.ControlRows() {
			controls = append(controls, tab.SampleID(idx))
		}
		log.Println("control samples:", controls)
		log.Println("samples:", tab.NrRows())
		log.Println("distinct conditions:", tab.NrConditions())
		log.Println("genes:", genes)
		fmt.Println(tab)
	}

	var results []normalize.Combination
	if workers > 1 {
		results, err = tab.RankAllConcurrent(genes, workers)
	} else {
		results, err = tab.RankAll(genes)
	}
	if err != nil {
		return err
	}

	if verbose {
		log.Println("scored", len(results), "gene combinations")
	}

	return writeResults(outputFile, tab.NrConditions(), results)
}

func exitCode(err error) int {
	var (
		de  *graynorm.DirectiveError
		uce *normalize.UnknownConditionError
		ce  *normalize.ConfigError
		ive *normalize.InvalidValueError
	)

	switch {
	case errors.As(err, &de), errors.As(err, &uce):
		return 1
	case errors.Is(err, normalize.ErrMissingGeneSpec):
		return 3
	case errors.As(err, &ce):
		if len(ce.Missing) == 0 {
			return 4
		}
		return 5
	case errors.As(err, &ive):
		return 6
	case errors.Is(err, normalize.ErrEmptyControlGroup):
		return 7
	case errors.Is(err, refstats.ErrDegenerateSample):
		return 8
	}

	return 2
}
