/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/labscan/report"
	"github.com/humaidq/labscan/translate"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

var CmdAnalyze = &cli.Command{
	Name:      "analyze",
	Usage:     "Analyze a lab report file and print the results",
	ArgsUsage: "<file>",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: formatTable,
			Usage: "output format (table or json)",
		},
		&cli.StringFlag{
			Name:  "language",
			Value: translate.English,
			Usage: "language for interpretations and recommendations (en, hi, te, ta)",
		},
	}, extractionFlags()...),
	Action: analyze,
}

func analyze(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errFileArgRequired
	}

	format := strings.ToLower(cmd.String("format"))
	if format != formatTable && format != formatJSON {
		return errInvalidFormat
	}

	translator, err := newTranslator(cmd)
	if err != nil {
		return err
	}

	extracted, err := newExtractor(cmd).Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	analysis, err := report.Analyze(extracted.Text)
	switch {
	case errors.Is(err, report.ErrNotMedical):
		return fmt.Errorf("%w (score %.1f): %s", errNotLabReport, analysis.Verdict.Score, analysis.Verdict.Reason)
	case err != nil:
		return fmt.Errorf("failed to analyze %s: %w", path, err)
	}

	lang := cmd.String("language")
	translate.Analysis(ctx, translator, analysis, lang)

	if format == formatJSON {
		return writeAnalysisJSON(os.Stdout, analysis)
	}

	return writeAnalysisTable(os.Stdout, analysis)
}

func writeAnalysisJSON(w io.Writer, analysis *report.Analysis) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(analysis); err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}

	return nil
}

// writeAnalysisTable prints results in aligned columns followed by the
// recommendations for each abnormal test.
func writeAnalysisTable(w io.Writer, analysis *report.Analysis) error {
	if len(analysis.Results) == 0 {
		_, err := fmt.Fprintln(w, "No structured data found in report.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "TEST\tVALUE\tUNIT\tRANGE\tSTATUS\tSOURCE")

	for _, r := range analysis.Results {
		rng := r.Range
		if rng == "" {
			rng = "-"
		}

		fmt.Fprintf(tw, "%s\t%g\t%s\t%s\t%s\t%s\n", r.Test, r.Value, r.Unit, rng, r.Status, r.RangeSource)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	fmt.Fprintln(w)

	for _, r := range analysis.Results {
		fmt.Fprintf(w, "%s: %s\n", r.Test, r.Interpretation)
	}

	tests := make([]string, 0, len(analysis.Recommendations))
	for test := range analysis.Recommendations {
		tests = append(tests, test)
	}

	sort.Strings(tests)

	for _, test := range tests {
		rec := analysis.Recommendations[test]

		fmt.Fprintf(w, "\n%s (%s)\n", test, rec.Status)
		writeList(w, "Foods", rec.Foods)
		writeList(w, "Lifestyle", rec.Lifestyle)
		writeList(w, "Avoid", rec.Avoid)
	}

	return nil
}

func writeList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(w, "  %s:\n", title)

	for _, item := range items {
		fmt.Fprintf(w, "    - %s\n", item)
	}
}
