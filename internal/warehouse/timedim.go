//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/internal/table"
)

// TimeDimBuilder derives the minute-granularity calendar dimension from
// the date range observed in the staged invoice table. The step is one
// minute purely to bound output size.
type TimeDimBuilder struct {
	inputPath  string
	outputPath string
	startingID int
	data       *table.Table
}

// NewTimeDimBuilder creates a time dimension builder over the staged
// invoice table.
func NewTimeDimBuilder(inputPath, outputPath string, startingID int) *TimeDimBuilder {
	return &TimeDimBuilder{
		inputPath:  inputPath,
		outputPath: outputPath,
		startingID: startingID,
	}
}

// Name implements etl.Builder.
func (b *TimeDimBuilder) Name() string {
	return "warehouse.time_dim"
}

// Extract implements etl.Builder.
func (b *TimeDimBuilder) Extract() error {
	t, err := table.ReadCSV(b.inputPath)
	if err != nil {
		return err
	}
	b.data = t
	return nil
}

// Transform implements etl.Builder.
func (b *TimeDimBuilder) Transform() error {
	out, err := generateTimeDim(b.data, b.startingID)
	if err != nil {
		return fmt.Errorf("time dimension: %w", err)
	}
	b.data = out
	return nil
}

// Load implements etl.Builder.
func (b *TimeDimBuilder) Load() error {
	if err := table.WriteCSV(b.data, b.outputPath); err != nil {
		return err
	}
	logging.Info().
		Str("builder", b.Name()).
		Int("rows", b.data.Len()).
		Str("path", b.outputPath).
		Msg("Dimension written")
	return nil
}

// invoiceDateBounds extracts the date portion (first 10 characters) of
// every invoice_date value and returns the minimum and maximum of the
// distinct set.
func invoiceDateBounds(staged *table.Table) (string, string, error) {
	dates, err := staged.Column("invoice_date")
	if err != nil {
		return "", "", err
	}
	if len(dates) == 0 {
		return "", "", fmt.Errorf("staged invoice table has no rows")
	}

	trimmed := staged.Clone()
	if err := trimmed.Apply("invoice_date", func(s string) string {
		if len(s) > len(dateLayout) {
			return s[:len(dateLayout)]
		}
		return s
	}); err != nil {
		return "", "", err
	}

	distinct, err := trimmed.DistinctSorted("invoice_date")
	if err != nil {
		return "", "", err
	}
	return distinct[0], distinct[len(distinct)-1], nil
}

// generateTimeDim builds the dimension table covering every whole minute
// of every day from minDate through maxDate, stamps the dataset-wide
// bounds onto each row, and assigns surrogate ids.
func generateTimeDim(staged *table.Table, startingID int) (*table.Table, error) {
	minDate, maxDate, err := invoiceDateBounds(staged)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(dateLayout, minDate)
	if err != nil {
		return nil, fmt.Errorf("parsing min invoice date %q: %w", minDate, err)
	}
	lastDay, err := time.Parse(dateLayout, maxDate)
	if err != nil {
		return nil, fmt.Errorf("parsing max invoice date %q: %w", maxDate, err)
	}
	// The range is inclusive of the max date: it ends at 23:59 of that day.
	end := lastDay.AddDate(0, 0, 1)

	out := table.New(
		"date", "year", "quarter", "semester", "month", "month_string",
		"day", "day_of_week_string", "hour_24", "hour_12",
		"minutes", "seconds", "max_date_ingested", "min_date_ingested",
	)
	for ts := start; ts.Before(end); ts = ts.Add(time.Minute) {
		if err := out.AppendRow(
			ts.Format(stampLayout),
			strconv.Itoa(ts.Year()),
			strconv.Itoa(quarter(ts.Month())),
			strconv.Itoa(semester(ts.Month())),
			strconv.Itoa(int(ts.Month())),
			monthName(ts.Month()),
			strconv.Itoa(ts.Day()),
			weekdayName(ts.Weekday()),
			strconv.Itoa(ts.Hour()),
			strconv.Itoa(hour12(ts.Hour())),
			strconv.Itoa(ts.Minute()),
			strconv.Itoa(ts.Second()),
			maxDate,
			minDate,
		); err != nil {
			return nil, err
		}
	}

	return finalizeDim(out, startingID)
}
