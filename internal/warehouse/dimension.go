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
	"time"

	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/internal/table"
)

// finalizeDim stamps the audit timestamp columns onto every row and
// assigns surrogate ids from startingID. Both timestamps hold the same
// build time for all rows of one invocation.
func finalizeDim(df *table.Table, startingID int) (*table.Table, error) {
	stamp := time.Now().Format(stampLayout)
	df.AddConst("ingestion_date", stamp)
	df.AddConst("last_modified_date", stamp)
	return table.InsertIDs(df, startingID)
}

// CustomerDimBuilder builds the customer dimension from the staged
// customer table. No rows are filtered or deduplicated; one staged row
// yields exactly one dimension row.
type CustomerDimBuilder struct {
	inputPath  string
	outputPath string
	startingID int
	data       *table.Table
}

// NewCustomerDimBuilder creates a customer dimension builder.
func NewCustomerDimBuilder(inputPath, outputPath string, startingID int) *CustomerDimBuilder {
	return &CustomerDimBuilder{
		inputPath:  inputPath,
		outputPath: outputPath,
		startingID: startingID,
	}
}

// Name implements etl.Builder.
func (b *CustomerDimBuilder) Name() string {
	return "warehouse.customers_dim"
}

// Extract implements etl.Builder.
func (b *CustomerDimBuilder) Extract() error {
	t, err := table.ReadCSV(b.inputPath)
	if err != nil {
		return err
	}
	b.data = t
	return nil
}

// Transform implements etl.Builder.
func (b *CustomerDimBuilder) Transform() error {
	out, err := finalizeDim(b.data.Clone(), b.startingID)
	if err != nil {
		return err
	}
	b.data = out
	return nil
}

// Load implements etl.Builder.
func (b *CustomerDimBuilder) Load() error {
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

// ProductDimBuilder builds the product dimension from the staged product
// table.
type ProductDimBuilder struct {
	inputPath  string
	outputPath string
	startingID int
	data       *table.Table
}

// NewProductDimBuilder creates a product dimension builder.
func NewProductDimBuilder(inputPath, outputPath string, startingID int) *ProductDimBuilder {
	return &ProductDimBuilder{
		inputPath:  inputPath,
		outputPath: outputPath,
		startingID: startingID,
	}
}

// Name implements etl.Builder.
func (b *ProductDimBuilder) Name() string {
	return "warehouse.products_dim"
}

// Extract implements etl.Builder.
func (b *ProductDimBuilder) Extract() error {
	t, err := table.ReadCSV(b.inputPath)
	if err != nil {
		return err
	}
	b.data = t
	return nil
}

// Transform implements etl.Builder.
func (b *ProductDimBuilder) Transform() error {
	out, err := finalizeDim(b.data.Clone(), b.startingID)
	if err != nil {
		return err
	}
	b.data = out
	return nil
}

// Load implements etl.Builder.
func (b *ProductDimBuilder) Load() error {
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
