//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

package staging

import (
	"fmt"

	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/internal/table"
)

// InvoiceBuilder stages the raw invoice extract. One source row is one
// invoice line; the warehouse phase later aggregates lines per invoice.
type InvoiceBuilder struct {
	inputPath  string
	outputPath string
	data       *table.Table
}

// NewInvoiceBuilder creates a staging builder for the invoice extract.
func NewInvoiceBuilder(inputPath, outputPath string) *InvoiceBuilder {
	return &InvoiceBuilder{
		inputPath:  inputPath,
		outputPath: outputPath,
	}
}

// Name implements etl.Builder.
func (b *InvoiceBuilder) Name() string {
	return "staging.invoices"
}

// Extract implements etl.Builder.
func (b *InvoiceBuilder) Extract() error {
	t, err := table.ReadCSV(b.inputPath)
	if err != nil {
		return err
	}
	b.data = t
	return nil
}

// Transform implements etl.Builder.
func (b *InvoiceBuilder) Transform() error {
	df := b.data.Clone()

	renames := map[string]string{
		"ID":         "invoice_id",
		"Fecha":      "invoice_date",
		"ClienteID":  "client_id",
		"ProductoID": "product_id",
		"Cantidad":   "product_quantity",
		"Total":      "total_invoice",
		"Moneda":     "currency_type",
	}
	for from, to := range renames {
		if err := df.Rename(from, to); err != nil {
			return fmt.Errorf("staging invoices: %w", err)
		}
	}

	out, err := df.Select(
		"invoice_id", "invoice_date", "client_id", "product_id",
		"product_quantity", "total_invoice", "currency_type",
	)
	if err != nil {
		return fmt.Errorf("staging invoices: %w", err)
	}
	b.data = out
	return nil
}

// Load implements etl.Builder.
func (b *InvoiceBuilder) Load() error {
	if err := table.WriteCSV(b.data, b.outputPath); err != nil {
		return err
	}
	logging.Info().
		Str("builder", b.Name()).
		Int("rows", b.data.Len()).
		Str("path", b.outputPath).
		Msg("Staged table written")
	return nil
}
