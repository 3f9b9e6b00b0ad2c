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
	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/internal/table"
)

// paymentCatalog is the fixed payment method seed set. No input file
// exists for this dimension.
var paymentCatalog = []struct {
	id          string
	method      string
	description string
}{
	{"1111", "Visa", "Visa credit or debit card"},
	{"2222", "Cash", "Cash payment"},
	{"3333", "Bank Transfer", "Direct bank transfer"},
	{"4444", "Check", "Payment by check"},
}

// PaymentMethodDimBuilder builds the payment method dimension from the
// fixed catalog. It never reads an input path.
type PaymentMethodDimBuilder struct {
	outputPath string
	startingID int
	data       *table.Table
}

// NewPaymentMethodDimBuilder creates a payment method dimension builder.
func NewPaymentMethodDimBuilder(outputPath string, startingID int) *PaymentMethodDimBuilder {
	return &PaymentMethodDimBuilder{
		outputPath: outputPath,
		startingID: startingID,
	}
}

// Name implements etl.Builder.
func (b *PaymentMethodDimBuilder) Name() string {
	return "warehouse.payment_method_dim"
}

// Extract materializes the seed catalog instead of reading a file.
func (b *PaymentMethodDimBuilder) Extract() error {
	t := table.New("payment_method_id", "method", "description")
	for _, m := range paymentCatalog {
		if err := t.AppendRow(m.id, m.method, m.description); err != nil {
			return err
		}
	}
	b.data = t
	return nil
}

// Transform implements etl.Builder.
func (b *PaymentMethodDimBuilder) Transform() error {
	out, err := finalizeDim(b.data.Clone(), b.startingID)
	if err != nil {
		return err
	}
	b.data = out
	return nil
}

// Load implements etl.Builder.
func (b *PaymentMethodDimBuilder) Load() error {
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
