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

	"github.com/martgen/martgen/internal/datagen"
	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/internal/table"
)

// CustomerBuilder stages the raw customer extract: renames the source
// columns to English, strips diacritics from the display fields, and
// fills the contact fields the extract does not carry with synthetic
// values.
type CustomerBuilder struct {
	inputPath  string
	outputPath string
	faker      *datagen.Faker
	data       *table.Table
}

// NewCustomerBuilder creates a staging builder for the customer extract.
func NewCustomerBuilder(inputPath, outputPath string, faker *datagen.Faker) *CustomerBuilder {
	return &CustomerBuilder{
		inputPath:  inputPath,
		outputPath: outputPath,
		faker:      faker,
	}
}

// Name implements etl.Builder.
func (b *CustomerBuilder) Name() string {
	return "staging.customers"
}

// Extract implements etl.Builder.
func (b *CustomerBuilder) Extract() error {
	t, err := table.ReadCSV(b.inputPath)
	if err != nil {
		return err
	}
	b.data = t
	return nil
}

// Transform implements etl.Builder.
func (b *CustomerBuilder) Transform() error {
	df := b.data.Clone()

	renames := map[string]string{
		"ID":        "customer_id",
		"Nombre":    "name",
		"Ubicacion": "location_name",
		"Segmento":  "segment_name",
	}
	for from, to := range renames {
		if err := df.Rename(from, to); err != nil {
			return fmt.Errorf("staging customers: %w", err)
		}
	}

	if err := df.Apply("name", Normalize); err != nil {
		return err
	}
	if err := df.Apply("location_name", Normalize); err != nil {
		return err
	}

	// The raw extract has no contact data; simulate it.
	df.AddFunc("phone_number", func(int) string { return b.faker.MockPhone() })
	df.AddFunc("email", func(int) string { return b.faker.MockEmail() })

	out, err := df.Select(
		"customer_id", "name", "location_name",
		"segment_name", "phone_number", "email",
	)
	if err != nil {
		return fmt.Errorf("staging customers: %w", err)
	}
	b.data = out
	return nil
}

// Load implements etl.Builder.
func (b *CustomerBuilder) Load() error {
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
