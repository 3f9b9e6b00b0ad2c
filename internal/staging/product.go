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

// ProductBuilder stages the raw product extract: English column names and
// a cleaned category field.
type ProductBuilder struct {
	inputPath  string
	outputPath string
	data       *table.Table
}

// NewProductBuilder creates a staging builder for the product extract.
func NewProductBuilder(inputPath, outputPath string) *ProductBuilder {
	return &ProductBuilder{
		inputPath:  inputPath,
		outputPath: outputPath,
	}
}

// Name implements etl.Builder.
func (b *ProductBuilder) Name() string {
	return "staging.products"
}

// Extract implements etl.Builder.
func (b *ProductBuilder) Extract() error {
	t, err := table.ReadCSV(b.inputPath)
	if err != nil {
		return err
	}
	b.data = t
	return nil
}

// Transform implements etl.Builder.
func (b *ProductBuilder) Transform() error {
	df := b.data.Clone()

	renames := map[string]string{
		"ID":        "product_id",
		"Nombre":    "name",
		"Precio":    "price",
		"Categoria": "category",
		"Moneda":    "currency_type",
	}
	for from, to := range renames {
		if err := df.Rename(from, to); err != nil {
			return fmt.Errorf("staging products: %w", err)
		}
	}

	if err := df.Apply("category", Normalize); err != nil {
		return err
	}

	out, err := df.Select("product_id", "name", "price", "category", "currency_type")
	if err != nil {
		return fmt.Errorf("staging products: %w", err)
	}
	b.data = out
	return nil
}

// Load implements etl.Builder.
func (b *ProductBuilder) Load() error {
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
