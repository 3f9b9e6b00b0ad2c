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

	"github.com/martgen/martgen/internal/datagen"
	"github.com/martgen/martgen/internal/logging"
	"github.com/martgen/martgen/internal/table"
)

// DimPaths locates the persisted dimension tables the fact build joins
// against. The fact build reads them back from disk, which is why it must
// run after every dimension build has completed and been written.
type DimPaths struct {
	Time          string
	Customer      string
	Product       string
	PaymentMethod string
}

// InvoiceFactBuilder builds the invoice fact table: resolves surrogate
// foreign keys against the four dimensions, aggregates line totals into
// per-invoice totals, and assigns a payment method to every line.
type InvoiceFactBuilder struct {
	inputPath  string
	outputPath string
	dims       DimPaths
	startingID int
	faker      *datagen.Faker
	data       *table.Table
}

// NewInvoiceFactBuilder creates an invoice fact builder.
func NewInvoiceFactBuilder(inputPath, outputPath string, dims DimPaths, startingID int, faker *datagen.Faker) *InvoiceFactBuilder {
	return &InvoiceFactBuilder{
		inputPath:  inputPath,
		outputPath: outputPath,
		dims:       dims,
		startingID: startingID,
		faker:      faker,
	}
}

// Name implements etl.Builder.
func (b *InvoiceFactBuilder) Name() string {
	return "warehouse.fact_invoices"
}

// Extract implements etl.Builder.
func (b *InvoiceFactBuilder) Extract() error {
	t, err := table.ReadCSV(b.inputPath)
	if err != nil {
		return err
	}
	b.data = t
	return nil
}

// Transform implements etl.Builder.
func (b *InvoiceFactBuilder) Transform() error {
	df := b.data.Clone()

	// Invoice dates carry only the day; normalize them to midnight
	// timestamps so they match the time dimension's date key.
	dateIdx := df.ColumnIndex("invoice_date")
	if dateIdx < 0 {
		return fmt.Errorf("fact invoices: staged table has no invoice_date column")
	}
	for i, row := range df.Rows {
		ts, err := time.Parse(dateLayout, row[dateIdx])
		if err != nil {
			return fmt.Errorf("fact invoices: row %d: parsing invoice_date %q: %w", i, row[dateIdx], err)
		}
		row[dateIdx] = ts.Format(stampLayout)
	}

	// The extracts carry no payment method; assign one at random. The
	// draw is per line, not per invoice, so a multi-line invoice may mix
	// methods.
	df.AddFunc("payment_method_id", func(int) string {
		return strconv.Itoa(b.faker.PaymentMethodID())
	})

	// The staged total is per line. Sum the lines of each invoice and
	// broadcast the result back onto every line of that invoice.
	if err := df.Rename("total_invoice", "total_per_product"); err != nil {
		return fmt.Errorf("fact invoices: %w", err)
	}
	sums, err := df.SumBy("invoice_id", "total_per_product")
	if err != nil {
		return fmt.Errorf("fact invoices: %w", err)
	}
	invoiceIdx := df.ColumnIndex("invoice_id")
	df.AddFunc("total_invoice", func(row int) string {
		return sums[df.Rows[row][invoiceIdx]].String()
	})

	// Resolve surrogate keys with left joins against the persisted
	// dimensions. Unmatched keys stay empty; no rows are dropped.
	df, err = b.joinTimeDim(df)
	if err != nil {
		return err
	}
	df, err = b.joinDim(df, b.dims.Customer, "customer_dim_id", "customer_id", "client_id")
	if err != nil {
		return err
	}
	df, err = b.joinDim(df, b.dims.Product, "product_dim_id", "product_id", "")
	if err != nil {
		return err
	}
	df, err = b.joinDim(df, b.dims.PaymentMethod, "payment_method_dim_id", "payment_method_id", "")
	if err != nil {
		return err
	}

	out, err := finalizeDim(df, b.startingID)
	if err != nil {
		return err
	}

	out, err = out.Select(
		"id", "invoice_id",
		"time_dim_id", "customer_dim_id", "product_dim_id", "payment_method_dim_id",
		"product_quantity", "total_per_product", "total_invoice", "currency_type",
		"ingestion_date", "last_modified_date",
	)
	if err != nil {
		return fmt.Errorf("fact invoices: %w", err)
	}

	finalNames := map[string]string{
		"time_dim_id":           "time_id",
		"customer_dim_id":       "customer_id",
		"product_dim_id":        "product_id",
		"payment_method_dim_id": "payment_method_id",
	}
	for from, to := range finalNames {
		if err := out.Rename(from, to); err != nil {
			return fmt.Errorf("fact invoices: %w", err)
		}
	}

	b.data = out
	return nil
}

// Load implements etl.Builder.
func (b *InvoiceFactBuilder) Load() error {
	if err := table.WriteCSV(b.data, b.outputPath); err != nil {
		return err
	}
	logging.Info().
		Str("builder", b.Name()).
		Int("rows", b.data.Len()).
		Str("path", b.outputPath).
		Msg("Fact table written")
	return nil
}

// joinTimeDim resolves time surrogate keys. Invoice dates have day
// granularity, so only the dimension's midnight rows can match; the rest
// are skipped up front to keep the join index small.
func (b *InvoiceFactBuilder) joinTimeDim(df *table.Table) (*table.Table, error) {
	dim, err := table.ReadCSV(b.dims.Time)
	if err != nil {
		return nil, fmt.Errorf("fact invoices: reading time dimension: %w", err)
	}

	midnight := dim.Filter(func(row int) bool {
		h, _ := dim.Get(row, "hour_24")
		m, _ := dim.Get(row, "minutes")
		s, _ := dim.Get(row, "seconds")
		return h == "0" && m == "0" && s == "0"
	})

	keys, err := midnight.Select("id", "date")
	if err != nil {
		return nil, fmt.Errorf("fact invoices: time dimension: %w", err)
	}
	if err := keys.Rename("id", "time_dim_id"); err != nil {
		return nil, err
	}
	if err := keys.Rename("date", "invoice_date"); err != nil {
		return nil, err
	}

	joined, err := table.LeftJoin(df, keys, "invoice_date")
	if err != nil {
		return nil, fmt.Errorf("fact invoices: joining time dimension: %w", err)
	}
	return joined, nil
}

// joinDim resolves one dimension's surrogate keys: it reads the persisted
// dimension, keeps only its id and natural key, renames them to idAlias
// and keyAlias (when the fact side uses a different name), and left-joins
// on the resulting key column.
func (b *InvoiceFactBuilder) joinDim(df *table.Table, path, idAlias, naturalKey, keyAlias string) (*table.Table, error) {
	dim, err := table.ReadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("fact invoices: reading dimension %s: %w", path, err)
	}

	keys, err := dim.Select("id", naturalKey)
	if err != nil {
		return nil, fmt.Errorf("fact invoices: dimension %s: %w", path, err)
	}
	if err := keys.Rename("id", idAlias); err != nil {
		return nil, err
	}
	joinKey := naturalKey
	if keyAlias != "" {
		if err := keys.Rename(naturalKey, keyAlias); err != nil {
			return nil, err
		}
		joinKey = keyAlias
	}

	joined, err := table.LeftJoin(df, keys, joinKey)
	if err != nil {
		return nil, fmt.Errorf("fact invoices: joining on %s: %w", joinKey, err)
	}
	return joined, nil
}
