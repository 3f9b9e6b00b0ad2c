//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

// Package datagen produces the synthetic values the pipeline stamps onto
// staged and warehouse rows: mock contact fields and pseudo-random
// payment method assignment.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	digits          = "0123456789"
	letters         = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lettersLower    = "abcdefghijklmnopqrstuvwxyz"
	phoneCountryPfx = "+52"
)

// PaymentMethodIDs are the natural keys of the fixed payment method
// catalog. Assignment is uniform and independent per invoice line.
var PaymentMethodIDs = []int{1111, 2222, 3333, 4444}

// Faker provides fake data generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// MockPhone returns a mock phone number similar to the Mexican format:
// "+52" followed by 10 digits drawn without replacement, so the suffix
// never repeats a digit. The distinct-digit draw is kept for
// compatibility with the upstream extracts.
func (f *Faker) MockPhone() string {
	return phoneCountryPfx + f.sample(digits, 10)
}

// MockEmail returns a mock email address: ten distinct letters, "@", six
// distinct lowercase letters, ".com".
func (f *Faker) MockEmail() string {
	return f.sample(letters, 10) + "@" + f.sample(lettersLower, 6) + ".com"
}

// PaymentMethodID picks one of the catalog's natural keys uniformly at
// random.
func (f *Faker) PaymentMethodID() int {
	return Choose(f, PaymentMethodIDs)
}

// sample draws n distinct characters from alphabet, in random order
// (partial Fisher-Yates).
func (f *Faker) sample(alphabet string, n int) string {
	pool := []byte(alphabet)
	for i := 0; i < n; i++ {
		j := f.Int(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return string(pool[:n])
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}
