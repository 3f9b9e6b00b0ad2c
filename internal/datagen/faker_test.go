//-------------------------------------------------------------------------
//
// martgen - star-schema warehouse builder
//
// Copyright (c) 2025 - 2026, the martgen authors
// This software is released under The MIT License
//
//-------------------------------------------------------------------------

package datagen

import (
	"strings"
	"testing"
)

func TestNewFakerWithSeed(t *testing.T) {
	seed := uint64(12345)
	f1 := NewFakerWithSeed(seed)
	f2 := NewFakerWithSeed(seed)

	// Same seed should produce same sequence
	for i := 0; i < 10; i++ {
		v1 := f1.MockPhone()
		v2 := f2.MockPhone()
		if v1 != v2 {
			t.Errorf("Same seed produced different values: %s != %s", v1, v2)
		}
	}
}

func assertDistinct(t *testing.T, s, label string) {
	t.Helper()
	seen := make(map[rune]bool)
	for _, r := range s {
		if seen[r] {
			t.Errorf("%s has repeated character %q in %q", label, r, s)
		}
		seen[r] = true
	}
}

func TestMockPhoneFormat(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 50; i++ {
		phone := f.MockPhone()
		if !strings.HasPrefix(phone, "+52") {
			t.Fatalf("phone %q does not start with +52", phone)
		}
		suffix := strings.TrimPrefix(phone, "+52")
		if len(suffix) != 10 {
			t.Fatalf("phone suffix %q is not 10 digits", suffix)
		}
		for _, r := range suffix {
			if r < '0' || r > '9' {
				t.Fatalf("phone suffix %q has non-digit %q", suffix, r)
			}
		}
		assertDistinct(t, suffix, "phone suffix")
	}
}

func TestMockEmailFormat(t *testing.T) {
	f := NewFaker()
	for i := 0; i < 50; i++ {
		email := f.MockEmail()
		if !strings.HasSuffix(email, ".com") {
			t.Fatalf("email %q does not end in .com", email)
		}
		at := strings.IndexByte(email, '@')
		if at < 0 {
			t.Fatalf("email %q has no @", email)
		}
		local := email[:at]
		domain := strings.TrimSuffix(email[at+1:], ".com")
		if len(local) != 10 {
			t.Errorf("email local part %q is not 10 characters", local)
		}
		if len(domain) != 6 {
			t.Errorf("email domain %q is not 6 characters", domain)
		}
		if strings.ToLower(domain) != domain {
			t.Errorf("email domain %q is not lowercase", domain)
		}
		assertDistinct(t, local, "email local part")
		assertDistinct(t, domain, "email domain")
	}
}

func TestPaymentMethodIDInCatalog(t *testing.T) {
	f := NewFaker()
	valid := map[int]bool{1111: true, 2222: true, 3333: true, 4444: true}
	for i := 0; i < 100; i++ {
		id := f.PaymentMethodID()
		if !valid[id] {
			t.Fatalf("payment method id %d not in catalog", id)
		}
	}
}

func TestPaymentMethodIDCoversCatalog(t *testing.T) {
	f := NewFakerWithSeed(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		seen[f.PaymentMethodID()] = true
	}
	for _, id := range PaymentMethodIDs {
		if !seen[id] {
			t.Errorf("payment method id %d never drawn in 1000 tries", id)
		}
	}
}

func TestChoose(t *testing.T) {
	f := NewFaker()
	items := []string{"a", "b", "c"}
	for i := 0; i < 20; i++ {
		got := Choose(f, items)
		if got != "a" && got != "b" && got != "c" {
			t.Fatalf("Choose returned %q", got)
		}
	}

	var empty []int
	if got := Choose(f, empty); got != 0 {
		t.Errorf("Choose on empty slice = %d, want zero value", got)
	}
}
