package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCents_Float(t *testing.T) {
	cases := []struct {
		cents Cents
		want  float64
	}{
		{0, 0},
		{5000, 50},
		{123456, 1234.56},
		{99, 0.99},
		{-250, -2.5},
	}
	for _, tc := range cases {
		if got := tc.cents.Float(); got != tc.want {
			t.Fatalf("Cents(%d).Float() = %v, want %v", tc.cents, got, tc.want)
		}
	}
}

func TestCentsFromMajor_Rounds(t *testing.T) {
	cases := []struct {
		major string
		want  Cents
	}{
		{"50", 5000},
		{"1234.56", 123456},
		{"0.005", 1},
		{"0.004", 0},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.major)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.major, err)
		}
		if got := CentsFromMajor(d); got != tc.want {
			t.Fatalf("CentsFromMajor(%s) = %d, want %d", tc.major, got, tc.want)
		}
	}
}

func TestCents_Formatted(t *testing.T) {
	cases := []struct {
		cents Cents
		want  string
	}{
		{0, "R$0,00"},
		{5000, "R$50,00"},
		{123456, "R$1.234,56"},
		{100000000, "R$1.000.000,00"},
		{99, "R$0,99"},
		{-123456, "-R$1.234,56"},
	}
	for _, tc := range cases {
		if got := tc.cents.Formatted(); got != tc.want {
			t.Fatalf("Cents(%d).Formatted() = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	for _, s := range []OrderStatus{"", "paid", "PENDING"} {
		if s.Valid() {
			t.Fatalf("expected %q to be invalid", s)
		}
	}
}
