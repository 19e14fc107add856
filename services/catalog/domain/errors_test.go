package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrItemNotFound, ErrInvalidQuery, ErrCatalogUnavailable, ErrCatalogRejected, ErrSnapshotMissing}
	for i, a := range all {
		if a == nil {
			t.Fatalf("sentinel %d must not be nil", i)
		}
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinels %d and %d must be distinct", i, j)
			}
		}
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("load catalog: %w", ErrCatalogUnavailable)
	if !errors.Is(wrapped, ErrCatalogUnavailable) {
		t.Fatal("errors.Is must match wrapped ErrCatalogUnavailable")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidQuery, errors.New("min_price: not a number"))
	if !errors.Is(wrapped2, ErrInvalidQuery) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidQuery")
	}
}
