package cli

import (
	"testing"
	"time"
)

func TestResolveLocationDefaultsToLocal(t *testing.T) {
	t.Parallel()

	location, err := resolveLocation("  ")
	if err != nil {
		t.Fatalf("resolveLocation returned error: %v", err)
	}
	if location != time.Local {
		t.Fatalf("resolveLocation = %v, want time.Local", location)
	}
}

func TestResolveLocationNamedZone(t *testing.T) {
	t.Parallel()

	location, err := resolveLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("resolveLocation returned error: %v", err)
	}
	if location.String() != "Europe/Berlin" {
		t.Fatalf("resolveLocation = %q, want Europe/Berlin", location.String())
	}
}

func TestResolveLocationInvalidZone(t *testing.T) {
	t.Parallel()

	if _, err := resolveLocation("Nowhere/Land"); err == nil {
		t.Fatal("resolveLocation accepted an unknown timezone")
	}
}
