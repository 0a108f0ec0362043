package sheet

import (
	"errors"
	"math"
	"testing"
)

func buildFunnelReport(t *testing.T) *Report {
	t.Helper()
	r := NewReport("Funnel")

	setup := r.Section("Setup")
	if err := setup.Number("budget", "Budget", 1000, FormatCurrency); err != nil {
		t.Fatalf("Number(budget) unexpected error: %v", err)
	}
	if err := setup.Number("cpm", "CPM", 10, FormatCurrency); err != nil {
		t.Fatalf("Number(cpm) unexpected error: %v", err)
	}

	results := r.Section("Results")
	if err := results.Formula("impressions",
		"Impressions",
		Trunc(Mul(If(Eq(Ref("cpm"), Num(0)), Num(0), Div(Ref("budget"), Ref("cpm"))), Num(1000))),
		FormatInteger); err != nil {
		t.Fatalf("Formula(impressions) unexpected error: %v", err)
	}
	return r
}

func TestReportFlattenOrder(t *testing.T) {
	r := buildFunnelReport(t)
	if err := r.Seal(); err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}
	if err := r.Evaluate(); err != nil {
		t.Fatalf("Evaluate() unexpected error: %v", err)
	}

	rows := r.Flatten()
	expected := []struct {
		section string
		address Address
		value   float64
	}{
		{"Setup", "budget", 1000},
		{"Setup", "cpm", 10},
		{"Results", "impressions", 100000},
	}
	if len(rows) != len(expected) {
		t.Fatalf("Flatten() returned %d rows, expected %d", len(rows), len(expected))
	}
	for i, e := range expected {
		if rows[i].Section != e.section || rows[i].Address != e.address {
			t.Errorf("row %d = %s/%s, expected %s/%s",
				i, rows[i].Section, rows[i].Address, e.section, e.address)
		}
		if math.Abs(rows[i].Value.Number-e.value) > 1e-9 {
			t.Errorf("row %d value = %v, expected %v", i, rows[i].Value.Number, e.value)
		}
	}
}

func TestReportRecompute(t *testing.T) {
	r := buildFunnelReport(t)
	if err := r.Seal(); err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}
	if err := r.Evaluate(); err != nil {
		t.Fatalf("Evaluate() unexpected error: %v", err)
	}

	rows, err := r.Recompute(map[Address]Value{"budget": NumberValue(2000)})
	if err != nil {
		t.Fatalf("Recompute() unexpected error: %v", err)
	}
	found := false
	for _, row := range rows {
		if row.Address == "impressions" {
			found = true
			if row.Value.Number != 200000 {
				t.Errorf("impressions after recompute = %v, expected 200000", row.Value.Number)
			}
		}
	}
	if !found {
		t.Error("Recompute() output is missing the impressions row")
	}
}

func TestReportRecomputeErrors(t *testing.T) {
	r := buildFunnelReport(t)
	if err := r.Seal(); err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}
	if err := r.Evaluate(); err != nil {
		t.Fatalf("Evaluate() unexpected error: %v", err)
	}

	_, err := r.Recompute(map[Address]Value{"missing": NumberValue(1)})
	if !errors.Is(err, ErrUnknownAddress) {
		t.Errorf("Recompute(missing) error = %v, expected ErrUnknownAddress", err)
	}

	_, err = r.Recompute(map[Address]Value{"impressions": NumberValue(1)})
	if !errors.Is(err, ErrNotLiteral) {
		t.Errorf("Recompute(formula cell) error = %v, expected ErrNotLiteral", err)
	}
}

func TestReportSealSurfacesDefinitionError(t *testing.T) {
	r := NewReport("Broken")
	sec := r.Section("Setup")
	if err := sec.Number("budget", "Budget", 1000, FormatCurrency); err != nil {
		t.Fatalf("Number() unexpected error: %v", err)
	}
	// Duplicate definition is retained and surfaces at Seal.
	if err := sec.Number("budget", "Budget Again", 2000, FormatCurrency); err == nil {
		t.Fatal("duplicate Number() expected an error")
	}

	if err := r.Seal(); !errors.Is(err, ErrDuplicateAddress) {
		t.Errorf("Seal() error = %v, expected ErrDuplicateAddress", err)
	}
}

func TestReportSections(t *testing.T) {
	r := buildFunnelReport(t)
	sections := r.Sections()
	if len(sections) != 2 {
		t.Fatalf("Sections() returned %d, expected 2", len(sections))
	}
	if sections[0].Name != "Setup" || sections[1].Name != "Results" {
		t.Errorf("Sections() = %s, %s; expected Setup, Results", sections[0].Name, sections[1].Name)
	}
	if entries := sections[0].Entries(); len(entries) != 2 || entries[0].Address != "budget" {
		t.Errorf("Setup entries = %+v, expected budget then cpm", entries)
	}
}
