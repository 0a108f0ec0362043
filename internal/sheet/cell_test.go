package sheet

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDefineLiteralAndGet(t *testing.T) {
	s := NewStore()

	if _, err := s.DefineLiteral("budget", NumberValue(1000), FormatCurrency); err != nil {
		t.Fatalf("DefineLiteral() unexpected error: %v", err)
	}

	c, err := s.Get("budget")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if c.Kind != KindLiteral {
		t.Errorf("Get() kind = %v, expected literal", c.Kind)
	}
	v, ok := c.Value()
	if !ok {
		t.Fatal("literal cell should have a value immediately")
	}
	if v.Number != 1000 {
		t.Errorf("Value() = %v, expected 1000", v.Number)
	}
}

func TestDefineDuplicateAddress(t *testing.T) {
	s := NewStore()

	if _, err := s.DefineLiteral("budget", NumberValue(1000), FormatCurrency); err != nil {
		t.Fatalf("DefineLiteral() unexpected error: %v", err)
	}
	_, err := s.DefineFormula("budget", Num(1), FormatNumber)
	if !errors.Is(err, ErrDuplicateAddress) {
		t.Errorf("redefining address: error = %v, expected ErrDuplicateAddress", err)
	}
}

func TestGetUnknownAddress(t *testing.T) {
	s := NewStore()

	_, err := s.Get("missing")
	if !errors.Is(err, ErrUnknownAddress) {
		t.Errorf("Get(missing) error = %v, expected ErrUnknownAddress", err)
	}
}

func TestSetLiteral(t *testing.T) {
	s := NewStore()
	if _, err := s.DefineLiteral("rate", NumberValue(2.5), FormatPercent); err != nil {
		t.Fatalf("DefineLiteral() unexpected error: %v", err)
	}
	if _, err := s.DefineFormula("double", Mul(Ref("rate"), Num(2)), FormatNumber); err != nil {
		t.Fatalf("DefineFormula() unexpected error: %v", err)
	}

	if err := s.SetLiteral("rate", NumberValue(3.0)); err != nil {
		t.Errorf("SetLiteral(rate) unexpected error: %v", err)
	}

	err := s.SetLiteral("double", NumberValue(1))
	if !errors.Is(err, ErrNotLiteral) {
		t.Errorf("SetLiteral on formula cell: error = %v, expected ErrNotLiteral", err)
	}

	err = s.SetLiteral("missing", NumberValue(1))
	if !errors.Is(err, ErrUnknownAddress) {
		t.Errorf("SetLiteral on unknown cell: error = %v, expected ErrUnknownAddress", err)
	}
}

func TestDefineAfterSeal(t *testing.T) {
	s := NewStore()
	if _, err := s.DefineLiteral("budget", NumberValue(1000), FormatCurrency); err != nil {
		t.Fatalf("DefineLiteral() unexpected error: %v", err)
	}
	if err := s.Seal(); err != nil {
		t.Fatalf("Seal() unexpected error: %v", err)
	}

	_, err := s.DefineLiteral("late", NumberValue(1), FormatNumber)
	if !errors.Is(err, ErrSealed) {
		t.Errorf("define after seal: error = %v, expected ErrSealed", err)
	}
}

func TestDefineFormulaNilExpression(t *testing.T) {
	s := NewStore()
	if _, err := s.DefineFormula("broken", nil, FormatNumber); err == nil {
		t.Error("DefineFormula(nil) expected an error")
	}
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		expected  Value
		expectErr bool
	}{
		{name: "float64", input: 12.5, expected: NumberValue(12.5)},
		{name: "int", input: 7, expected: NumberValue(7)},
		{name: "int64", input: int64(9), expected: NumberValue(9)},
		{name: "json number", input: json.Number("3.25"), expected: NumberValue(3.25)},
		{name: "string", input: "Moderate", expected: TextValue("Moderate")},
		{name: "bool rejected", input: true, expectErr: true},
		{name: "slice rejected", input: []float64{1, 2}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := CoerceValue(tt.input)
			if tt.expectErr {
				if !errors.Is(err, ErrTypeMismatch) {
					t.Errorf("CoerceValue(%v) error = %v, expected ErrTypeMismatch", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CoerceValue(%v) unexpected error: %v", tt.input, err)
			}
			if v != tt.expected {
				t.Errorf("CoerceValue(%v) = %+v, expected %+v", tt.input, v, tt.expected)
			}
		})
	}
}

func TestValueMarshalJSON(t *testing.T) {
	num, err := json.Marshal(NumberValue(42.5))
	if err != nil {
		t.Fatalf("Marshal(number) unexpected error: %v", err)
	}
	if string(num) != "42.5" {
		t.Errorf("Marshal(number) = %s, expected 42.5", num)
	}

	text, err := json.Marshal(TextValue("Digital Ads"))
	if err != nil {
		t.Fatalf("Marshal(text) unexpected error: %v", err)
	}
	if string(text) != `"Digital Ads"` {
		t.Errorf("Marshal(text) = %s, expected \"Digital Ads\"", text)
	}
}

func TestCellsDefinitionOrder(t *testing.T) {
	s := NewStore()
	addrs := []Address{"c", "a", "b"}
	for _, addr := range addrs {
		if _, err := s.DefineLiteral(addr, NumberValue(1), FormatNumber); err != nil {
			t.Fatalf("DefineLiteral(%s) unexpected error: %v", addr, err)
		}
	}

	cells := s.Cells()
	if len(cells) != len(addrs) {
		t.Fatalf("Cells() returned %d cells, expected %d", len(cells), len(addrs))
	}
	for i, c := range cells {
		if c.Address != addrs[i] {
			t.Errorf("Cells()[%d] = %s, expected %s", i, c.Address, addrs[i])
		}
	}
}
