// Package sheet implements the linked computation sheet underlying every
// report: a store of named cells holding literal inputs or formulas, a
// dependency graph with deterministic evaluation order, and a report
// assembler exposing a flattened value table for rendering and export.
package sheet

import (
	"encoding/json"
	"fmt"
)

// Address is the unique logical name of a cell within one store.
type Address string

// Kind distinguishes editable literal cells from derived formula cells.
type Kind int

const (
	// KindLiteral marks a cell holding a directly editable input value.
	KindLiteral Kind = iota
	// KindFormula marks a cell whose value derives from other cells.
	KindFormula
)

func (k Kind) String() string {
	if k == KindLiteral {
		return "literal"
	}
	return "formula"
}

// FormatTag is a presentation hint; it never affects computed values.
type FormatTag string

const (
	FormatCurrency  FormatTag = "currency"  // $#,##0.00
	FormatCurrency4 FormatTag = "currency4" // $0.0000, for per-impression costs
	FormatPercent   FormatTag = "percent"   // 0.00%
	FormatInteger   FormatTag = "integer"   // #,##0
	FormatNumber    FormatTag = "number"    // 0.00
	FormatText      FormatTag = "text"
)

// Value is a computed or assigned cell result, numeric or text.
type Value struct {
	Number float64
	Text   string
	IsText bool
}

// NumberValue wraps a float64 as a cell value.
func NumberValue(f float64) Value {
	return Value{Number: f}
}

// TextValue wraps a string as a cell value.
func TextValue(s string) Value {
	return Value{Text: s, IsText: true}
}

// CoerceValue converts external input (config maps, JSON overrides) into a
// Value. Unsupported types surface ErrTypeMismatch at definition time
// rather than deferring to evaluation.
func CoerceValue(v interface{}) (Value, error) {
	switch x := v.(type) {
	case float64:
		return NumberValue(x), nil
	case float32:
		return NumberValue(float64(x)), nil
	case int:
		return NumberValue(float64(x)), nil
	case int64:
		return NumberValue(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("value %q: %w", x.String(), ErrTypeMismatch)
		}
		return NumberValue(f), nil
	case string:
		return TextValue(x), nil
	default:
		return Value{}, fmt.Errorf("value of type %T: %w", v, ErrTypeMismatch)
	}
}

// MarshalJSON renders numeric values as JSON numbers and text values as
// JSON strings, matching what external renderers expect of the table.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsText {
		return json.Marshal(v.Text)
	}
	return json.Marshal(v.Number)
}

// UnmarshalJSON accepts the same wire form MarshalJSON produces.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = NumberValue(f)
	return nil
}

// Cell is a single named unit of a report. Kind, expression, and format are
// fixed at creation; only the evaluator (or SetLiteral for literal cells)
// writes the value.
type Cell struct {
	Address Address
	Kind    Kind
	Format  FormatTag
	Expr    Expr // nil for literal cells

	value    Value
	hasValue bool
	order    int // definition order, the topological tie-break
}

// Value returns the cell's current value and whether one has been computed
// or assigned yet.
func (c *Cell) Value() (Value, bool) {
	return c.value, c.hasValue
}

// Store holds and addresses all cells of one report. A Store is owned by a
// single Report and is not safe for concurrent mutation; each session gets
// its own Report.
type Store struct {
	cells  map[Address]*Cell
	order  []*Cell
	sealed bool
	topo   []*Cell
}

// NewStore returns an empty cell store.
func NewStore() *Store {
	return &Store{cells: make(map[Address]*Cell)}
}

func (s *Store) define(addr Address, c *Cell) (*Cell, error) {
	if s.sealed {
		return nil, fmt.Errorf("cell %s: %w", addr, ErrSealed)
	}
	if _, exists := s.cells[addr]; exists {
		return nil, fmt.Errorf("cell %s: %w", addr, ErrDuplicateAddress)
	}
	c.Address = addr
	c.order = len(s.order)
	s.cells[addr] = c
	s.order = append(s.order, c)
	return c, nil
}

// DefineLiteral adds an editable input cell holding the given value.
func (s *Store) DefineLiteral(addr Address, v Value, format FormatTag) (*Cell, error) {
	return s.define(addr, &Cell{Kind: KindLiteral, Format: format, value: v, hasValue: true})
}

// DefineFormula adds a derived cell. Forward references are permitted; all
// references are validated when the store is sealed.
func (s *Store) DefineFormula(addr Address, expr Expr, format FormatTag) (*Cell, error) {
	if expr == nil {
		return nil, fmt.Errorf("cell %s: nil expression", addr)
	}
	return s.define(addr, &Cell{Kind: KindFormula, Format: format, Expr: expr})
}

// Get returns the cell at the given address.
func (s *Store) Get(addr Address) (*Cell, error) {
	c, ok := s.cells[addr]
	if !ok {
		return nil, fmt.Errorf("cell %s: %w", addr, ErrUnknownAddress)
	}
	return c, nil
}

// SetLiteral overwrites a literal cell's value, i.e. edits a yellow cell.
// Formula cells cannot be assigned.
func (s *Store) SetLiteral(addr Address, v Value) error {
	c, ok := s.cells[addr]
	if !ok {
		return fmt.Errorf("cell %s: %w", addr, ErrUnknownAddress)
	}
	if c.Kind != KindLiteral {
		return fmt.Errorf("cell %s: %w", addr, ErrNotLiteral)
	}
	c.value = v
	c.hasValue = true
	return nil
}

// Cells returns all cells in definition order.
func (s *Store) Cells() []*Cell {
	out := make([]*Cell, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of defined cells.
func (s *Store) Len() int {
	return len(s.order)
}
