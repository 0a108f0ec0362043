package sheet

import "fmt"

// Evaluate computes a value for every cell in topological order. Literal
// cells keep their assigned values; formula cells are recomputed from
// already-resolved operands. Evaluation is idempotent: with unchanged
// literals, repeated runs produce identical values.
func (s *Store) Evaluate() error {
	if !s.sealed {
		return fmt.Errorf("evaluate: %w", ErrNotSealed)
	}

	get := func(addr Address) Value {
		// References were validated at seal time and ordered topologically,
		// so the referenced cell always has a value here.
		return s.cells[addr].value
	}

	for _, c := range s.topo {
		if c.Kind == KindLiteral {
			continue
		}
		c.value = c.Expr.eval(get)
		c.hasValue = true
	}
	return nil
}
