package sheet

import "fmt"

// Seal validates every formula reference, builds the dependency graph, and
// fixes the evaluation order. After Seal no further cells can be defined.
// An unknown reference or a cycle is fatal; no partial evaluation order is
// retained.
func (s *Store) Seal() error {
	if s.sealed {
		return nil
	}

	// Collect deduplicated dependencies per formula cell, validating that
	// every reference resolves. Forward references are legal up to here.
	deps := make(map[Address][]Address, len(s.order))
	for _, c := range s.order {
		if c.Kind != KindFormula {
			continue
		}
		seen := make(map[Address]struct{})
		var refErr error
		c.Expr.walkRefs(func(addr Address) {
			if refErr != nil {
				return
			}
			if _, ok := s.cells[addr]; !ok {
				refErr = fmt.Errorf("cell %s references %s: %w", c.Address, addr, ErrUnknownReference)
				return
			}
			if _, dup := seen[addr]; dup {
				return
			}
			seen[addr] = struct{}{}
			deps[c.Address] = append(deps[c.Address], addr)
		})
		if refErr != nil {
			return refErr
		}
	}

	order, err := s.topoSort(deps)
	if err != nil {
		return err
	}

	s.topo = order
	s.sealed = true
	return nil
}

// topoSort runs Kahn's algorithm over the reference graph. Cells whose
// relative order is unconstrained come out in definition order, which keeps
// evaluation and output byte-stable across runs.
func (s *Store) topoSort(deps map[Address][]Address) ([]*Cell, error) {
	indegree := make(map[Address]int, len(s.order))
	dependents := make(map[Address][]Address, len(s.order))
	for addr, ds := range deps {
		indegree[addr] = len(ds)
		for _, d := range ds {
			dependents[d] = append(dependents[d], addr)
		}
	}

	done := make(map[Address]bool, len(s.order))
	order := make([]*Cell, 0, len(s.order))
	for len(order) < len(s.order) {
		// Pick the earliest-defined ready cell. The graphs here are tens of
		// cells, so a linear scan per step is plenty.
		var next *Cell
		for _, c := range s.order {
			if !done[c.Address] && indegree[c.Address] == 0 {
				next = c
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("cell %s: %w", s.cellOnCycle(indegree, done), ErrCyclicDependency)
		}
		done[next.Address] = true
		order = append(order, next)
		for _, dep := range dependents[next.Address] {
			indegree[dep]--
		}
	}
	return order, nil
}

// cellOnCycle names one cell that sits on a dependency cycle. Every
// unprocessed cell has at least one unprocessed dependency, so following
// those edges must revisit a cell; that cell is on the cycle.
func (s *Store) cellOnCycle(indegree map[Address]int, done map[Address]bool) Address {
	var start *Cell
	for _, c := range s.order {
		if !done[c.Address] && indegree[c.Address] > 0 {
			start = c
			break
		}
	}
	if start == nil {
		return ""
	}

	visited := make(map[Address]bool)
	cur := start
	for !visited[cur.Address] {
		visited[cur.Address] = true
		var next *Cell
		cur.Expr.walkRefs(func(addr Address) {
			if next != nil || done[addr] {
				return
			}
			if c, ok := s.cells[addr]; ok && c.Kind == KindFormula {
				next = c
			}
		})
		if next == nil {
			break
		}
		cur = next
	}
	return cur.Address
}

// Sealed reports whether the store's graph has been built.
func (s *Store) Sealed() bool {
	return s.sealed
}

// EvalOrder returns the fixed evaluation order. It is empty until Seal.
func (s *Store) EvalOrder() []*Cell {
	out := make([]*Cell, len(s.topo))
	copy(out, s.topo)
	return out
}
