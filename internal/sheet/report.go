package sheet

// Report groups the cells of one calculator into named, ordered sections
// and exposes the flattened display table consumed by every renderer. Each
// Report owns its Store outright; concurrent sessions each build their own.
type Report struct {
	Name     string
	store    *Store
	sections []*Section
	defErr   error
}

// Section is an ordered list of labeled cell entries within a report.
type Section struct {
	Name    string
	report  *Report
	entries []Entry
}

// Entry ties a cell address to its display label.
type Entry struct {
	Address Address
	Label   string
}

// Row is one line of the flattened display table.
type Row struct {
	Section string    `json:"section"`
	Address Address   `json:"address"`
	Label   string    `json:"label"`
	Value   Value     `json:"value"`
	Format  FormatTag `json:"format"`
}

// NewReport returns an empty report with its own cell store.
func NewReport(name string) *Report {
	return &Report{Name: name, store: NewStore()}
}

// Section appends a named section and returns it for cell definitions.
func (r *Report) Section(name string) *Section {
	sec := &Section{Name: name, report: r}
	r.sections = append(r.sections, sec)
	return sec
}

// Literal defines an editable input cell in this section. Definition
// errors are returned and also retained so template code can defer the
// check to Seal.
func (sec *Section) Literal(addr Address, label string, v Value, format FormatTag) error {
	if _, err := sec.report.store.DefineLiteral(addr, v, format); err != nil {
		sec.report.recordErr(err)
		return err
	}
	sec.entries = append(sec.entries, Entry{Address: addr, Label: label})
	return nil
}

// Number defines a numeric literal cell, the common case.
func (sec *Section) Number(addr Address, label string, f float64, format FormatTag) error {
	return sec.Literal(addr, label, NumberValue(f), format)
}

// Formula defines a derived cell in this section.
func (sec *Section) Formula(addr Address, label string, expr Expr, format FormatTag) error {
	if _, err := sec.report.store.DefineFormula(addr, expr, format); err != nil {
		sec.report.recordErr(err)
		return err
	}
	sec.entries = append(sec.entries, Entry{Address: addr, Label: label})
	return nil
}

func (r *Report) recordErr(err error) {
	if r.defErr == nil {
		r.defErr = err
	}
}

// Entries returns the section's entries in declared order.
func (sec *Section) Entries() []Entry {
	out := make([]Entry, len(sec.entries))
	copy(out, sec.entries)
	return out
}

// Sections returns the report's sections in declared order.
func (r *Report) Sections() []*Section {
	out := make([]*Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// Store exposes the underlying cell store, e.g. for the xlsx exporter.
func (r *Report) Store() *Store {
	return r.store
}

// Get returns the cell at the given address.
func (r *Report) Get(addr Address) (*Cell, error) {
	return r.store.Get(addr)
}

// Seal builds and validates the dependency graph. Must precede Evaluate.
// Any definition error retained during construction surfaces here first.
func (r *Report) Seal() error {
	if r.defErr != nil {
		return r.defErr
	}
	return r.store.Seal()
}

// Evaluate recomputes every cell in dependency order.
func (r *Report) Evaluate() error {
	return r.store.Evaluate()
}

// Flatten produces the display table in section and entry order.
func (r *Report) Flatten() []Row {
	var rows []Row
	for _, sec := range r.sections {
		for _, e := range sec.entries {
			c := r.store.cells[e.Address]
			v, _ := c.Value()
			rows = append(rows, Row{
				Section: sec.Name,
				Address: e.Address,
				Label:   e.Label,
				Value:   v,
				Format:  c.Format,
			})
		}
	}
	return rows
}

// Recompute applies literal overrides, re-runs the evaluator over the full
// graph, and returns the updated table. Store errors (unknown address,
// non-literal target) surface unchanged.
func (r *Report) Recompute(overrides map[Address]Value) ([]Row, error) {
	for addr, v := range overrides {
		if err := r.store.SetLiteral(addr, v); err != nil {
			return nil, err
		}
	}
	if err := r.store.Evaluate(); err != nil {
		return nil, err
	}
	return r.Flatten(), nil
}
