package chartab

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed tables.cue
var tablesCUE []byte

// Registry holds character tables keyed by (family, n).
type Registry struct {
	tables map[tableKey]Table
	keys   []tableKey // registration order, for deterministic listing
}

type tableKey struct {
	family string
	n      int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[tableKey]Table)}
}

// Register validates a table and adds it to the registry. Registering
// a (family, n) twice fails with ErrCodeDuplicateTable.
func (r *Registry) Register(t Table) error {
	if err := t.Validate(); err != nil {
		return err
	}
	key := tableKey{family: t.Family, n: t.N}
	if _, ok := r.tables[key]; ok {
		return &TableError{
			Code:    ErrCodeDuplicateTable,
			Message: "table is already registered",
			Group:   t.Name(),
		}
	}
	r.tables[key] = t.clone()
	r.keys = append(r.keys, key)
	return nil
}

// Lookup returns the table for (family, n), or ErrCodeUnsupportedGroup.
func (r *Registry) Lookup(family string, n int) (Table, error) {
	t, ok := r.tables[tableKey{family: family, n: n}]
	if !ok {
		return Table{}, &TableError{
			Code:    ErrCodeUnsupportedGroup,
			Message: "unsupported point group",
			Group:   DisplayName(family, n),
		}
	}
	return t.clone(), nil
}

// LookupName parses a group name and returns its table. The order
// parameter is used only when the name is a plain family tag.
func (r *Registry) LookupName(name string, order int) (Table, error) {
	family, n, err := ParseName(name, order)
	if err != nil {
		return Table{}, err
	}
	return r.Lookup(family, n)
}

// Groups returns all registered tables in registration order.
func (r *Registry) Groups() []Table {
	out := make([]Table, 0, len(r.keys))
	for _, key := range r.keys {
		out = append(out, r.tables[key].clone())
	}
	return out
}

// Clone returns an independent copy of the registry, so callers can
// register extra tables without touching the shared default.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for _, key := range r.keys {
		t := r.tables[key]
		out.tables[key] = t.clone()
		out.keys = append(out.keys, key)
	}
	return out
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry of built-in tables. The embedded CUE
// document is compiled and validated on first use; a failure there is
// a defect in the shipped data and panics.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := loadBuiltins()
		if err != nil {
			panic(fmt.Sprintf("chartab: embedded tables are invalid: %v", err))
		}
		defaultReg = reg
	})
	return defaultReg
}

// loadBuiltins compiles tables.cue, checks it against its own #Table
// schema, and decodes the result into a registry.
func loadBuiltins() (*Registry, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(tablesCUE, cue.Filename("tables.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compiling tables.cue: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validating tables.cue: %w", err)
	}

	var doc struct {
		Tables []Table `json:"tables"`
	}
	if err := v.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding tables.cue: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("tables.cue holds no tables")
	}

	reg := NewRegistry()
	for _, t := range doc.Tables {
		if err := reg.Register(t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
