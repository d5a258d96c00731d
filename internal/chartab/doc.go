// Package chartab supplies point-group character tables.
//
// Built-in tables ship as an embedded CUE document (tables.cue) that
// carries both the schema and the data; user-supplied tables can be
// registered from YAML. A table is identified by (family, n), where the
// family is the group name with the rotation order replaced by the
// placeholder "n" (D6h -> family "dnh", n 6). The package holds no
// mutable state: a Registry is built once and read thereafter.
package chartab
