package chartab

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDoc is the document shape accepted by LoadYAML:
//
//	tables:
//	  - family: dnh
//	    n: 8
//	    order: 32
//	    class_sizes: [1, 2, ...]
//	    rows:
//	      - symbol: a1g
//	        chars: [1, 1, ...]
//	      - symbol: e1g
//	        chars: [2, ...]
//	        degenerate: true
type yamlDoc struct {
	Tables []Table `yaml:"tables"`
}

// LoadYAML decodes user-supplied character tables. Every table is
// validated with the same invariants as the built-ins; the first
// violation aborts the load.
func LoadYAML(r io.Reader) ([]Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding tables: %w", err)
	}
	if len(doc.Tables) == 0 {
		return nil, &TableError{
			Code:    ErrCodeInvalidTable,
			Message: "document holds no tables",
		}
	}
	for _, t := range doc.Tables {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return doc.Tables, nil
}
