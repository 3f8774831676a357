// Package rulenames loads human-friendly display names for grammar rule
// identifiers from TOML data. A table pairs the fmt "%v" form of a rule with
// the text to show for it in error reports, and produces renderer functions
// that plug directly into rule renaming on a minnow error:
//
//	[rules]
//	ident  = "identifier"
//	number = "number literal"
package rulenames

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Table holds display names for grammar rules, keyed by the rule identifier's
// fmt "%v" form.
type Table struct {
	Rules map[string]string `toml:"rules"`
}

// Load reads a Table from TOML data.
func Load(data []byte) (Table, error) {
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse rule names: %w", err)
	}
	if t.Rules == nil {
		t.Rules = map[string]string{}
	}
	return t, nil
}

// LoadFile reads a Table from the TOML file at the given path.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read rule names file: %w", err)
	}
	t, err := Load(data)
	if err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Renderer returns a rule renderer backed by the table, suitable for passing
// to RenamedRules on a minnow error. A rule with no entry in the table falls
// back to its fmt "%v" form.
func Renderer[R comparable](t Table) func(R) string {
	return func(r R) string {
		key := fmt.Sprintf("%v", r)
		if name, ok := t.Rules[key]; ok {
			return name
		}
		return key
	}
}
