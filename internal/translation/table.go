package translation

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"mlstdb/internal/failures"
)

const component = "translation"

// DefaultPath is the relative location of the translation table. When no file
// exists there the bundled copy is used instead.
const DefaultPath = "files/dictionary_correct_species.yaml"

// BundledSource is reported by Table.Source for the embedded table.
const BundledSource = "bundled"

//go:embed files/dictionary_correct_species.yaml
var bundled []byte

// Table is an immutable species-key translation table. The zero value is an
// empty table that resolves every key to itself.
type Table struct {
	source  string
	entries map[string]string
}

// New builds a table from entries. The map is copied.
func New(source string, entries map[string]string) Table {
	return Table{source: source, entries: maps.Clone(entries)}
}

// Bundled returns the table compiled into the binary.
func Bundled() (Table, error) {
	return Parse(BundledSource, bundled)
}

// Load reads the table at path. The default path falls back to the bundled
// table when it does not exist; any other missing path is an error.
func Load(path string) (Table, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == BundledSource {
		return Bundled()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if path == DefaultPath {
				return Bundled()
			}
			err = fmt.Errorf("%w: %w", failures.ErrNotFound, err)
		}
		return Table{}, failures.Wrap(failures.ErrTranslationTable, component, "load", path, err)
	}
	return Parse(path, data)
}

// Parse decodes a flat YAML mapping of species key to database name.
func Parse(source string, data []byte) (Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Table{}, failures.Wrap(failures.ErrTranslationTable, component, "parse", source, err)
	}
	if len(doc.Content) == 0 {
		return Table{}, failures.Wrap(failures.ErrTranslationTable, component, "parse",
			fmt.Sprintf("%s: empty document", source), nil)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Table{}, failures.Wrap(failures.ErrTranslationTable, component, "parse",
			fmt.Sprintf("%s: line %d: expected a mapping", source, root.Line), nil)
	}

	entries := make(map[string]string, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
			return Table{}, failures.Wrap(failures.ErrTranslationTable, component, "parse",
				fmt.Sprintf("%s: line %d: entries must map a key to a name", source, key.Line), nil)
		}
		entries[key.Value] = value.Value
	}
	return Table{source: source, entries: entries}, nil
}

// Resolve returns the database name for key, or key itself when the table has
// no entry for it.
func (t Table) Resolve(key string) string {
	if name, ok := t.entries[key]; ok {
		return name
	}
	return key
}

// Lookup returns the entry for key.
func (t Table) Lookup(key string) (string, bool) {
	name, ok := t.entries[key]
	return name, ok
}

// Len reports the number of entries.
func (t Table) Len() int {
	return len(t.entries)
}

// Keys returns the table keys in sorted order.
func (t Table) Keys() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// Source names where the table was loaded from.
func (t Table) Source() string {
	return t.source
}
