// Package report renders the metadata store's attribute tables for human or
// machine consumption. All output is deterministically ordered: modules,
// functions, and attribute names are sorted.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/vk/funcattr/internal/store"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FunctionReport is one function's rendered attribute table.
type FunctionReport struct {
	Module     string
	Name       string
	Attributes map[string]cty.Value
}

// Snapshot is a point-in-time copy of every named function's attribute
// table, sorted by module then function name.
type Snapshot struct {
	Functions []FunctionReport
}

// Collect snapshots the attribute tables of all named functions in the
// store. Only GetAll copies are held; the snapshot stays valid regardless of
// later store mutation.
func Collect(st *store.Store) *Snapshot {
	snap := &Snapshot{}

	modules := st.Modules()
	sort.Strings(modules)
	for _, module := range modules {
		functions := st.Functions(module)
		sort.Strings(functions)
		for _, fn := range functions {
			table, err := st.GetAllByName(module, fn)
			if err != nil {
				continue
			}
			snap.Functions = append(snap.Functions, FunctionReport{
				Module:     module,
				Name:       fn,
				Attributes: table,
			})
		}
	}
	return snap
}

// Render writes the snapshot to w in the requested format.
func Render(w io.Writer, format string, snap *Snapshot) error {
	switch format {
	case FormatText:
		return renderText(w, snap)
	case FormatJSON:
		return renderJSON(w, snap)
	case FormatYAML:
		return renderYAML(w, snap)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderText(w io.Writer, snap *Snapshot) error {
	for _, fn := range snap.Functions {
		if _, err := fmt.Fprintf(w, "function %s.%s\n", fn.Module, fn.Name); err != nil {
			return err
		}
		if len(fn.Attributes) == 0 {
			if _, err := fmt.Fprintln(w, "  (no attributes)"); err != nil {
				return err
			}
			continue
		}
		for _, name := range sortedKeys(fn.Attributes) {
			encoded, err := ctyjson.Marshal(fn.Attributes[name], fn.Attributes[name].Type())
			if err != nil {
				return fmt.Errorf("function %s.%s, attribute %q: %w", fn.Module, fn.Name, name, err)
			}
			if _, err := fmt.Fprintf(w, "  %s = %s\n", name, encoded); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderJSON(w io.Writer, snap *Snapshot) error {
	doc, err := nativeDoc(snap)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func renderYAML(w io.Writer, snap *Snapshot) error {
	doc, err := nativeDoc(snap)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}

// nativeDoc shapes the snapshot as module -> function -> attribute -> value
// with native Go values, ready for generic marshalling.
func nativeDoc(snap *Snapshot) (map[string]map[string]map[string]any, error) {
	doc := make(map[string]map[string]map[string]any)
	for _, fn := range snap.Functions {
		if doc[fn.Module] == nil {
			doc[fn.Module] = make(map[string]map[string]any)
		}
		table := make(map[string]any, len(fn.Attributes))
		for name, value := range fn.Attributes {
			native, err := ctyToNative(value)
			if err != nil {
				return nil, fmt.Errorf("function %s.%s, attribute %q: %w", fn.Module, fn.Name, name, err)
			}
			table[name] = native
		}
		doc[fn.Module][fn.Name] = table
	}
	return doc, nil
}

func sortedKeys(m map[string]cty.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
