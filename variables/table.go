package variables

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"gopkg.in/yaml.v3"
)

// Sigil is the first character of every variable name.
const Sigil = '@'

// NullValue is the placeholder value of intrinsic variables and the display
// value of empty variables.
const NullValue = "null"

// Intrinsic variables, present in every new table.
var intrinsics = []string{
	"@lastfile",
	"@lastexportfile",
	"@lastshowfile",
	"@lastplotfile",
	"@lastredirectfile",
	"@lastcompilefile",
	"@result",
}

// Table maps variable names to string values.
//
// Names are case-sensitive. A Table is not safe for concurrent use; every
// interpreter session should own its own table.
type Table struct {
	vars   *treemap.Map // name → value, ordered by name
	active string       // active variable, "" if none
}

// NewTable creates a variable table, pre-populated with the intrinsic
// variables.
func NewTable() *Table {
	t := &Table{vars: treemap.NewWithStringComparator()}
	for _, name := range intrinsics {
		t.vars.Put(name, NullValue)
	}
	return t
}

// Add defines a variable or overwrites an existing one. Values containing
// the sigil are wrapped as literals, i.e. "@other" is stored as "{@other}".
// Add does not move the active-variable cursor.
func (t *Table) Add(name, value string) {
	if strings.ContainsRune(value, Sigil) {
		value = "{" + value + "}"
	}
	tracer().P("var", name).Debugf("define variable = %q", value)
	t.vars.Put(name, value)
}

// Lookup makes name the active variable and returns true, if name is
// defined. Otherwise the cursor is cleared and Lookup returns false.
func (t *Table) Lookup(name string) bool {
	if _, found := t.vars.Get(name); found {
		t.active = name
		return true
	}
	t.active = ""
	return false
}

// Active returns the name of the active variable, or "".
func (t *Table) Active() string {
	return t.active
}

// Value returns the value of the active variable. If there is no active
// variable, Value returns "".
func (t *Table) Value() string {
	if t.active == "" {
		return ""
	}
	v, found := t.vars.Get(t.active)
	if !found {
		return ""
	}
	return v.(string)
}

// SetValue overwrites the value of the active variable. No wrapping takes
// place, contrary to Add. Without an active variable SetValue is a no-op.
func (t *Table) SetValue(value string) {
	if t.active == "" {
		return
	}
	t.vars.Put(t.active, value)
}

// VarString formats a variable for display as "<name>. <value>".
func (t *Table) VarString(name string) string {
	v, found := t.vars.Get(name)
	if !found {
		return "Variable not found"
	}
	value := v.(string)
	if value == "" {
		value = NullValue
	}
	return fmt.Sprintf("%s. %s", name, value)
}

// NumVariables returns the number of variables, including the intrinsics.
func (t *Table) NumVariables() int {
	return t.vars.Size()
}

// Names returns all variable names in lexical order.
func (t *Table) Names() []string {
	keys := t.vars.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Remove deletes a variable. If it is the active variable, the cursor is
// cleared.
func (t *Table) Remove(name string) {
	t.vars.Remove(name)
	if t.active == name {
		t.active = ""
	}
}

// Each calls f for every variable, in lexical order of names.
func (t *Table) Each(f func(name, value string)) {
	it := t.vars.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value().(string))
	}
}

// Load reads variable definitions from a YAML mapping of names to values
// and adds them with Add. Names without a leading sigil get one prepended.
// Load returns the number of variables defined.
//
// Example:
//
//     kv: 12.47
//     "@bus": Sourcebus.1.2.3
//
func (t *Table) Load(r io.Reader) (int, error) {
	defs := make(map[string]string)
	if err := yaml.NewDecoder(r).Decode(&defs); err != nil && err != io.EOF {
		return 0, fmt.Errorf("cannot read variable definitions: %w", err)
	}
	for name, value := range defs {
		if !strings.HasPrefix(name, string(Sigil)) {
			name = string(Sigil) + name
		}
		t.Add(name, value)
	}
	tracer().Infof("loaded %d variable definitions", len(defs))
	return len(defs), nil
}
