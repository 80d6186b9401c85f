package typedflags

import (
	"sort"
	"strconv"

	"github.com/samber/lo"
)

// Results holds parsed flag values. Every flag declared in the schema has an entry
// with its type's zero value until the parser overwrites it.
// Lookups of undeclared names return zero values.
type Results struct {
	schema  Schema
	bools   map[string]bool
	ints    map[string]int32
	strings map[string]string
	visited map[string]struct{}
}

func newResults(schema Schema) Results {
	res := Results{
		schema:  schema,
		bools:   make(map[string]bool),
		ints:    make(map[string]int32),
		strings: make(map[string]string),
		visited: make(map[string]struct{}),
	}
	for name, typ := range schema {
		switch typ {
		case Bool:
			res.bools[name] = false
		case Int32:
			res.ints[name] = 0
		case String:
			res.strings[name] = ""
		}
	}
	return res
}

func (r Results) Bool(name string) bool {
	return r.bools[name]
}

func (r Results) Int32(name string) int32 {
	return r.ints[name]
}

func (r Results) String(name string) string {
	return r.strings[name]
}

// Schema returns the schema the results were built for
func (r Results) Schema() Schema {
	return r.schema.Clone()
}

// Visited reports whether the flag appeared in the input at least once
func (r Results) Visited(name string) bool {
	_, has := r.visited[name]
	return has
}

// Visit calls fn for each flag that appeared in the input, in lexicographical order
func (r Results) Visit(fn func(name string)) {
	names := lo.Keys(r.visited)
	sort.Strings(names)
	for _, name := range names {
		fn(name)
	}
}

// set overwrites the value of a declared flag: the last write wins
func (r Results) set(name string, v flagValue) {
	switch v.typ {
	case Bool:
		r.bools[name] = v.b
	case Int32:
		r.ints[name] = v.i32
	case String:
		r.strings[name] = v.str
	}
	r.visited[name] = struct{}{}
}

// setBool records a flag that takes no value token
func (r Results) setBool(name string) {
	r.set(name, flagValue{typ: Bool, b: true})
}

// Text returns the value of a declared flag formatted so that it parses back to the same value
func (r Results) Text(name string) (text string, declared bool) {
	typ, has := r.schema[name]
	if !has {
		return "", false
	}
	switch typ {
	case Bool:
		return strconv.FormatBool(r.bools[name]), true
	case Int32:
		return strconv.FormatInt(int64(r.ints[name]), 10), true
	default:
		return r.strings[name], true
	}
}
