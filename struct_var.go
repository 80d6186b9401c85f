package typedflags

import (
	"strings"

	"github.com/cardinalby/go-typed-flags/iterator"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// SchemaOf derives a schema from the fields of the struct p points to.
// Fields are bound with `flag:"name"` tags and must be of bool, int32, string type or
// a pointer to one of them. Nested structs tagged with `flagPrefix:"prefix"` contribute
// their fields with prefixed names.
func SchemaOf(p any) (Schema, error) {
	fieldsInfo, err := collectStructFields(p)
	if err != nil {
		return nil, err
	}
	return schemaOfFields(fieldsInfo)
}

// ParseInto parses argString and assigns the values of the flags that appeared to
// the fields of the struct p points to. Values the fields had before the call act as defaults.
// Pointer fields are set to a new value only if the flag appeared.
// On any error (including missing `flagRequired:"true"` flags) the struct is not modified.
func ParseInto(p any, argString string) error {
	return parseSourceInto(p, iterator.NewTokenizer(argString))
}

// ParseArgsInto is the same as ParseInto but accepts an already split argument vector
func ParseArgsInto(p any, args []string) error {
	return parseSourceInto(p, iterator.FromArgs(args))
}

func parseSourceInto(p any, tokens iterator.Source) error {
	fieldsInfo, err := collectStructFields(p)
	if err != nil {
		return err
	}
	schema, err := schemaOfFields(fieldsInfo)
	if err != nil {
		return err
	}
	parser, err := NewParser(schema)
	if err != nil {
		return err
	}
	res, err := parser.ParseSource(tokens)
	if err != nil {
		return err
	}

	missing := lo.Filter(fieldsInfo, func(info fieldInfo, _ int) bool {
		return info.isRequired && !res.Visited(info.flagName)
	})
	if len(missing) > 0 {
		names := lo.Map(missing, func(info fieldInfo, _ int) string {
			return `"` + info.flagName + `"`
		})
		return markParseErr(errors.Wrap(ErrIsRequired, strings.Join(names, ", ")))
	}

	for _, info := range fieldsInfo {
		if res.Visited(info.flagName) {
			info.assign(res, info.flagName)
		}
	}
	return nil
}

func collectStructFields(p any) ([]fieldInfo, error) {
	structValue, err := getStructPointerElem(p)
	if err != nil {
		return nil, err
	}
	return collectFieldsInfoRecursive(structValue, "", "")
}
