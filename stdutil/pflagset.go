package stdutil

import (
	typedflags "github.com/cardinalby/go-typed-flags"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// SchemaFromPFlagSet builds a schema from the flags of a pflag FlagSet using Value.Type().
// "bool", "int32" and "string" map directly, "int" maps to Int32.
// Shorthands are not part of the schema.
func SchemaFromPFlagSet(flagSet *pflag.FlagSet) (typedflags.Schema, error) {
	schema := make(typedflags.Schema)
	var err error
	flagSet.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch valueType := f.Value.Type(); valueType {
		case "int":
			schema[f.Name] = typedflags.Int32
		default:
			typ, parseErr := typedflags.ParseFlagType(valueType)
			if parseErr != nil {
				err = errors.Wrapf(ErrUnsupportedFlag, `"%s": %s`, f.Name, valueType)
				return
			}
			schema[f.Name] = typ
		}
	})
	if err != nil {
		return nil, err
	}
	return schema, nil
}

// ApplyToPFlagSet sets the flags that appeared in the parsed input on flagSet.
// After the call flagSet.Changed() reports true for them.
func ApplyToPFlagSet(flagSet *pflag.FlagSet, res typedflags.Results) (err error) {
	res.Visit(func(name string) {
		if err != nil {
			return
		}
		text, _ := res.Text(name)
		if setErr := flagSet.Set(name, text); setErr != nil {
			err = errors.Wrapf(setErr, `flag "%s"`, name)
		}
	})
	return err
}
