package stdutil

import (
	"flag"

	typedflags "github.com/cardinalby/go-typed-flags"
	"github.com/cockroachdb/errors"
)

var ErrUnsupportedFlag = errors.New("unsupported flag type")

type boolFlag interface {
	IsBoolFlag() bool
}

// SchemaFromFlagSet builds a schema from the formal flags of a std FlagSet.
// Bool flags map to Bool, int, int64 and int32 values map to Int32, string values to String.
func SchemaFromFlagSet(flagSet *flag.FlagSet) (typedflags.Schema, error) {
	schema := make(typedflags.Schema)
	var err error
	flagSet.VisitAll(func(f *flag.Flag) {
		if err != nil {
			return
		}
		var typ typedflags.FlagType
		if typ, err = getStdFlagType(f); err == nil {
			schema[f.Name] = typ
		}
	})
	if err != nil {
		return nil, err
	}
	return schema, nil
}

func getStdFlagType(f *flag.Flag) (typedflags.FlagType, error) {
	if bf, ok := f.Value.(boolFlag); ok && bf.IsBoolFlag() {
		return typedflags.Bool, nil
	}
	getter, ok := f.Value.(flag.Getter)
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedFlag, `"%s": %T doesn't implement flag.Getter`, f.Name, f.Value)
	}
	switch getter.Get().(type) {
	case int, int64, int32:
		return typedflags.Int32, nil
	case string:
		return typedflags.String, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedFlag, `"%s": %T`, f.Name, getter.Get())
	}
}

// ApplyToFlagSet sets the flags that appeared in the parsed input on flagSet,
// so that flagSet.Visit and the variables bound to it reflect them
func ApplyToFlagSet(flagSet *flag.FlagSet, res typedflags.Results) (err error) {
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
