package stdutil

import (
	"flag"
	"testing"
	"time"

	typedflags "github.com/cardinalby/go-typed-flags"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func getTestFlagSet() (*flag.FlagSet, *bool, *int, *string) {
	fls := flag.NewFlagSet("", flag.ContinueOnError)
	l := fls.Bool("l", false, "")
	p := fls.Int("p", 0, "")
	d := fls.String("d", "", "")
	return fls, l, p, d
}

func TestSchemaFromFlagSet(t *testing.T) {
	t.Parallel()

	fls, _, _, _ := getTestFlagSet()
	fls.Int64("p64", 0, "")
	schema, err := SchemaFromFlagSet(fls)
	require.NoError(t, err)
	require.Equal(t, typedflags.Schema{
		"l":   typedflags.Bool,
		"p":   typedflags.Int32,
		"p64": typedflags.Int32,
		"d":   typedflags.String,
	}, schema)
}

func TestSchemaFromFlagSet_Unsupported(t *testing.T) {
	t.Parallel()

	for _, register := range []func(fls *flag.FlagSet){
		func(fls *flag.FlagSet) { fls.Duration("t", time.Second, "") },
		func(fls *flag.FlagSet) { fls.Float64("f", 0, "") },
		func(fls *flag.FlagSet) { fls.Uint("u", 0, "") },
		func(fls *flag.FlagSet) { fls.Func("fn", "", func(string) error { return nil }) },
	} {
		fls, _, _, _ := getTestFlagSet()
		register(fls)
		_, err := SchemaFromFlagSet(fls)
		require.ErrorIs(t, err, ErrUnsupportedFlag)
	}
}

func TestApplyToFlagSet(t *testing.T) {
	t.Parallel()

	fls, l, p, d := getTestFlagSet()
	schema, err := SchemaFromFlagSet(fls)
	require.NoError(t, err)

	res, err := typedflags.Parse(schema, "-p 1080 -d /hola/mundo")
	require.NoError(t, err)
	require.NoError(t, ApplyToFlagSet(fls, res))

	require.False(t, *l)
	require.Equal(t, 1080, *p)
	require.Equal(t, "/hola/mundo", *d)

	var set []string
	fls.Visit(func(f *flag.Flag) {
		set = append(set, f.Name)
	})
	require.Equal(t, []string{"d", "p"}, set)
}

func TestPFlagSet(t *testing.T) {
	t.Parallel()

	fls := pflag.NewFlagSet("", pflag.ContinueOnError)
	l := fls.BoolP("local", "l", false, "")
	p := fls.Int32("p", 0, "")
	n := fls.Int("n", 5, "")
	d := fls.String("d", "", "")

	schema, err := SchemaFromPFlagSet(fls)
	require.NoError(t, err)
	require.Equal(t, typedflags.Schema{
		"local": typedflags.Bool,
		"p":     typedflags.Int32,
		"n":     typedflags.Int32,
		"d":     typedflags.String,
	}, schema)

	res, err := typedflags.Parse(schema, "-local -p -1080 -d -hola_mundo")
	require.NoError(t, err)
	require.NoError(t, ApplyToPFlagSet(fls, res))

	require.True(t, *l)
	require.Equal(t, int32(-1080), *p)
	require.Equal(t, 5, *n)
	require.Equal(t, "-hola_mundo", *d)
	require.True(t, fls.Changed("local"))
	require.False(t, fls.Changed("n"))

	fls.StringSlice("tags", nil, "")
	_, err = SchemaFromPFlagSet(fls)
	require.ErrorIs(t, err, ErrUnsupportedFlag)
}
