package typedflags

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func setOsArgs(t *testing.T, args ...string) {
	t.Helper()
	origArgs := os.Args
	os.Args = args
	t.Cleanup(func() {
		os.Args = origArgs
	})
}

func TestParseCommandLine(t *testing.T) {
	setOsArgs(t, "prog", "-l", "-p", "1080", "-d", "with space")
	res, err := ParseCommandLine(getTestSchema())
	require.NoError(t, err)
	require.True(t, res.Bool("l"))
	require.Equal(t, int32(1080), res.Int32("p"))
	require.Equal(t, "with space", res.String("d"))

	setOsArgs(t, "prog", "-p")
	_, err = ParseCommandLine(getTestSchema())
	require.ErrorIs(t, err, ErrMissingValue)
	require.ErrorIs(t, err, ErrParse)

	setOsArgs(t, "prog")
	res, err = ParseCommandLine(getTestSchema())
	require.NoError(t, err)
	require.False(t, res.Visited("l"))

	setOsArgs(t)
	_, err = ParseCommandLine(getTestSchema())
	require.NoError(t, err)
}

func TestParseCommandLineInto(t *testing.T) {
	setOsArgs(t, "prog", "-d", "/hola", "-pp", "-5")
	val := testStruct{Port: 7}
	require.NoError(t, ParseCommandLineInto(&val))
	require.Equal(t, "/hola", val.Dir)
	require.Equal(t, int32(7), val.Port)
	require.Equal(t, ptr(int32(-5)), val.PortP)

	setOsArgs(t, "prog", "-l")
	val = testStruct{}
	err := ParseCommandLineInto(&val)
	require.ErrorIs(t, err, ErrIsRequired)
	require.ErrorIs(t, err, ErrParse)
	require.False(t, val.Local)
}
