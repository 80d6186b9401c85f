package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func getTestArgs() Args {
	return Args{
		NewFlagEntry("d", "abc"),
		NewBoolFlagEntry("l"),
		NewFlagEntry("p", "1"),
		NewFlagEntry("p", "2"),
	}
}

func TestArgs_LookupFlag(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		args := Args{}
		res, ok := args.LookupFlag("x")
		require.False(t, ok)
		require.Equal(t, FlagEntry{}, res)
	})

	t.Run("simple", func(t *testing.T) {
		args := getTestArgs()
		// no match
		res, ok := args.LookupFlag("y")
		require.False(t, ok)
		require.Equal(t, FlagEntry{}, res)
		// has match
		res, ok = args.LookupFlag("l")
		require.True(t, ok)
		require.Equal(t, NewBoolFlagEntry("l"), res)
		// last one wins
		res, ok = args.LookupFlag("p")
		require.True(t, ok)
		require.Equal(t, NewFlagEntry("p", "2"), res)
	})
}

func TestArgs_DeleteFlag(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		args := Args{}
		res, deleted := args.DeleteFlag("x")
		require.False(t, deleted)
		require.Empty(t, res)
	})

	t.Run("simple", func(t *testing.T) {
		args := getTestArgs()
		// no match
		res, deleted := args.DeleteFlag("y")
		require.False(t, deleted)
		require.Equal(t, args, res)
		// has match
		res, deleted = args.DeleteFlag("p")
		require.True(t, deleted)
		require.Equal(t, Args{
			NewFlagEntry("d", "abc"),
			NewBoolFlagEntry("l"),
		}, res)
		// original is not modified
		require.Equal(t, getTestArgs(), args)
	})
}

func TestArgs_UpsertFlag(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		args := getTestArgs()
		res := args.UpsertFlag(NewFlagEntry("x", "v"), func(old FlagEntry) FlagEntry {
			t.Fatal("update should not be called")
			return old
		})
		require.Equal(t, append(Args{NewFlagEntry("x", "v")}, getTestArgs()...), res)
	})

	t.Run("update", func(t *testing.T) {
		args := getTestArgs()
		var seen []string
		res := args.UpsertFlag(NewFlagEntry("p", "0"), func(old FlagEntry) FlagEntry {
			seen = append(seen, old.Value())
			return old.WithValue(old.Value() + "0")
		})
		require.Equal(t, []string{"1", "2"}, seen)
		require.Equal(t, Args{
			NewFlagEntry("d", "abc"),
			NewBoolFlagEntry("l"),
			NewFlagEntry("p", "10"),
			NewFlagEntry("p", "20"),
		}, res)
	})
}
