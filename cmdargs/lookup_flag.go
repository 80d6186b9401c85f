package cmdargs

// LookupFlag returns the last entry with the given name: it's the one that wins when parsed
func (args Args) LookupFlag(flagName string) (res FlagEntry, has bool) {
	for i := len(args) - 1; i >= 0; i-- {
		if args[i].Name() == flagName {
			return args[i], true
		}
	}
	return res, false
}

// DeleteFlag removes all entries with the given name
func (args Args) DeleteFlag(flagName string) (res Args, deleted bool) {
	res = args.MapFlags(func(f FlagEntry) (FlagEntry, bool) {
		if f.Name() == flagName {
			deleted = true
			return f, false
		}
		return f, true
	})
	return res, deleted
}

// UpsertFlag updates all entries with the name of `insert` using `update` func.
// If there are no such entries, `insert` is prepended.
func (args Args) UpsertFlag(
	insert FlagEntry,
	update func(old FlagEntry) (updated FlagEntry),
) Args {
	wasUpdated := false
	if res := args.MapFlags(func(f FlagEntry) (FlagEntry, bool) {
		if f.Name() == insert.Name() {
			wasUpdated = true
			return update(f), true
		}
		return f, true
	}); wasUpdated {
		return res
	}

	return append(Args{insert}, args...)
}
