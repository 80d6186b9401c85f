package cmdargs

// MapFlags returns new Args with entries replaced by mapper results.
// Entries for which mapper returns keep == false are dropped.
func (args Args) MapFlags(
	mapper func(flag FlagEntry) (mapped FlagEntry, keep bool),
) Args {
	var res Args
	for _, f := range args {
		if mapped, keep := mapper(f); keep {
			res = append(res, mapped)
		}
	}
	return res
}
