package cmdargs

import (
	"strings"
)

// FlagEntry is a flag as it appears in an argument list: "-name" for bool flags,
// "-name value" for the others
type FlagEntry struct {
	name   string
	value  string
	isBool bool
}

func NewBoolFlagEntry(flagName string) FlagEntry {
	return FlagEntry{
		name:   flagName,
		isBool: true,
	}
}

func NewFlagEntry(flagName, flagValue string) FlagEntry {
	return FlagEntry{
		name:  flagName,
		value: flagValue,
	}
}

func (f FlagEntry) TokenStrings() []string {
	if f.isBool {
		return []string{"-" + f.name}
	}
	return []string{"-" + f.name, f.value}
}

func (f FlagEntry) TokensCount() int {
	if f.isBool {
		return 1
	}
	return 2
}

func (f FlagEntry) String() string {
	return strings.Join(f.TokenStrings(), " ")
}

func (f FlagEntry) Name() string {
	return f.name
}

func (f FlagEntry) Value() string {
	return f.value
}

func (f FlagEntry) IsBool() bool {
	return f.isBool
}

func (f FlagEntry) Equals(other FlagEntry) bool {
	return f.name == other.name &&
		f.value == other.value &&
		f.isBool == other.isBool
}

func (f FlagEntry) WithName(name string) FlagEntry {
	f.name = name
	return f
}

// WithValue makes the flag a non-bool flag with the given value
func (f FlagEntry) WithValue(value string) FlagEntry {
	f.value = value
	f.isBool = false
	return f
}

// WithNoValue makes the flag a bool flag with no value (equals true)
func (f FlagEntry) WithNoValue() FlagEntry {
	f.isBool = true
	f.value = ""
	return f
}
