package typedflags

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// FlagType is a closed set of supported flag value types. The zero value is invalid.
type FlagType int

const (
	Bool FlagType = iota + 1
	Int32
	String
)

func (t FlagType) IsValid() bool {
	switch t {
	case Bool, Int32, String:
		return true
	default:
		return false
	}
}

// Arity is the number of value tokens the flag consumes after its name
func (t FlagType) Arity() int {
	switch t {
	case Bool:
		return 0
	case Int32, String:
		return 1
	default:
		panic(errors.AssertionFailedf("invalid flag type %d", int(t)))
	}
}

func (t FlagType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case String:
		return "string"
	default:
		return "FlagType(" + strconv.Itoa(int(t)) + ")"
	}
}

func (t FlagType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, errors.Wrapf(ErrInvalidSchema, "invalid flag type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *FlagType) UnmarshalText(text []byte) error {
	parsed, err := ParseFlagType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseFlagType accepts the names returned by FlagType.String()
func ParseFlagType(name string) (FlagType, error) {
	switch name {
	case "bool":
		return Bool, nil
	case "int32":
		return Int32, nil
	case "string":
		return String, nil
	default:
		return 0, errors.Wrapf(ErrInvalidSchema, "unknown flag type %q", name)
	}
}

// flagValue holds a parsed value of one of the FlagType variants
type flagValue struct {
	typ FlagType
	b   bool
	i32 int32
	str string
}

// parseValue interprets a value token according to the flag type.
// Bool flags never consume a token, their value is always true.
func (t FlagType) parseValue(token string) (flagValue, error) {
	res := flagValue{typ: t}
	switch t {
	case Bool:
		res.b = true
	case Int32:
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return res, err
		}
		res.i32 = int32(v)
	case String:
		res.str = token
	default:
		return res, errors.AssertionFailedf("invalid flag type %d", int(t))
	}
	return res, nil
}
