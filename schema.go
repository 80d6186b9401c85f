package typedflags

import (
	"sort"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Schema maps flag names (without the leading hyphen) to their types
type Schema map[string]FlagType

func (s Schema) Clone() Schema {
	clone := make(Schema, len(s))
	for name, typ := range s {
		clone[name] = typ
	}
	return clone
}

// Names returns the declared flag names sorted
func (s Schema) Names() []string {
	names := lo.Keys(s)
	sort.Strings(names)
	return names
}

func (s Schema) Lookup(name string) (typ FlagType, has bool) {
	typ, has = s[name]
	return typ, has
}

// Validate checks that every name could be matched by a token and every type is valid
func (s Schema) Validate() error {
	for _, name := range s.Names() {
		if name == "" {
			return errors.Wrap(ErrInvalidSchema, "empty flag name")
		}
		if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			return errors.Wrapf(ErrInvalidSchema, "flag name %q contains whitespace", name)
		}
		if typ := s[name]; !typ.IsValid() {
			return errors.Wrapf(ErrInvalidSchema, "flag %q: invalid type %s", name, typ)
		}
	}
	return nil
}
