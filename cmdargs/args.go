package cmdargs

import (
	"strings"
	"unicode"

	typedflags "github.com/cardinalby/go-typed-flags"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// ErrUnrepresentable is returned by Args.Join if a token can't survive whitespace splitting
var ErrUnrepresentable = errors.New("token can't be represented in an argument string")

// Args is an ordered list of flag entries
type Args []FlagEntry

// FromResults returns the canonical arguments that parse back to res:
// one entry per flag that appeared in the input, ordered by name
func FromResults(res typedflags.Results) Args {
	schema := res.Schema()
	var args Args
	res.Visit(func(name string) {
		if schema[name] == typedflags.Bool {
			args = append(args, NewBoolFlagEntry(name))
			return
		}
		text, _ := res.Text(name)
		args = append(args, NewFlagEntry(name, text))
	})
	return args
}

func (args Args) Tokens() []string {
	return lo.FlatMap(args, func(f FlagEntry, _ int) []string {
		return f.TokenStrings()
	})
}

func (args Args) String() string {
	return strings.Join(args.Tokens(), " ")
}

// Join returns the argument string that splits back to Tokens()
func (args Args) Join() (string, error) {
	for _, token := range args.Tokens() {
		if token == "" || strings.IndexFunc(token, unicode.IsSpace) >= 0 {
			return "", errors.Wrapf(ErrUnrepresentable, "%q", token)
		}
	}
	return args.String(), nil
}

// Parse parses the tokens of args against schema
func (args Args) Parse(schema typedflags.Schema) (typedflags.Results, error) {
	return typedflags.ParseArgs(schema, args.Tokens())
}
