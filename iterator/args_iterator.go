package iterator

import (
	"unicode"
	"unicode/utf8"
)

// Source yields tokens one at a time in their original order.
// ok == false means the source is exhausted, it is not an error.
type Source interface {
	Next() (token string, ok bool)
}

// Tokenizer lazily splits an argument string into whitespace-separated tokens.
// It knows nothing about flags: leading hyphens are ordinary characters.
// A Tokenizer can be consumed only once.
type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{
		input: input,
	}
}

// Next returns the next token. Once the input is exhausted it keeps returning ok == false
func (t *Tokenizer) Next() (token string, ok bool) {
	t.pos = skipSpaces(t.input, t.pos)
	if t.pos >= len(t.input) {
		return "", false
	}
	start := t.pos
	for t.pos < len(t.input) {
		r, size := utf8.DecodeRuneInString(t.input[t.pos:])
		if unicode.IsSpace(r) {
			break
		}
		t.pos += size
	}
	return t.input[start:t.pos], true
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsSpace(r) {
			return pos
		}
		pos += size
	}
	return pos
}

type argsSource struct {
	args []string
	next int
}

// FromArgs returns a Source over an already split argument vector (e.g. os.Args[1:]).
// Tokens are returned verbatim, even empty ones or ones containing spaces.
func FromArgs(args []string) Source {
	return &argsSource{
		args: args,
	}
}

func (s *argsSource) Next() (token string, ok bool) {
	if s.next >= len(s.args) {
		return "", false
	}
	token = s.args[s.next]
	s.next++
	return token, true
}
