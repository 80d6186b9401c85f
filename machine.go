package typedflags

import (
	"github.com/cardinalby/go-typed-flags/iterator"
	"go.uber.org/zap"
)

type stateKind int

const (
	stateReadingName stateKind = iota
	stateReadingValue
	stateDone
	stateParseError
)

func (k stateKind) String() string {
	switch k {
	case stateReadingName:
		return "ReadingName"
	case stateReadingValue:
		return "ReadingValue"
	case stateDone:
		return "Done"
	case stateParseError:
		return "ParseError"
	default:
		return "unknown"
	}
}

// state of a single parse run. flagName and flagType are set in stateReadingValue,
// err is set in stateParseError.
type state struct {
	kind     stateKind
	flagName string
	flagType FlagType
	err      error
}

func (s state) isTerminal() bool {
	return s.kind == stateDone || s.kind == stateParseError
}

// machine owns everything a parse run mutates
type machine struct {
	schema  Schema
	tokens  iterator.Source
	results Results
	// pos is the 1-based index of the last pulled token
	pos    int
	logger *zap.Logger
}

func newMachine(schema Schema, tokens iterator.Source, logger *zap.Logger) *machine {
	return &machine{
		schema:  schema,
		tokens:  tokens,
		results: newResults(schema),
		logger:  logger,
	}
}

func (m *machine) next() (string, bool) {
	token, ok := m.tokens.Next()
	if ok {
		m.pos++
	}
	return token, ok
}

// run applies step until a terminal state is reached
func (m *machine) run() (Results, error) {
	st := state{kind: stateReadingName}
	for !st.isTerminal() {
		st = m.step(st)
	}
	if st.kind == stateParseError {
		m.logger.Debug("parse failed", zap.Int("pos", m.pos), zap.Error(st.err))
		return Results{}, st.err
	}
	m.logger.Debug("parse done", zap.Int("tokens", m.pos))
	return m.results, nil
}

func (m *machine) step(st state) state {
	switch st.kind {
	case stateReadingName:
		return m.readName()
	case stateReadingValue:
		return m.readValue(st.flagName, st.flagType)
	default:
		return st
	}
}

func (m *machine) readName() state {
	token, ok := m.next()
	if !ok {
		return state{kind: stateDone}
	}
	if len(token) <= 1 {
		return m.fail(newParseErr(ErrMalformedFlag, m.pos, "%q is too short", token))
	}
	if token[0] != '-' {
		return m.fail(newParseErr(ErrMalformedFlag, m.pos, "%q doesn't start with \"-\"", token))
	}
	name := token[1:]
	typ, known := m.schema[name]
	if !known {
		return m.fail(newParseErr(ErrUnknownFlag, m.pos, "%q", name))
	}
	if typ.Arity() == 0 {
		m.results.setBool(name)
		m.logger.Debug("flag set", zap.String("flag", name), zap.Stringer("type", typ))
		return state{kind: stateReadingName}
	}
	return state{
		kind:     stateReadingValue,
		flagName: name,
		flagType: typ,
	}
}

func (m *machine) readValue(name string, typ FlagType) state {
	token, ok := m.next()
	if !ok {
		return m.fail(newParseErr(ErrMissingValue, m.pos, "flag %q needs a %s value", name, typ))
	}
	v, err := typ.parseValue(token)
	if err != nil {
		return m.fail(newParseErr(ErrInvalidValue, m.pos, "flag %q: %q is not a valid %s: %v", name, token, typ, err))
	}
	m.results.set(name, v)
	m.logger.Debug(
		"flag set",
		zap.String("flag", name),
		zap.Stringer("type", typ),
		zap.String("value", token),
	)
	return state{kind: stateReadingName}
}

func (m *machine) fail(err error) state {
	return state{kind: stateParseError, err: err}
}
