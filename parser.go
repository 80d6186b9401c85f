package typedflags

import (
	"github.com/cardinalby/go-typed-flags/iterator"
	"go.uber.org/zap"
)

// Parser parses argument strings against a fixed schema.
// It is read-only after construction and can be shared between goroutines:
// every parse call owns its tokenizer, state and results.
type Parser struct {
	schema Schema
	logger *zap.Logger
}

type Option func(p *Parser)

// WithLogger sets the logger used to trace state transitions at debug level
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser validates the schema and takes a private copy of it
func NewParser(schema Schema, opts ...Option) (*Parser, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	p := &Parser{
		schema: schema.Clone(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *Parser) Schema() Schema {
	return p.schema.Clone()
}

// Parse splits argString on whitespace and parses the tokens.
// On error the returned Results is empty.
func (p *Parser) Parse(argString string) (Results, error) {
	return p.ParseSource(iterator.NewTokenizer(argString))
}

// ParseArgs parses an already split argument vector
func (p *Parser) ParseArgs(args []string) (Results, error) {
	return p.ParseSource(iterator.FromArgs(args))
}

func (p *Parser) ParseSource(tokens iterator.Source) (Results, error) {
	return newMachine(p.schema, tokens, p.logger).run()
}

// Parse parses argString against schema.
// Use errors.Is(err, ErrParse) to check for any parse failure.
func Parse(schema Schema, argString string) (Results, error) {
	p, err := NewParser(schema)
	if err != nil {
		return Results{}, err
	}
	return p.Parse(argString)
}

// ParseArgs parses an already split argument vector against schema
func ParseArgs(schema Schema, args []string) (Results, error) {
	p, err := NewParser(schema)
	if err != nil {
		return Results{}, err
	}
	return p.ParseArgs(args)
}
