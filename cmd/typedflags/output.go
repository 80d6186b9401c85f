package main

import (
	"encoding/json"
	"fmt"
	"io"

	typedflags "github.com/cardinalby/go-typed-flags"
	"github.com/cardinalby/go-typed-flags/cmdargs"
	"gopkg.in/yaml.v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// resultDoc is the printable form of typedflags.Results
type resultDoc struct {
	Bools   map[string]bool   `yaml:"bool,omitempty" json:"bool,omitempty"`
	Int32s  map[string]int32  `yaml:"int32,omitempty" json:"int32,omitempty"`
	Strings map[string]string `yaml:"string,omitempty" json:"string,omitempty"`
	Visited []string          `yaml:"visited" json:"visited"`
}

func newResultDoc(res typedflags.Results) resultDoc {
	doc := resultDoc{
		Visited: []string{},
	}
	schema := res.Schema()
	for _, name := range schema.Names() {
		switch schema[name] {
		case typedflags.Bool:
			if doc.Bools == nil {
				doc.Bools = make(map[string]bool)
			}
			doc.Bools[name] = res.Bool(name)
		case typedflags.Int32:
			if doc.Int32s == nil {
				doc.Int32s = make(map[string]int32)
			}
			doc.Int32s[name] = res.Int32(name)
		case typedflags.String:
			if doc.Strings == nil {
				doc.Strings = make(map[string]string)
			}
			doc.Strings[name] = res.String(name)
		}
	}
	res.Visit(func(name string) {
		doc.Visited = append(doc.Visited, name)
	})
	return doc
}

func printResults(w io.Writer, res typedflags.Results, format string, normalize bool) error {
	if normalize {
		argString, err := cmdargs.FromResults(res).Join()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, argString)
		return err
	}
	doc := newResultDoc(res)
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
