package main

import (
	"os"

	typedflags "github.com/cardinalby/go-typed-flags"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// schemaConfig collects the schema declared on the command line and in the schema file
type schemaConfig struct {
	// yaml file with a map of flag name to type: bool, int32 or string
	SchemaFile string
	Bools      []string
	Int32s     []string
	Strings    []string
}

func (c *schemaConfig) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.SchemaFile, "schema-file", "f", "", "yaml file mapping flag names to types (bool, int32, string)")
	fs.StringSliceVar(&c.Bools, "bool", nil, "names of bool flags")
	fs.StringSliceVar(&c.Int32s, "int32", nil, "names of int32 flags")
	fs.StringSliceVar(&c.Strings, "string", nil, "names of string flags")
}

func (c *schemaConfig) schema() (typedflags.Schema, error) {
	schema := make(typedflags.Schema)
	if c.SchemaFile != "" {
		fileSchema, err := loadSchemaFile(c.SchemaFile)
		if err != nil {
			return nil, err
		}
		schema = fileSchema
	}
	for typ, names := range map[typedflags.FlagType][]string{
		typedflags.Bool:   c.Bools,
		typedflags.Int32:  c.Int32s,
		typedflags.String: c.Strings,
	} {
		for _, name := range names {
			if _, has := schema[name]; has {
				return nil, errors.Wrapf(typedflags.ErrFlagRedefined, `"%s"`, name)
			}
			schema[name] = typ
		}
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

func loadSchemaFile(path string) (typedflags.Schema, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read schema file")
	}
	schema := make(typedflags.Schema)
	if err := yaml.Unmarshal(bs, &schema); err != nil {
		return nil, errors.Wrapf(err, "failed to parse schema file %s", path)
	}
	return schema, nil
}
