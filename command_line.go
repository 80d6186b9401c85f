package typedflags

import (
	"os"
)

// ParseCommandLine parses os.Args[1:] against schema.
// It follows the same pattern as flag.Parse() in the stdlib, but doesn't exit on error.
func ParseCommandLine(schema Schema) (Results, error) {
	return ParseArgs(schema, commandLineArgs())
}

// ParseCommandLineInto parses os.Args[1:] into the tagged struct p. See ParseArgsInto
func ParseCommandLineInto(p any) error {
	return ParseArgsInto(p, commandLineArgs())
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
