package config

import (
	"fmt"
	"io"
)

const (
	flagImport = "-import"
	flagExport = "-export"
)

// Args holds the file paths given on the command line. An empty path means
// the flag was not given.
type Args struct {
	Import string
	Export string
}

// ParseArgs reads -import and -export pairs. Bad input is reported to stderr
// and skipped; parsing never stops early. A repeated flag overrides the
// earlier value.
func ParseArgs(args []string, stderr io.Writer) Args {
	var parsed Args

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case flagImport, flagExport:
			if i+1 >= len(args) {
				fmt.Fprintf(stderr, "Error: Missing argument for %s\n", args[i])
				continue
			}
			if args[i] == flagImport {
				parsed.Import = args[i+1]
			} else {
				parsed.Export = args[i+1]
			}
			i++
		default:
			fmt.Fprintf(stderr, "Unknown argument: %s\n", args[i])
		}
	}

	return parsed
}
