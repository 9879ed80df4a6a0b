// Package main provides the CLI entrypoint for inputtype-generator.
//
// inputtype-generator derives input types from record types:
//   - Loads records from a YAML schema document or from Go packages
//   - Converts the requested records, recursively, into input types
//   - Installs the results into the schema and validates it
//   - Writes the produced input types as SDL, Go structs or JSON
package main

import (
	"errors"
	"os"

	"inputtype-generator/internal/config"
	"inputtype-generator/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Error("%v", err)

		if errors.Is(err, config.ErrUsage) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
