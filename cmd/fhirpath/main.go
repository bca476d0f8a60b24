// Command fhirpath evaluates FHIRPath expressions against FHIR JSON resources.
//
//	fhirpath eval "Patient.name.given" -r patient.json
//	cat observation.json | fhirpath assert "Observation.status = 'final'"
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	os.Exit(execute(newRootCmd(), logger))
}

// execute runs cmd and returns the exit code: 1 for a failed assertion, 2 for any error.
func execute(cmd *cobra.Command, logger zerolog.Logger) int {
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errAssertionFailed):
		return 1
	default:
		// fatal level without zerolog's exit, so the code stays 2
		logger.WithLevel(zerolog.FatalLevel).Err(err).Msg("fhirpath failed")
		return 2
	}
}
