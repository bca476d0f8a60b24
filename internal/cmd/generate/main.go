// Command generate renders model packages from type definitions.
//
//	go run ./internal/cmd/generate -definitions internal/generate/definitions/r4.yaml -out model/r4
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yeyanbo/fhirpath-go/internal/generate"
	"github.com/yeyanbo/fhirpath-go/internal/generate/ir"
)

func main() {
	definitions := flag.String("definitions", "internal/generate/definitions/r4.yaml", "type definitions to generate from")
	out := flag.String("out", "model/r4", "output directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	data, err := os.ReadFile(*definitions)
	if err != nil {
		log.Fatal().Err(err).Str("file", *definitions).Msg("read definitions")
	}

	release, rts, err := ir.Parse(data)
	if err != nil {
		log.Fatal().Err(err).Msg("parse definitions")
	}
	log.Info().Str("release", release).Int("types", len(rts)).Msg("parsed definitions")

	files := generate.Files(release, rts, generate.DefaultGenerators())
	if err := generate.Write(*out, files); err != nil {
		log.Fatal().Err(err).Msg("write files")
	}
	log.Info().Str("out", *out).Int("files", len(files)).Msg("generated model")
}
