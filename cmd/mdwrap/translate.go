package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/jcorbin/mdwrap/internal/cliconfig"
	"github.com/jcorbin/mdwrap/internal/wrapio"
)

// translateFile runs one pass from input to output. The output file is only
// replaced once the whole document has been translated.
func translateFile(log zerolog.Logger, cfg cliconfig.Config, input, output string) (wrapio.Stats, error) {
	start := time.Now()
	log.Info().Str("input", input).Msg("translating")

	f, err := os.Open(input)
	if err != nil {
		return wrapio.Stats{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	pass := wrapio.Pass{Policy: cfg.Policy, MaxLine: cfg.MaxLineBytes}
	if err := wrapio.WriteFileAtomic(output, 0644, func(w io.Writer) error {
		return pass.Run(f, w)
	}); err != nil {
		return pass.Stats, fmt.Errorf("translate %v: %w", input, err)
	}

	log.Info().
		Str("output", output).
		Stringer("policy", cfg.Policy).
		Int("lines", pass.Lines).
		Int("fragments", pass.Fragments).
		Int("suppressed", pass.Suppressed).
		Int("headings", pass.Headings).
		Int("paragraphs", pass.Paragraphs).
		Dur("took", time.Since(start)).
		Msg("translated")
	return pass.Stats, nil
}
