package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/errtag/internal/config"
	"github.com/danmuck/errtag/internal/logging"
	"github.com/danmuck/errtag/internal/tag"
	"github.com/rs/zerolog/log"
)

const defaultPath = "errtag.toml"

type options struct {
	template bool
	validate bool
	list     bool
	types    bool
	input    string
	output   string
	force    bool
}

func main() {
	logging.ConfigureRuntime()
	opts := parseFlags()
	if err := run(opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("errtagctl failed")
	}
}

func parseFlags() options {
	var opts options
	flag.BoolVar(&opts.template, "template", false, "write a declaration file template")
	flag.BoolVar(&opts.validate, "validate", false, "validate a declaration file against the builtin catalog")
	flag.BoolVar(&opts.list, "list", false, "list routines and accepted types of a declaration file")
	flag.BoolVar(&opts.types, "types", false, "list type names known to the builtin catalog")
	flag.StringVar(&opts.input, "input", defaultPath, "declaration file for -validate and -list")
	flag.StringVar(&opts.output, "output", defaultPath, "output path for -template")
	flag.BoolVar(&opts.force, "force", false, "overwrite an existing file with -template")
	flag.Parse()
	return opts
}

func run(opts options, out io.Writer) error {
	catalog := tag.Builtins()
	switch {
	case opts.template:
		if err := config.WriteTemplate(opts.output, opts.force); err != nil {
			return err
		}
		log.Info().Str("path", opts.output).Msg("wrote declaration template")
		return nil
	case opts.types:
		for _, name := range catalog.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	case opts.validate, opts.list:
		file, err := config.LoadDeclarations(opts.input)
		if err != nil {
			return err
		}
		registry := tag.NewRegistry()
		if err := config.Apply(file, catalog, registry); err != nil {
			return err
		}
		registry.Seal()
		if opts.list {
			return printRegistry(out, registry)
		}
		log.Info().Str("path", opts.input).Int("routines", registry.Len()).Msg("validated declarations")
		return nil
	default:
		return fmt.Errorf("one of -template, -validate, -list, -types is required")
	}
}

func printRegistry(out io.Writer, registry *tag.Registry) error {
	for _, routine := range registry.Routines() {
		set, ok := registry.Lookup(routine)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", routine, set); err != nil {
			return err
		}
	}
	return nil
}
