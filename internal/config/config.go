package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats.
const (
	FormatSDL  = "sdl"
	FormatGo   = "go"
	FormatJSON = "json"
)

// Environment variables read by Load.
const (
	EnvPrefix    = "INPUTTYPE_PREFIX"
	EnvPostfix   = "INPUTTYPE_POSTFIX"
	EnvFormat    = "INPUTTYPE_FORMAT"
	EnvGoPackage = "INPUTTYPE_GO_PACKAGE"
	EnvCacheSize = "INPUTTYPE_CACHE_SIZE"
	EnvVerbose   = "INPUTTYPE_VERBOSE"
)

// DefaultEnvFile is read when Options.EnvFile is empty.
const DefaultEnvFile = ".env"

// ErrUsage is returned for invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// Config holds the resolved generator settings.
type Config struct {
	SchemaFile string
	Packages   []string
	Types      []string
	Prefix     string
	Postfix    string
	Format     string
	GoPackage  string
	Output     string
	CacheSize  int
	Verbose    bool
	Debug      bool
}

// Options controls where Load reads its inputs from.
type Options struct {
	// EnvFile is the dotenv file to read. A missing file is ignored.
	EnvFile string
	// Getenv looks up environment variables; defaults to os.Getenv.
	Getenv func(string) string
	// Output receives flag usage and parse errors; defaults to os.Stderr.
	Output io.Writer
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}

	return nil
}

// Load parses args (without the program name) into a Config.
func Load(args []string, opts Options) (*Config, error) {
	if opts.EnvFile == "" {
		opts.EnvFile = DefaultEnvFile
	}

	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	dotenv, err := godotenv.Read(opts.EnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", opts.EnvFile, err)
	}

	lookup := func(key string) string {
		if v := strings.TrimSpace(opts.Getenv(key)); v != "" {
			return v
		}

		return strings.TrimSpace(dotenv[key])
	}

	cacheSize := 0
	if raw := lookup(EnvCacheSize); raw != "" {
		cacheSize, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvCacheSize, err)
		}
	}

	verbose := false
	if raw := lookup(EnvVerbose); raw != "" {
		verbose, err = strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
	}

	cfg := &Config{}

	var pkgs, typeNames stringList

	flags := flag.NewFlagSet("inputtype-generator", flag.ContinueOnError)
	flags.SetOutput(opts.Output)
	flags.StringVar(&cfg.SchemaFile, "schema", "", "YAML schema document to load")
	flags.Var(&pkgs, "pkg", "Go package pattern to load (repeatable)")
	flags.Var(&typeNames, "type", "record type to convert (repeatable, comma-separated)")
	flags.StringVar(&cfg.Prefix, "prefix", lookup(EnvPrefix), "prefix for generated input type names")
	flags.StringVar(&cfg.Postfix, "postfix", firstNonEmpty(lookup(EnvPostfix), "Input"), "postfix for generated input type names")
	flags.StringVar(&cfg.Format, "format", firstNonEmpty(lookup(EnvFormat), FormatSDL), "output format: sdl, go or json")
	flags.StringVar(&cfg.GoPackage, "go-package", firstNonEmpty(lookup(EnvGoPackage), "inputs"), "package name for -format go")
	flags.StringVar(&cfg.Output, "out", "", "output file (default: stdout)")
	flags.IntVar(&cfg.CacheSize, "cache", cacheSize, "size of the conversion cache shared between types (0 disables)")
	flags.BoolVar(&cfg.Verbose, "v", verbose, "verbose output")
	flags.BoolVar(&cfg.Debug, "debug", false, "debug output")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	cfg.Packages = append(pkgs, flags.Args()...)
	cfg.Types = typeNames

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the settings are consistent.
func (c *Config) Validate() error {
	switch {
	case c.SchemaFile == "" && len(c.Packages) == 0:
		return fmt.Errorf("%w: one of -schema or -pkg is required", ErrUsage)
	case c.SchemaFile != "" && len(c.Packages) > 0:
		return fmt.Errorf("%w: -schema and -pkg are mutually exclusive", ErrUsage)
	case c.CacheSize < 0:
		return fmt.Errorf("%w: -cache must not be negative", ErrUsage)
	}

	switch c.Format {
	case FormatSDL, FormatGo, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrUsage, c.Format)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
