package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"inputtype-generator/internal/analyze"
	"inputtype-generator/internal/config"
	"inputtype-generator/internal/convert"
	"inputtype-generator/internal/diagnostic"
	"inputtype-generator/internal/gen"
	"inputtype-generator/internal/logger"
	"inputtype-generator/internal/schema"
	"inputtype-generator/internal/schemafile"
)

// request is one record to convert with its resolved naming.
type request struct {
	record  *schema.Record
	prefix  string
	postfix string
}

// result is the outcome of a generator run.
type result struct {
	registry    *schema.Registry
	inputs      []*schema.Input
	diagnostics diagnostic.Diagnostics
}

func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load(args, config.Options{})
	if err != nil {
		return err
	}

	switch {
	case cfg.Debug:
		logger.SetLevel(logger.LogLevelDebug)
	case cfg.Verbose:
		logger.SetVerbose(true)
	}

	// Keep generated output on stdout clean.
	if cfg.Output == "" {
		logger.SetOutput(os.Stderr, os.Stderr)
	}

	res, err := generate(cfg)
	if err != nil {
		return err
	}

	content, err := render(cfg, res.inputs)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		_, err = stdout.Write(content)
		return err
	}

	if err := gen.WriteFile(cfg.Output, content); err != nil {
		return err
	}

	logger.Success("Generated %s with %d input types", cfg.Output, len(res.inputs))

	return nil
}

// generate loads the configured source, converts the requested records and
// installs the produced input types into the registry.
func generate(cfg *config.Config) (*result, error) {
	reg, requests, err := load(cfg)
	if err != nil {
		return nil, err
	}

	if len(requests) == 0 {
		return nil, errors.New("no record types to convert")
	}

	res := &result{registry: reg}
	reporter := diagnostic.Tee(&res.diagnostics, diagnostic.LogReporter{})

	var cache convert.Cache
	if cfg.CacheSize > 0 {
		lru, err := convert.NewLRUCache(cfg.CacheSize)
		if err != nil {
			return nil, err
		}

		cache = lru
	}

	// Requests with the same naming share a converter so the nested input
	// types they have in common are built once.
	type naming struct{ prefix, postfix string }

	converters := make(map[naming]*convert.Converter)
	roots := make([]*schema.Input, 0, len(requests))

	for _, req := range requests {
		key := naming{req.prefix, req.postfix}

		c, ok := converters[key]
		if !ok {
			c = convert.NewConverter(convert.Options{
				Prefix:   req.prefix,
				Postfix:  req.postfix,
				Reporter: reporter,
				Cache:    cache,
			})
			converters[key] = c
		}

		in := c.Convert(req.record)
		logger.Verbose("Converted %s to %s", req.record.Name, in.Name)

		if err := convert.Install(reg, in); err != nil {
			return nil, err
		}

		roots = append(roots, in)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	res.inputs = convert.Collect(roots...)

	if n := len(res.diagnostics.Warnings); n > 0 {
		logger.Verbose("%d fields fell back to %s", n, schema.GenericType().Name)
	}

	return res, nil
}

// load builds the registry from the configured source and resolves the
// conversion requests against it.
func load(cfg *config.Config) (*schema.Registry, []request, error) {
	if cfg.SchemaFile != "" {
		return loadSchemaFile(cfg)
	}

	logger.Verbose("Loading packages %v", cfg.Packages)

	reg, err := analyze.NewAnalyzer().LoadPackages(cfg.Packages...)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.Types) > 0 {
		requests, err := requestsByName(reg, cfg)
		return reg, requests, err
	}

	var requests []request

	for _, t := range reg.Types() {
		if rec, ok := t.(*schema.Record); ok {
			requests = append(requests, request{record: rec, prefix: cfg.Prefix, postfix: cfg.Postfix})
		}
	}

	return reg, requests, nil
}

func loadSchemaFile(cfg *config.Config) (*schema.Registry, []request, error) {
	logger.Verbose("Loading schema %s", cfg.SchemaFile)

	doc, err := schemafile.LoadFile(cfg.SchemaFile)
	if err != nil {
		return nil, nil, err
	}

	reg, err := schemafile.Build(doc)
	if err != nil {
		return nil, nil, err
	}

	if len(cfg.Types) > 0 {
		requests, err := requestsByName(reg, cfg)
		return reg, requests, err
	}

	resolved, err := doc.Requests(reg)
	if err != nil {
		return nil, nil, err
	}

	requests := make([]request, 0, len(resolved))
	for _, r := range resolved {
		requests = append(requests, request{
			record:  r.Record,
			prefix:  firstNonEmpty(r.Prefix, cfg.Prefix),
			postfix: firstNonEmpty(r.Postfix, cfg.Postfix),
		})
	}

	return reg, requests, nil
}

func requestsByName(reg *schema.Registry, cfg *config.Config) ([]request, error) {
	requests := make([]request, 0, len(cfg.Types))

	for _, name := range cfg.Types {
		rec, err := reg.Record(name)
		if err != nil {
			return nil, err
		}

		requests = append(requests, request{record: rec, prefix: cfg.Prefix, postfix: cfg.Postfix})
	}

	return requests, nil
}

func render(cfg *config.Config, inputs []*schema.Input) ([]byte, error) {
	switch cfg.Format {
	case config.FormatGo:
		return gen.Render(gen.GoFile(cfg.GoPackage, inputs))
	case config.FormatJSON:
		return gen.JSON(inputs)
	default:
		return []byte(gen.SDL(inputs)), nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
