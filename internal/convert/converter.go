package convert

import (
	"fmt"

	"inputtype-generator/internal/diagnostic"
	"inputtype-generator/internal/schema"
)

// Converter converts records into input types. A Converter is not safe for
// concurrent use.
type Converter struct {
	opts     Options
	reporter diagnostic.Reporter

	// built maps (source, derived name) to the input type produced for it.
	// Entries are added before the record's fields are converted.
	built map[visitKey]*schema.Input
	// active holds the records currently being converted on the call stack.
	active map[*schema.Record]*schema.Input
}

type visitKey struct {
	source *schema.Record
	name   string
}

// NewConverter creates a Converter for opts.
func NewConverter(opts Options) *Converter {
	opts = opts.withDefaults()

	return &Converter{
		opts:     opts,
		reporter: opts.Reporter,
		built:    make(map[visitKey]*schema.Input),
		active:   make(map[*schema.Record]*schema.Input),
	}
}

// ToInputType converts rec into a new input type named
// opts.Prefix + rec.Name + opts.Postfix.
func ToInputType(rec *schema.Record, opts Options) *schema.Input {
	return NewConverter(opts).Convert(rec)
}

// Convert converts rec using the converter's options. Input types built by
// earlier Convert calls on the same Converter are reused. A nil record
// yields nil.
func (c *Converter) Convert(rec *schema.Record) *schema.Input {
	if rec == nil {
		return nil
	}

	return c.toInput(rec, c.opts.Prefix, c.opts.Postfix)
}

func (c *Converter) toInput(rec *schema.Record, prefix, postfix string) *schema.Input {
	if postfix == "" {
		postfix = DefaultPostfix
	}

	if in, ok := c.active[rec]; ok {
		c.reporter.Report(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticInfo,
			Code:     diagnostic.CodeCycle,
			Message:  fmt.Sprintf("record '%s' refers back to itself; reusing %s", rec.Name, in.Name),
			TypeName: rec.Name,
		})

		return in
	}

	name := prefix + rec.Name + postfix
	key := visitKey{source: rec, name: name}

	if in, ok := c.built[key]; ok {
		return in
	}

	cacheKey := CacheKey{Source: rec, Prefix: prefix, Postfix: postfix}
	if c.opts.Cache != nil {
		if in, ok := c.opts.Cache.Get(cacheKey); ok {
			c.built[key] = in
			return in
		}
	}

	in := &schema.Input{Name: name, Fields: schema.NewFieldMap()}
	c.built[key] = in
	c.active[rec] = in

	defer delete(c.active, rec)

	fields := schema.NewFieldMap()
	for fieldName, f := range FilterConvertibleFields(schema.FieldsOf(rec)).All() {
		fields.Set(fieldName, c.convertField(f, FieldContext{
			Prefix:         prefix,
			Postfix:        postfix,
			FieldName:      fieldName,
			OutputTypeName: rec.Name,
		}))
	}

	// SetFields cannot fail for an *Input.
	_ = schema.SetFields(in, fields)

	if c.opts.Cache != nil {
		c.opts.Cache.Add(cacheKey, in)
	}

	return in
}
