package convert

import (
	"fmt"

	"inputtype-generator/internal/common"
	"inputtype-generator/internal/diagnostic"
	"inputtype-generator/internal/schema"
)

// ConvertField converts one record field into an input field.
// Only the type and description survive; origin, arguments and deprecation
// are dropped.
func ConvertField(field schema.Field, ctx FieldContext) schema.Field {
	c := NewConverter(Options{Prefix: ctx.Prefix, Postfix: ctx.Postfix, Reporter: ctx.Reporter})
	return c.convertField(field, ctx)
}

func (c *Converter) convertField(field schema.Field, ctx FieldContext) schema.Field {
	base, wrappers := unwrap(field.Type)

	if !schema.IsInputType(base) {
		if rec, ok := base.(*schema.Record); ok {
			base = c.toInput(rec, ctx.Prefix, common.UpperFirst(ctx.FieldName)+ctx.Postfix)
		} else {
			path := schema.FieldPath(ctx.OutputTypeName, ctx.FieldName)
			c.reporter.Report(diagnostic.Diagnostic{
				Severity:  diagnostic.DiagnosticWarning,
				Code:      diagnostic.CodeUnconvertibleField,
				Message:   fmt.Sprintf("can not convert field '%s' to InputType", path),
				TypeName:  ctx.OutputTypeName,
				FieldPath: path,
			})

			base = schema.GenericType()
		}
	}

	return schema.Field{
		Name:        field.Name,
		Type:        rewrap(base, wrappers),
		Description: field.Description,
	}
}

// unwrap peels List/Required wrappers off t, outermost first.
func unwrap(t schema.Type) (schema.Type, []schema.Kind) {
	var wrappers []schema.Kind

	for {
		switch tt := t.(type) {
		case *schema.List:
			wrappers = append(wrappers, schema.KindList)
			t = tt.OfType
		case *schema.Required:
			wrappers = append(wrappers, schema.KindRequired)
			t = tt.OfType
		default:
			return t, wrappers
		}
	}
}

// rewrap applies wrappers recorded by unwrap back onto base, innermost first.
func rewrap(base schema.Type, wrappers []schema.Kind) schema.Type {
	for i := len(wrappers) - 1; i >= 0; i-- {
		switch wrappers[i] {
		case schema.KindList:
			base = schema.ListOf(base)
		case schema.KindRequired:
			base = schema.RequiredOf(base)
		}
	}

	return base
}
