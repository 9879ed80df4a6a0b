package schemafile

import (
	"errors"
	"fmt"
	"strings"

	"inputtype-generator/internal/match"
	"inputtype-generator/internal/schema"
)

// TypeRef is a parsed type expression. Exactly one of Name and OfType is set.
type TypeRef struct {
	Name     string
	OfType   *TypeRef
	Required bool
}

// ParseTypeRef parses a type expression such as "ID!", "[String]" or
// "[[Int!]]!".
func ParseTypeRef(expr string) (TypeRef, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return TypeRef{}, errors.New("empty type expression")
	}

	var ref TypeRef

	if strings.HasSuffix(s, "!") {
		ref.Required = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "!"))

		if s == "" || strings.HasSuffix(s, "!") {
			return TypeRef{}, fmt.Errorf("invalid type expression %q: misplaced '!'", expr)
		}
	}

	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") {
			return TypeRef{}, fmt.Errorf("invalid type expression %q: unbalanced brackets", expr)
		}

		inner, err := ParseTypeRef(s[1 : len(s)-1])
		if err != nil {
			return TypeRef{}, fmt.Errorf("invalid type expression %q: %w", expr, err)
		}

		ref.OfType = &inner

		return ref, nil
	}

	if !isValidIdent(s) {
		return TypeRef{}, fmt.Errorf("invalid type expression %q: invalid type name %q", expr, s)
	}

	ref.Name = s

	return ref, nil
}

// String returns the canonical expression for r.
func (r TypeRef) String() string {
	s := r.Name
	if r.OfType != nil {
		s = "[" + r.OfType.String() + "]"
	}

	if r.Required {
		s += "!"
	}

	return s
}

// Resolve builds the schema type for r, looking named types up in reg.
func (r TypeRef) Resolve(reg *schema.Registry) (schema.Type, error) {
	var t schema.Type

	if r.OfType != nil {
		inner, err := r.OfType.Resolve(reg)
		if err != nil {
			return nil, err
		}

		t = schema.ListOf(inner)
	} else {
		named := reg.Get(r.Name)
		if named == nil {
			return nil, fmt.Errorf("%w: %s%s", schema.ErrUnknownType, r.Name, match.DidYouMean(r.Name, reg.Names()))
		}

		t = named
	}

	if r.Required {
		t = schema.RequiredOf(t)
	}

	return t, nil
}

// isValidIdent checks if a string is a valid schema name.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isLetter(r) && r != '_' {
				return false
			}
		} else if !isLetter(r) && !isDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
