package analyze

import (
	"errors"
	"fmt"
	"go/constant"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"inputtype-generator/internal/common"
	"inputtype-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Struct tags read by the analyzer.
const (
	tagJSON       = "json"
	tagDesc       = "desc"
	tagDeprecated = "deprecated"
	tagResolver   = "resolver"
)

// DateTime is the scalar time.Time fields map to.
var DateTime = &schema.Scalar{Name: "DateTime", Description: "RFC 3339 timestamp."}

// Analyzer loads Go packages and builds a schema registry.
type Analyzer struct {
	reg       *schema.Registry
	typeCache map[types.Type]schema.Named // Cache to handle recursive types
	opaque    map[string]*schema.Opaque
	enums     map[*types.TypeName][]string
	errs      []error
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		reg:       schema.NewRegistry(),
		typeCache: make(map[types.Type]schema.Named),
		opaque:    make(map[string]*schema.Opaque),
		enums:     make(map[*types.TypeName][]string),
	}
}

// LoadPackages loads the specified packages and registers their exported
// types. Patterns are standard Go package patterns (e.g. "./examples/blog").
func (a *Analyzer) LoadPackages(patterns ...string) (*schema.Registry, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Enum values must be known before any field refers to the enum type.
	for _, pkg := range pkgs {
		a.collectEnums(pkg.Types)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.Types)
	}

	if len(a.errs) > 0 {
		return nil, errors.Join(a.errs...)
	}

	return a.reg, nil
}

// Registry returns the registry built so far.
func (a *Analyzer) Registry() *schema.Registry {
	return a.reg
}

// collectEnums gathers exported constants of named basic types, in
// declaration order.
func (a *Analyzer) collectEnums(pkg *types.Package) {
	var consts []*types.Const

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !c.Exported() {
			continue
		}

		if named, ok := c.Type().(*types.Named); ok && named.Obj().Pkg() == pkg {
			consts = append(consts, c)
		}
	}

	sort.Slice(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })

	for _, c := range consts {
		obj := c.Type().(*types.Named).Obj()
		a.enums[obj] = append(a.enums[obj], enumValue(c))
	}
}

// enumValue uses the constant's value for string enums and its name otherwise.
func enumValue(c *types.Const) string {
	if c.Val().Kind() == constant.String {
		return constant.StringVal(c.Val())
	}

	return c.Name()
}

// processPackage registers every exported type declared in pkg.
func (a *Analyzer) processPackage(pkg *types.Package) {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		a.namedType(typeName.Type())
	}
}

// fieldType maps a Go field type: value types are required, pointers and
// slices are nullable.
func (a *Analyzer) fieldType(t types.Type) schema.Type {
	t = types.Unalias(t)

	if p, ok := t.(*types.Pointer); ok {
		return a.nullableType(p.Elem())
	}

	if _, ok := listElem(t); ok {
		return a.nullableType(t)
	}

	return schema.RequiredOf(a.nullableType(t))
}

func (a *Analyzer) nullableType(t types.Type) schema.Type {
	t = types.Unalias(t)

	if p, ok := t.(*types.Pointer); ok {
		return a.nullableType(p.Elem())
	}

	if elem, ok := listElem(t); ok {
		return schema.ListOf(a.fieldType(elem))
	}

	return a.namedType(t)
}

// listElem returns the element type of slices and arrays. Byte slices are
// treated as strings, not lists.
func listElem(t types.Type) (types.Type, bool) {
	var elem types.Type

	switch u := t.Underlying().(type) {
	case *types.Slice:
		elem = u.Elem()
	case *types.Array:
		elem = u.Elem()
	default:
		return nil, false
	}

	if b, ok := elem.(*types.Basic); ok && b.Kind() == types.Byte {
		return nil, false
	}

	return elem, true
}

// namedType analyzes t and returns the schema type it maps to.
func (a *Analyzer) namedType(t types.Type) schema.Named {
	t = types.Unalias(t)

	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	var out schema.Named

	switch tt := t.(type) {
	case *types.Named:
		out = a.analyzeNamedType(tt)
	case *types.Basic:
		out = basicScalar(tt)
		if out == nil {
			out = a.opaqueType(tt.Name())
		}
	case *types.Slice:
		// only []byte reaches here
		out = schema.String
	default:
		out = a.opaqueType(t.String())
	}

	a.typeCache[t] = out

	return out
}

// analyzeNamedType analyzes a named type. Records are cached before their
// fields are analyzed so self-references resolve to the same record.
func (a *Analyzer) analyzeNamedType(named *types.Named) schema.Named {
	obj := named.Obj()

	if obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time" {
		a.register(DateTime)
		return DateTime
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		rec := &schema.Record{Name: obj.Name(), Fields: schema.NewFieldMap()}
		a.typeCache[named] = rec
		a.register(rec)
		a.analyzeStructFields(ut, rec.Fields, map[*types.Struct]bool{ut: true})

		return rec

	case *types.Basic:
		if values, ok := a.enums[obj]; ok {
			enum := &schema.Enum{Name: obj.Name(), Values: values}
			a.register(enum)

			return enum
		}

		if s := basicScalar(ut); s != nil {
			return s
		}

		return a.opaqueType(obj.Name())

	case *types.Slice:
		if _, isList := listElem(named); isList {
			return a.opaqueType(obj.Name())
		}

		return schema.String

	case *types.Interface:
		iface := &schema.Interface{Name: obj.Name(), Fields: schema.NewFieldMap()}
		a.typeCache[named] = iface

		a.analyzeGetters(named, iface.Fields)

		if iface.Fields.Len() == 0 {
			return a.opaqueType(obj.Name())
		}

		a.register(iface)

		return iface

	default:
		return a.opaqueType(obj.Name())
	}
}

// analyzeStructFields adds the exported fields of st to fields, flattening
// embedded structs without a json name. Structs already on path are not
// flattened again.
func (a *Analyzer) analyzeStructFields(st *types.Struct, fields *schema.FieldMap, path map[*types.Struct]bool) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		tag := reflect.StructTag(st.Tag(i))

		name, skip := jsonName(field.Name(), tag)
		if skip {
			continue
		}

		if field.Embedded() && !hasJSONName(tag) {
			if embedded, ok := embeddedStruct(field.Type()); ok {
				if !path[embedded] {
					path[embedded] = true
					a.analyzeStructFields(embedded, fields, path)
					delete(path, embedded)
				}

				continue
			}
		}

		f := schema.Field{
			Type:              a.fieldType(field.Type()),
			Description:       tag.Get(tagDesc),
			DeprecationReason: tag.Get(tagDeprecated),
		}

		if _, ok := tag.Lookup(tagResolver); ok {
			f.Origin = schema.OriginResolverBound
		}

		fields.Set(name, f)
	}
}

// analyzeGetters adds one field per exported method taking no arguments and
// returning one value.
func (a *Analyzer) analyzeGetters(named *types.Named, fields *schema.FieldMap) {
	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		return
	}

	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		sig, ok := m.Type().(*types.Signature)
		if !ok || !m.Exported() || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			continue
		}

		fields.Set(common.LowerFirst(m.Name()), schema.Field{
			Type: a.fieldType(sig.Results().At(0).Type()),
		})
	}
}

func (a *Analyzer) opaqueType(name string) *schema.Opaque {
	if o, ok := a.opaque[name]; ok {
		return o
	}

	o := &schema.Opaque{Name: name}
	a.opaque[name] = o
	a.register(o)

	return o
}

func (a *Analyzer) register(t schema.Named) {
	if err := a.reg.Add(t); err != nil {
		a.errs = append(a.errs, err)
	}
}

// jsonName returns the wire name of a field and whether it is excluded
// with `json:"-"`.
func jsonName(goName string, tag reflect.StructTag) (string, bool) {
	value, ok := tag.Lookup(tagJSON)
	if !ok {
		return common.LowerFirst(goName), false
	}

	name, _, _ := strings.Cut(value, ",")
	if name == "-" {
		return "", true
	}

	if name == "" {
		return common.LowerFirst(goName), false
	}

	return name, false
}

// hasJSONName reports whether tag names the field explicitly, which keeps an
// embedded struct as a single named field.
func hasJSONName(tag reflect.StructTag) bool {
	name, _, _ := strings.Cut(tag.Get(tagJSON), ",")
	return name != "" && name != "-"
}

func embeddedStruct(t types.Type) (*types.Struct, bool) {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	st, ok := t.Underlying().(*types.Struct)

	return st, ok
}

// basicScalar maps Go basic types onto the built-in scalars, or returns nil.
func basicScalar(b *types.Basic) schema.Named {
	info := b.Info()

	switch {
	case info&types.IsBoolean != 0:
		return schema.Boolean
	case info&types.IsString != 0:
		return schema.String
	case info&types.IsInteger != 0:
		return schema.Int
	case info&types.IsFloat != 0:
		return schema.Float
	default:
		return nil
	}
}
