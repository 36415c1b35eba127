// Package scan finds bind-tagged struct fields and generates the
// property registrations for them.
package scan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Property is one bind-tagged struct field found by a scan.
type Property struct {
	// Struct is the declaring struct's type name.
	Struct string
	// Field is the Go field name.
	Field string
	// Tag is the name from the field's bind tag.
	Tag string
}

// Name returns the property name registered at runtime,
// e.g. "player.Track.title".
func (p Property) Name(pkg string) string {
	return pkg + "." + p.Struct + "." + p.Tag
}

// VarName returns the generated variable name, e.g. PropertyTrackTitle.
func (p Property) VarName(prefix string) string {
	return prefix + exportName(p.Struct) + exportName(p.Tag)
}

// Result is the outcome of scanning one package directory.
type Result struct {
	// Package is the Go package name.
	Package string
	// Dir is the scanned directory.
	Dir string
	// Properties holds the tagged fields in declaration order.
	Properties []Property
}

// Dir scans the non-test Go files of a directory for struct fields
// carrying a `bind:"<name>"` tag. Generated files are skipped, so a
// rerun never scans its own output.
func Dir(dir string) (*Result, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, "_gen.go")
	}, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", dir, err)
	}

	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no Go packages in %s", dir)
	}
	sort.Strings(names)
	if len(names) > 1 {
		return nil, fmt.Errorf("multiple packages in %s: %s", dir, strings.Join(names, ", "))
	}

	result := &Result{Package: names[0], Dir: dir}
	pkg := pkgs[names[0]]

	// Walk files in name order so output is deterministic.
	files := make([]string, 0, len(pkg.Files))
	for path := range pkg.Files {
		files = append(files, path)
	}
	sort.Strings(files)

	seen := map[string]string{}
	for _, path := range files {
		for _, p := range fileProperties(pkg.Files[path]) {
			name := p.Name(result.Package)
			if prev, dup := seen[name]; dup {
				return nil, fmt.Errorf("property %q declared by both %s.%s and %s",
					name, p.Struct, p.Field, prev)
			}
			seen[name] = p.Struct + "." + p.Field
			result.Properties = append(result.Properties, p)
		}
	}
	return result, nil
}

// fileProperties collects bind-tagged fields from one file.
func fileProperties(file *ast.File) []Property {
	var props []Property
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok || st.Fields == nil {
				continue
			}
			for _, field := range st.Fields.List {
				tag, ok := bindTag(field)
				if !ok {
					continue
				}
				for _, name := range fieldNames(field) {
					props = append(props, Property{
						Struct: ts.Name.Name,
						Field:  name,
						Tag:    tag,
					})
				}
			}
		}
	}
	return props
}

// bindTag extracts the bind tag value from a struct field, if any.
func bindTag(field *ast.Field) (string, bool) {
	if field.Tag == nil {
		return "", false
	}
	raw, err := strconv.Unquote(field.Tag.Value)
	if err != nil {
		return "", false
	}
	tag, ok := reflect.StructTag(raw).Lookup("bind")
	if !ok || tag == "" || tag == "-" {
		return "", false
	}
	return tag, true
}

// fieldNames returns the declared names of a field. Embedded fields
// have none and are skipped.
func fieldNames(field *ast.Field) []string {
	names := make([]string, 0, len(field.Names))
	for _, ident := range field.Names {
		names = append(names, ident.Name)
	}
	return names
}

// exportName upper-cases the first letter of each dot- or
// underscore-separated segment, e.g. "play_count" -> "PlayCount".
func exportName(s string) string {
	var sb strings.Builder
	upper := true
	for _, r := range s {
		switch r {
		case '.', '_', '-':
			upper = true
		default:
			if upper {
				sb.WriteRune(unicode.ToUpper(r))
				upper = false
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// EmitOptions configures generated output.
type EmitOptions struct {
	// Prefix is prepended to variable names.
	Prefix string
	// ObserveImport is the observe package import path.
	ObserveImport string
	// ImportPath is the scanned package's own import path, recorded in
	// the header. May be empty.
	ImportPath string
}

// Emit renders the generated registrations file for a scan result.
// Results without properties produce no output.
func Emit(result *Result, opts EmitOptions) []byte {
	if result == nil || len(result.Properties) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by bindgen; DO NOT EDIT.\n")
	if opts.ImportPath != "" {
		sb.WriteString("// Source: " + opts.ImportPath + "\n")
	}
	sb.WriteString("\npackage " + result.Package + "\n\n")
	sb.WriteString("import " + strconv.Quote(opts.ObserveImport) + "\n\n")
	sb.WriteString("// Property keys for bind-tagged fields.\n")
	sb.WriteString("var (\n")

	width := 0
	for _, p := range result.Properties {
		if n := len(p.VarName(opts.Prefix)); n > width {
			width = n
		}
	}
	for _, p := range result.Properties {
		sb.WriteString(fmt.Sprintf("\t%-*s = observe.RegisterProperty(%s)\n",
			width, p.VarName(opts.Prefix), strconv.Quote(p.Name(result.Package))))
	}
	sb.WriteString(")\n")
	return []byte(sb.String())
}

// OutputPath returns where the generated file for a result belongs.
func OutputPath(result *Result, filename string) string {
	return filepath.Join(result.Dir, filename)
}
