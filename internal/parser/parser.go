// Package parser provides tree-sitter-based structural parsing of Java
// source files. It extracts type declarations together with their Javadoc,
// annotations, fields, constructors, and methods — the raw facts consumed
// by the documentation pipeline.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Unit holds the structural facts of one parsed source file.
type Unit struct {
	Path    string
	Package string // dot-separated; empty for the default package
	Types   []TypeDecl
}

// TypeDecl describes one class or interface declaration.
type TypeDecl struct {
	Name         string
	Kind         string // "class" or "interface"
	Doc          string // Javadoc text with comment syntax stripped; empty if absent
	Annotations  []string
	Fields       []Field
	Constructors []Constructor
	Methods      []Method
}

// Field is a field declaration with its annotations and declared type.
type Field struct {
	Annotations []string
	Type        TypeRef
}

// Constructor holds the parameter list of one constructor declaration.
type Constructor struct {
	Params []Param
}

// Param is a single constructor parameter.
type Param struct {
	Name string
	Type TypeRef
}

// Method is a method declaration paired with its own Javadoc.
type Method struct {
	Name string
	Doc  string
}

// TypeRef is a declared type reference. Simple is true only for named
// class/interface types: primitives, arrays, and void are not simple, and
// a parameterized type resolves to its erased base name.
type TypeRef struct {
	Name   string
	Simple bool
}

// Parser wraps tree-sitter configured for Java. It is not safe for
// concurrent use; create one per goroutine.
type Parser struct {
	inner *sitter.Parser
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(java.GetLanguage())
	return &Parser{inner: p}
}

// ParseUnit parses Java source and returns its structural facts. It returns
// an error for non-.java filenames or when parsing fails. A unit without any
// type declaration is valid; callers decide how to handle it.
func (p *Parser) ParseUnit(filename string, source []byte) (*Unit, error) {
	if ext := filepath.Ext(filename); ext != ".java" {
		return nil, fmt.Errorf("unsupported file extension %q: expected .java", ext)
	}

	tree, err := p.inner.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	unit := &Unit{
		Path:    filename,
		Package: packageName(root, source),
	}

	// Preorder traversal, so an outer class precedes its nested types.
	walk(root, func(node *sitter.Node) {
		switch node.Type() {
		case "class_declaration":
			unit.Types = append(unit.Types, typeDecl(node, source, "class"))
		case "interface_declaration":
			unit.Types = append(unit.Types, typeDecl(node, source, "interface"))
		}
	})

	return unit, nil
}

// walk performs a depth-first traversal of the syntax tree, calling fn for each node.
func walk(node *sitter.Node, fn func(*sitter.Node)) {
	if node == nil {
		return
	}
	fn(node)
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil {
			walk(child, fn)
		}
	}
}

// packageName extracts the dot-separated package path from the compilation
// unit, or "" for the default package.
func packageName(root *sitter.Node, source []byte) string {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() != "package_declaration" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			id := child.NamedChild(j)
			if id.Type() == "scoped_identifier" || id.Type() == "identifier" {
				return id.Content(source)
			}
		}
	}
	return ""
}

// typeDecl extracts the facts of a single class or interface declaration.
// Only direct members of the declaration body are collected; nested types
// are visited separately by the caller's traversal.
func typeDecl(node *sitter.Node, source []byte, kind string) TypeDecl {
	decl := TypeDecl{
		Kind:        kind,
		Doc:         docComment(node, source),
		Annotations: annotationNames(node, source),
	}
	if name := node.ChildByFieldName("name"); name != nil {
		decl.Name = name.Content(source)
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return decl
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "field_declaration":
			decl.Fields = append(decl.Fields, field(member, source))
		case "constructor_declaration":
			decl.Constructors = append(decl.Constructors, constructor(member, source))
		case "method_declaration":
			decl.Methods = append(decl.Methods, method(member, source))
		}
	}
	return decl
}

func field(node *sitter.Node, source []byte) Field {
	f := Field{Annotations: annotationNames(node, source)}
	if t := node.ChildByFieldName("type"); t != nil {
		f.Type = typeRef(t, source)
	}
	return f
}

func constructor(node *sitter.Node, source []byte) Constructor {
	var c Constructor
	params := node.ChildByFieldName("parameters")
	if params == nil {
		return c
	}
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		if p.Type() != "formal_parameter" {
			continue
		}
		var param Param
		if n := p.ChildByFieldName("name"); n != nil {
			param.Name = n.Content(source)
		}
		if t := p.ChildByFieldName("type"); t != nil {
			param.Type = typeRef(t, source)
		}
		c.Params = append(c.Params, param)
	}
	return c
}

func method(node *sitter.Node, source []byte) Method {
	m := Method{Doc: docComment(node, source)}
	if name := node.ChildByFieldName("name"); name != nil {
		m.Name = name.Content(source)
	}
	return m
}

// annotationNames collects annotation names from the modifiers of a declaration.
func annotationNames(node *sitter.Node, source []byte) []string {
	var names []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			mod := child.NamedChild(j)
			switch mod.Type() {
			case "marker_annotation", "annotation":
				if name := mod.ChildByFieldName("name"); name != nil {
					names = append(names, name.Content(source))
				}
			}
		}
	}
	return names
}

// typeRef resolves a declared type node to a name. Parameterized types
// resolve to their base, qualified types to their rightmost segment.
// Everything else (primitives, arrays, void) is not a simple named type.
func typeRef(node *sitter.Node, source []byte) TypeRef {
	switch node.Type() {
	case "type_identifier":
		return TypeRef{Name: node.Content(source), Simple: true}
	case "generic_type":
		if base := node.NamedChild(0); base != nil {
			return typeRef(base, source)
		}
	case "scoped_type_identifier":
		text := node.Content(source)
		if idx := strings.LastIndex(text, "."); idx >= 0 {
			return TypeRef{Name: text[idx+1:], Simple: true}
		}
		return TypeRef{Name: text, Simple: true}
	}
	return TypeRef{Name: node.Content(source), Simple: false}
}

// docComment returns the Javadoc text of the block comment immediately
// preceding node, or "" when there is none.
func docComment(node *sitter.Node, source []byte) string {
	prev := node.PrevNamedSibling()
	if prev == nil {
		return ""
	}
	switch prev.Type() {
	case "block_comment", "comment":
	default:
		return ""
	}
	text := prev.Content(source)
	if !strings.HasPrefix(text, "/**") {
		return ""
	}
	return cleanJavadoc(text)
}

// cleanJavadoc strips the delimiters and leading asterisks from a Javadoc block.
func cleanJavadoc(text string) string {
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimSuffix(text, "*/")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
