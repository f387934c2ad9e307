package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eternity-tn/eldocs/internal/parser"
)

func TestExtractNilUnit(t *testing.T) {
	assert.Nil(t, Extract(nil))
}

func TestExtractNoTypes(t *testing.T) {
	assert.Nil(t, Extract(&parser.Unit{Package: "com.example"}))
}

func TestExtractTakesFirstType(t *testing.T) {
	unit := &parser.Unit{
		Package: "com.example",
		Types: []parser.TypeDecl{
			{Name: "Outer", Kind: "class", Doc: "The outer type."},
			{Name: "Inner", Kind: "class"},
		},
	}

	su := Extract(unit)
	require.NotNil(t, su)
	assert.Equal(t, "Outer", su.Name)
	assert.Equal(t, "The outer type.", su.Doc)
	assert.Equal(t, "com.example", su.Package)
}

func TestExtractPlaceholderForMissingDoc(t *testing.T) {
	unit := &parser.Unit{
		Types: []parser.TypeDecl{{Name: "Widget", Kind: "class"}},
	}

	su := Extract(unit)
	require.NotNil(t, su)
	assert.Equal(t, "No description.", su.Doc)
}

func TestExtractMethodDocsStayEmpty(t *testing.T) {
	unit := &parser.Unit{
		Types: []parser.TypeDecl{{
			Name: "Widget",
			Kind: "class",
			Methods: []parser.Method{
				{Name: "render", Doc: "Renders the widget."},
				{Name: "reset"},
			},
		}},
	}

	su := Extract(unit)
	require.NotNil(t, su)
	require.Len(t, su.Methods, 2)
	assert.Equal(t, MethodFact{Name: "render", Doc: "Renders the widget."}, su.Methods[0])
	assert.Equal(t, MethodFact{Name: "reset", Doc: ""}, su.Methods[1], "missing method doc must not get the placeholder")
}
