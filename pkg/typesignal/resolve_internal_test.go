package typesignal

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type rootT struct{ Emitter }
type midT struct{ rootT }
type leafT struct{ midT }

// loopT reaches itself through a pointer embed.
type loopT struct {
	Emitter
	*loopT
}

func TestLinearize(t *testing.T) {
	root, mid, leaf := reflect.TypeOf(rootT{}), reflect.TypeOf(midT{}), reflect.TypeOf(leafT{})
	assert.Equal(t, []reflect.Type{leaf, mid, root}, linearize(leaf))
	assert.Equal(t, []reflect.Type{root}, linearize(root))
}

func TestLinearize_SelfReference(t *testing.T) {
	loop := reflect.TypeOf(loopT{})
	assert.Equal(t, []reflect.Type{loop}, linearize(loop))
}

func TestMergeTables_LaterWins(t *testing.T) {
	root, mid := reflect.TypeOf(rootT{}), reflect.TypeOf(midT{})

	midTable := newTable(mid)
	midTable.entry("created", mid).cascade = true
	midTable.entry("updated", mid)

	rootTable := newTable(root)
	rootTable.entry("deleted", root)
	rootTable.entry("created", root)

	merged := mergeTables([]*Table{midTable, rootTable})
	assert.Equal(t, []Inherited{
		{Schema: Signal("created"), Origin: root},
		{Schema: Signal("updated"), Origin: mid},
		{Schema: Signal("deleted"), Origin: root},
	}, merged)
}

func TestMergeTables_Empty(t *testing.T) {
	assert.Empty(t, mergeTables(nil))
}

func TestOverlay(t *testing.T) {
	root, leaf := reflect.TypeOf(rootT{}), reflect.TypeOf(leafT{})

	out := overlay(leaf,
		[]Schema{Signal("a"), Cascading("b"), Cascading("a"), Cascading("c")},
		[]Inherited{{Schema: Signal("c"), Origin: root}, {Schema: Cascading("d"), Origin: root}},
	)
	assert.Equal(t, []Inherited{
		{Schema: Cascading("a"), Origin: leaf},
		{Schema: Cascading("b"), Origin: leaf},
		{Schema: Signal("c"), Origin: root},
		{Schema: Cascading("d"), Origin: root},
	}, out)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "base", typeName(nil))
	assert.Equal(t, "typesignal.rootT", typeName(reflect.TypeOf(rootT{})))
}

func TestDeclaredBy(t *testing.T) {
	assert.Nil(t, declaredBy(reflect.TypeOf(rootT{})))
}
