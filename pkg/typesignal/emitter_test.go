package typesignal_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/typesignal/pkg/typesignal"
)

func TestTypeOf_StripsPointers(t *testing.T) {
	assert.Equal(t, typesignal.TypeOf[Order](), typesignal.TypeOf[*Order]())
	assert.Equal(t, typesignal.TypeOf[Order](), typesignal.TypeOf[**Order]())
}

func TestIsEmitter(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"direct embed", animalType, true},
		{"inherited embed", puppyType, true},
		{"pointer", reflect.TypeOf(&Dog{}), true},
		{"diamond with own marker", typesignal.TypeOf[Joined](), true},
		{"ambiguous promotion", typesignal.TypeOf[Ambiguous](), false},
		{"plain struct", typesignal.TypeOf[Plain](), false},
		{"marker itself", typesignal.TypeOf[typesignal.Emitter](), false},
		{"non struct", reflect.TypeOf(42), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, typesignal.IsEmitter(tt.typ))
		})
	}
}

func TestHub_Ancestors(t *testing.T) {
	h := typesignal.New()

	lineage, err := h.Ancestors(puppyType)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{puppyType, dogType, animalType}, lineage)
}

func TestHub_Ancestors_Diamond(t *testing.T) {
	h := typesignal.New()

	lineage, err := h.Ancestors(typesignal.TypeOf[Joined]())
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{
		typesignal.TypeOf[Joined](),
		typesignal.TypeOf[Left](),
		typesignal.TypeOf[Right](),
		typesignal.TypeOf[Base](),
	}, lineage)
}

func TestHub_Register_NotEmitter(t *testing.T) {
	h := typesignal.New()

	err := h.Register(typesignal.TypeOf[Plain]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, typesignal.ErrNotEmitter))

	var typeErr *typesignal.TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, typesignal.TypeOf[Plain](), typeErr.Type)
}

func TestHub_Register_RecordsSubtypes(t *testing.T) {
	h := typesignal.New()

	require.NoError(t, h.Register(dogType))
	require.NoError(t, h.Register(catType))
	require.NoError(t, h.Register(dogType))

	subs, err := h.Subtypes(animalType)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{dogType, catType}, subs)

	assert.Equal(t, []reflect.Type{animalType, dogType, catType}, h.Types())
	assert.False(t, h.Declared(dogType))
}

func TestHub_Register_Diamond(t *testing.T) {
	h := typesignal.New()
	joined := typesignal.TypeOf[Joined]()

	require.NoError(t, h.Register(joined))

	left, err := h.Subtypes(typesignal.TypeOf[Left]())
	require.NoError(t, err)
	right, err := h.Subtypes(typesignal.TypeOf[Right]())
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{joined}, left)
	assert.Equal(t, []reflect.Type{joined}, right)
}
