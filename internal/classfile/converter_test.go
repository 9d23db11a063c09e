package classfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ct "github.com/mabhi256/jlint/internal/classfile/classfiletest"

	"github.com/mabhi256/jlint/internal/model"
)

func TestConvertClass(t *testing.T) {
	data := ct.NewClass("com/shop/Cart").
		Super("com/shop/Container").
		Interfaces("com/shop/Priced").
		Field(ct.Public|ct.Static|ct.Final, "MAX_ITEMS", "I").
		Field(ct.Private, "items", "[Lcom/shop/Item;").
		Method(ct.Public, "<init>", "()V", ct.Local("this", "Lcom/shop/Cart;")).
		Method(ct.Public, "add", "(Lcom/shop/Item;I)Z",
			ct.Local("this", "Lcom/shop/Cart;"),
			ct.Local("item", "Lcom/shop/Item;"),
			ct.Local("qty", "I"),
			ct.Local("receipt", "Lcom/shop/Receipt;")).
		Build()

	cls, err := NewConverter(nil).ConvertClass(data)
	require.NoError(t, err)

	assert.Equal(t, "Cart", cls.Name)
	assert.Equal(t, "com.shop", cls.Package)
	assert.Equal(t, "com.shop.Cart", cls.QualifiedName())
	assert.Equal(t, "Container", cls.SuperType)
	assert.Equal(t, []string{"Priced"}, cls.Interfaces)
	assert.True(t, cls.IsPublic)
	assert.True(t, cls.IsConcrete())

	require.Len(t, cls.Fields, 2)
	assert.Equal(t, &model.FieldModel{
		Name: "MAX_ITEMS", OwnerName: "Cart", Type: "int",
		IsPublic: true, IsFinal: true, IsStatic: true,
	}, cls.Fields[0])
	assert.Equal(t, "Item[]", cls.Fields[1].Type)

	require.Len(t, cls.Methods, 2)
	assert.True(t, cls.Methods[0].IsConstructor())
	assert.Empty(t, cls.Methods[0].Variables)

	add := cls.Methods[1]
	assert.Equal(t, "boolean", add.ReturnType)
	assert.Equal(t, []string{"Item", "int"}, add.ParameterTypes)
	require.Len(t, add.Variables, 3)
	assert.Equal(t, &model.VariableModel{Name: "receipt", Type: "Receipt"}, add.Variables[2])
}

func TestConvertRootSuperType(t *testing.T) {
	cls, err := NewConverter(nil).ConvertClass(ct.NewClass("Plain").Build())
	require.NoError(t, err)
	assert.Equal(t, model.RootObject, cls.SuperType)
	assert.Empty(t, cls.Package)
}

func TestConvertInterface(t *testing.T) {
	data := ct.NewClass("com/shop/Priced").
		Access(ct.Public|ct.Interface|ct.Abstract).
		Method(ct.Public|ct.Abstract, "price", "()D").
		Build()

	cls, err := NewConverter(nil).ConvertClass(data)
	require.NoError(t, err)
	assert.True(t, cls.IsInterface)
	assert.False(t, cls.IsConcrete())
	require.Len(t, cls.Methods, 1)
	assert.True(t, cls.Methods[0].IsAbstract)
	assert.Equal(t, "double", cls.Methods[0].ReturnType)
}

func TestConvertSyntheticMembers(t *testing.T) {
	data := ct.NewClass("Outer$Inner").
		Field(ct.Final|ct.Synthetic, "this$0", "LOuter;").
		Method(ct.Private|ct.Static|ct.Synthetic, "lambda$run$0", "()V").
		Method(ct.Public, "run", "()V").
		Build()

	cls, err := NewConverter(nil).ConvertClass(data)
	require.NoError(t, err)
	assert.Empty(t, cls.Fields)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "run", cls.Methods[0].Name)

	cls, err = NewConverter(nil, WithSynthetic(true)).ConvertClass(data)
	require.NoError(t, err)
	assert.Len(t, cls.Fields, 1)
	assert.Len(t, cls.Methods, 2)
}

func TestConvertPackageInfo(t *testing.T) {
	data := ct.NewClass("com/shop/package-info").
		Access(ct.Interface|ct.Abstract|ct.Synthetic).
		Build()

	_, err := NewConverter(nil).ConvertClass(data)
	assert.ErrorIs(t, err, ErrNotAClass)
}

func TestConvertBadDescriptor(t *testing.T) {
	data := ct.NewClass("Broken").Field(ct.Private, "x", "Q").Build()

	_, err := NewConverter(nil).ConvertClass(data)
	assert.ErrorContains(t, err, "field x")
}
