package classfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldDescriptor(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"I", "int"},
		{"Z", "boolean"},
		{"J", "long"},
		{"Ljava/lang/String;", "String"},
		{"Lcom/shop/Product;", "Product"},
		{"[Lcom/shop/Product;", "Product[]"},
		{"[[I", "int[][]"},
		{"Lcom/shop/Outer$Inner;", "Outer$Inner"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := ParseFieldDescriptor(tt.desc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFieldDescriptorErrors(t *testing.T) {
	for _, desc := range []string{"", "[", "Q", "Lcom/shop/Product", "II", "[V"} {
		_, err := ParseFieldDescriptor(desc)
		assert.Error(t, err, desc)
	}
}

func TestParseMethodDescriptor(t *testing.T) {
	params, ret, err := ParseMethodDescriptor("(I[Ljava/lang/String;Lcom/shop/Cart;)V")
	require.NoError(t, err)
	assert.Equal(t, []string{"int", "String[]", "Cart"}, params)
	assert.Equal(t, "void", ret)

	params, ret, err = ParseMethodDescriptor("()[Lcom/shop/Item;")
	require.NoError(t, err)
	assert.Empty(t, params)
	assert.Equal(t, "Item[]", ret)
}

func TestParseMethodDescriptorErrors(t *testing.T) {
	for _, desc := range []string{"", "V", "(I", "(I)", "(X)V", "()VV"} {
		_, _, err := ParseMethodDescriptor(desc)
		assert.Error(t, err, desc)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Product", SimpleName("com/shop/Product"))
	assert.Equal(t, "Product", SimpleName("com.shop.Product"))
	assert.Equal(t, "Product", SimpleName("Product"))
	assert.Equal(t, "com.shop", PackageName("com/shop/Product"))
	assert.Equal(t, "", PackageName("Product"))
}
