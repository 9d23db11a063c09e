package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ct "github.com/mabhi256/jlint/internal/classfile/classfiletest"
	"github.com/mabhi256/jlint/internal/graph"
)

func writeFile(t *testing.T, dir, rel string, data []byte) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func shopDir(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, dir, "com/shop/Order.class", ct.NewClass("com/shop/Order").
		Field(ct.Private, "customer", "Lcom/shop/Customer;").
		Build())
	writeFile(t, dir, "com/shop/Customer.class", ct.NewClass("com/shop/Customer").
		Field(ct.Private, "orders", "[Lcom/shop/Order;").
		Build())
	writeFile(t, dir, "com/shop/package-info.class", ct.NewClass("com/shop/package-info").
		Access(ct.Interface|ct.Abstract|ct.Synthetic).
		Build())
	writeFile(t, dir, "com/shop/README.txt", []byte("not a class"))
	return dir
}

func TestLoadLexicalOrder(t *testing.T) {
	dir := shopDir(t)

	units, problems, err := New(nil).Load(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, problems)

	var paths []string
	for _, u := range units {
		paths = append(paths, u.Path)
	}
	assert.Equal(t, []string{
		"com/shop/Customer.class",
		"com/shop/Order.class",
		"com/shop/package-info.class",
	}, paths)
}

func TestLoadIgnorePatterns(t *testing.T) {
	dir := shopDir(t)
	writeFile(t, dir, "generated/Stub.class", ct.NewClass("Stub").Build())
	writeFile(t, dir, IgnoreFileName, []byte("package-info.class\n"))

	units, _, err := New(nil).Load(dir, []string{"generated/"})
	require.NoError(t, err)

	require.Len(t, units, 2)
	assert.Equal(t, "com/shop/Customer.class", units[0].Path)
	assert.Equal(t, "com/shop/Order.class", units[1].Path)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := New(nil).Load(filepath.Join(dir, "missing"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	file := filepath.Join(dir, "A.class")
	require.NoError(t, os.WriteFile(file, ct.NewClass("A").Build(), 0644))
	_, _, err = New(nil).Load(file, nil)
	assert.ErrorIs(t, err, ErrNotDirectory)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.Mkdir(empty, 0755))
	_, _, err = New(nil).Load(empty, nil)
	assert.ErrorIs(t, err, ErrNoClassFiles)
}

func TestBuild(t *testing.T) {
	dir := shopDir(t)
	writeFile(t, dir, "broken/Bad.class", []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00})

	ctx, problems, err := New(nil).LoadContext(dir, nil, false)
	require.NoError(t, err)

	require.Len(t, problems, 1)
	assert.Equal(t, "broken/Bad.class", problems[0].Path)

	require.Equal(t, 2, ctx.ClassCount())
	assert.Equal(t, "Customer", ctx.Classes[0].Name)
	assert.Equal(t, "Order", ctx.Classes[1].Name)
	assert.Equal(t, dir, ctx.Path)
	assert.Equal(t, "com/shop/Order.class", ctx.Sources["Order"])
	assert.NotEmpty(t, ctx.Bytecode["Customer"])

	assert.Equal(t, graph.HAS_A, ctx.Matrix.Get("Order", "Customer"))
	assert.Equal(t, graph.HAS_MANY, ctx.Matrix.Get("Customer", "Order"))
}

func TestBuildDuplicateSimpleNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "com/legacy/Order.class", ct.NewClass("com/legacy/Order").
		Field(ct.Private, "invoice", "Lcom/legacy/Invoice;").
		Build())
	writeFile(t, dir, "com/legacy/Invoice.class", ct.NewClass("com/legacy/Invoice").Build())
	writeFile(t, dir, "com/shop/Order.class", ct.NewClass("com/shop/Order").
		Field(ct.Private, "customer", "Lcom/shop/Customer;").
		Build())
	writeFile(t, dir, "com/shop/Customer.class", ct.NewClass("com/shop/Customer").Build())

	var logs bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Warn, DisableTime: true})

	ctx, problems, err := New(log).LoadContext(dir, nil, false)
	require.NoError(t, err)
	assert.Empty(t, problems)

	require.Equal(t, 4, ctx.ClassCount())
	assert.Equal(t, "com.legacy.Order", ctx.Classes[1].QualifiedName())
	assert.Equal(t, "com.shop.Order", ctx.Classes[3].QualifiedName())

	// both classes share the row of the first Order
	assert.Equal(t, 1, ctx.Matrix.Index("Order"))
	assert.Equal(t, graph.HAS_A, ctx.Matrix.Get("Order", "Invoice"))
	assert.Equal(t, graph.HAS_A, ctx.Matrix.Get("Order", "Customer"))
	assert.Equal(t, []graph.Edge{
		{From: "Order", To: "Invoice", Kind: graph.HAS_A},
		{From: "Order", To: "Customer", Kind: graph.HAS_A},
	}, ctx.Matrix.Edges())

	assert.Equal(t, "com/legacy/Order.class", ctx.Sources["Order"])
	assert.Contains(t, logs.String(), "duplicate class name")
	assert.Contains(t, logs.String(), "com/shop/Order.class")
}
