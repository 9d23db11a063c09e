package classfile

import (
	"bytes"
	"encoding/binary"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ct "github.com/mabhi256/jlint/internal/classfile/classfiletest"
)

func TestParseClassFile(t *testing.T) {
	data := ct.NewClass("com/shop/Order").
		Interfaces("java/io/Serializable", "com/shop/Auditable").
		Long(42).
		Field(ct.Private, "items", "[Lcom/shop/Item;").
		Method(ct.Public, "<init>", "()V", ct.Local("this", "Lcom/shop/Order;")).
		Method(ct.Public, "total", "(I)J",
			ct.Local("this", "Lcom/shop/Order;"),
			ct.Local("discount", "I"),
			ct.Local("sum", "J")).
		Build()

	cf, err := ParseClassFile(data)
	require.NoError(t, err)

	assert.Equal(t, uint16(65), cf.MajorVersion)
	assert.Equal(t, "com/shop/Order", cf.ThisClass)
	assert.Equal(t, "java/lang/Object", cf.SuperClass)
	assert.Equal(t, []string{"java/io/Serializable", "com/shop/Auditable"}, cf.Interfaces)
	assert.True(t, cf.AccessFlags.Has(ACC_PUBLIC))

	require.Len(t, cf.Fields, 1)
	assert.Equal(t, "items", cf.Fields[0].Name)
	assert.Equal(t, "[Lcom/shop/Item;", cf.Fields[0].Descriptor)
	assert.Empty(t, cf.Fields[0].LocalVariables)

	require.Len(t, cf.Methods, 2)
	total := cf.Methods[1]
	assert.Equal(t, "total", total.Name)
	assert.Equal(t, "(I)J", total.Descriptor)
	require.Len(t, total.LocalVariables, 3)
	assert.Equal(t, "discount", total.LocalVariables[1].Name)
	assert.Equal(t, "I", total.LocalVariables[1].Descriptor)
}

func TestParseClassFileWithoutSuper(t *testing.T) {
	data := ct.NewClass("java/lang/Object").Super("").Build()

	cf, err := ParseClassFile(data)
	require.NoError(t, err)
	assert.Empty(t, cf.SuperClass)
}

func TestParseClassFileBadMagic(t *testing.T) {
	data := ct.NewClass("A").Build()
	data[0] = 0xDE

	_, err := ParseClassFile(data)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestParseClassFileModule(t *testing.T) {
	data := ct.NewClass("module-info").Super("").Access(ct.Module).Build()

	_, err := ParseClassFile(data)
	assert.ErrorIs(t, err, ErrNotAClass)
}

func TestParseClassFileTruncated(t *testing.T) {
	data := ct.NewClass("com/shop/Order").
		Method(ct.Public, "run", "()V", ct.Local("this", "Lcom/shop/Order;")).
		Build()

	for _, cut := range []int{3, 9, len(data) / 2, len(data) - 1} {
		_, err := ParseClassFile(data[:cut])
		assert.Error(t, err, "cut at %d", cut)
	}
}

// oversizedCodeClass is a complete class with one method whose Code attribute
// claims far more bytes than the file holds
func oversizedCodeClass() []byte {
	var buf bytes.Buffer
	writeU4(&buf, Magic)
	writeU2(&buf, 0)
	writeU2(&buf, 52)

	writeU2(&buf, 6)
	writeUtf8(&buf, "A")
	buf.WriteByte(byte(CONSTANT_Class))
	writeU2(&buf, 1)
	writeUtf8(&buf, "run")
	writeUtf8(&buf, "()V")
	writeUtf8(&buf, "Code")

	writeU2(&buf, 0x0021) // access
	writeU2(&buf, 2)      // this_class
	writeU2(&buf, 0)      // super_class
	writeU2(&buf, 0)      // interfaces
	writeU2(&buf, 0)      // fields
	writeU2(&buf, 1)      // methods
	writeU2(&buf, 0x0001)
	writeU2(&buf, 3)
	writeU2(&buf, 4)
	writeU2(&buf, 1) // method attributes
	writeU2(&buf, 5)
	writeU4(&buf, 0x7FFFFFF0)
	buf.Write([]byte{0, 1, 0, 1})

	return buf.Bytes()
}

func TestParseClassFileRejectsOversizedAttribute(t *testing.T) {
	data := oversizedCodeClass()

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err := ParseClassFile(data)
	runtime.ReadMemStats(&after)

	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorContains(t, err, "attribute Code")
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), "length must be checked before allocating")
}

func TestParseCodeRejectsOversizedCodeLength(t *testing.T) {
	var body bytes.Buffer
	writeU2(&body, 1) // max_stack
	writeU2(&body, 1) // max_locals
	writeU4(&body, 0xFFFFFFF0)
	body.WriteByte(0xB1)

	_, err := parseCode(body.Bytes(), &ConstantPool{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestBinaryReaderBounds(t *testing.T) {
	reader := NewBytesReader([]byte{1, 2, 3})
	assert.Equal(t, int64(3), reader.Remaining())

	_, err := reader.ReadNBytes(1 << 30)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, reader.Skip(4), io.ErrUnexpectedEOF)

	require.NoError(t, reader.Skip(1))
	b, err := reader.ReadNBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, b)
	assert.Equal(t, int64(0), reader.Remaining())

	assert.Equal(t, int64(-1), NewBinaryReader(bytes.NewReader(nil)).Remaining())
}

func TestParseConstantPoolUnknownTag(t *testing.T) {
	var buf bytes.Buffer
	writeU2(&buf, 2)
	buf.WriteByte(2) // tag 2 is unassigned

	_, err := ParseConstantPool(NewBytesReader(buf.Bytes()))
	assert.ErrorContains(t, err, "unknown constant tag")
}

func TestConstantPoolLongTakesTwoSlots(t *testing.T) {
	var buf bytes.Buffer
	writeU2(&buf, 5)
	buf.WriteByte(byte(CONSTANT_Long))
	buf.Write(make([]byte, 8))
	buf.WriteByte(byte(CONSTANT_Utf8))
	writeU2(&buf, 3)
	buf.WriteString("Foo")
	buf.WriteByte(byte(CONSTANT_Class))
	writeU2(&buf, 3)

	pool, err := ParseConstantPool(NewBytesReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 5, pool.Count())

	name, err := pool.ClassName(4)
	require.NoError(t, err)
	assert.Equal(t, "Foo", name)

	_, err = pool.Utf8(2)
	assert.ErrorContains(t, err, "unusable")
	_, err = pool.Utf8(4)
	assert.ErrorContains(t, err, "expected Utf8")
	_, err = pool.Utf8(9)
	assert.ErrorContains(t, err, "out of range")
}

func TestDecodeModifiedUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"ascii", []byte("hello"), "hello"},
		{"encoded nul", []byte{'a', 0xC0, 0x80, 'b'}, "a\x00b"},
		{"two byte", []byte{0xC3, 0xA9}, "é"},
		{"three byte", []byte{0xE2, 0x82, 0xAC}, "€"},
		// U+1F600 as a surrogate pair, each half three bytes
		{"surrogate pair", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80}, "😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeModifiedUTF8(tt.input))
		})
	}
}

func writeU2(buf *bytes.Buffer, v uint16) {
	_ = binary.Write(buf, binary.BigEndian, v)
}

func writeU4(buf *bytes.Buffer, v uint32) {
	_ = binary.Write(buf, binary.BigEndian, v)
}

func writeUtf8(buf *bytes.Buffer, s string) {
	buf.WriteByte(byte(CONSTANT_Utf8))
	writeU2(buf, uint16(len(s)))
	buf.WriteString(s)
}
