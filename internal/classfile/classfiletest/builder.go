// Package classfiletest assembles minimal class files in memory for tests
package classfiletest

import (
	"bytes"
	"encoding/binary"
)

const magic uint32 = 0xCAFEBABE

const (
	tagUtf8  = 1
	tagLong  = 5
	tagClass = 7
)

// Access flags, mirrored here so the package has no dependency on the parser
const (
	Public    uint16 = 0x0001
	Private   uint16 = 0x0002
	Static    uint16 = 0x0008
	Final     uint16 = 0x0010
	Super     uint16 = 0x0020
	Interface uint16 = 0x0200
	Abstract  uint16 = 0x0400
	Synthetic uint16 = 0x1000
	Module    uint16 = 0x8000
)

type LocalVar struct {
	Name       string
	Descriptor string
}

func Local(name, desc string) LocalVar {
	return LocalVar{Name: name, Descriptor: desc}
}

type member struct {
	access uint16
	name   string
	desc   string
	locals []LocalVar
}

// Builder writes the class body first so every constant it interns is known
// before the pool is emitted
type Builder struct {
	pool      bytes.Buffer
	poolCount uint16
	utf8      map[string]uint16
	classes   map[string]uint16

	access     uint16
	this       string
	super      string
	interfaces []string
	fields     []member
	methods    []member
	longs      []int64
}

// NewClass starts a public class extending java/lang/Object. name is in internal form.
func NewClass(name string) *Builder {
	return &Builder{
		poolCount: 1,
		utf8:      map[string]uint16{},
		classes:   map[string]uint16{},
		access:    Public | Super,
		this:      name,
		super:     "java/lang/Object",
	}
}

func (b *Builder) Access(access uint16) *Builder {
	b.access = access
	return b
}

// Super sets the super class; empty writes index 0
func (b *Builder) Super(name string) *Builder {
	b.super = name
	return b
}

func (b *Builder) Interfaces(names ...string) *Builder {
	b.interfaces = append(b.interfaces, names...)
	return b
}

func (b *Builder) Field(access uint16, name, desc string) *Builder {
	b.fields = append(b.fields, member{access: access, name: name, desc: desc})
	return b
}

// Method adds a method with a Code attribute unless it is abstract. Locals go
// into a LocalVariableTable.
func (b *Builder) Method(access uint16, name, desc string, locals ...LocalVar) *Builder {
	b.methods = append(b.methods, member{access: access, name: name, desc: desc, locals: locals})
	return b
}

// Long adds a two-slot constant ahead of everything else
func (b *Builder) Long(v int64) *Builder {
	b.longs = append(b.longs, v)
	return b
}

func (b *Builder) internUtf8(s string) uint16 {
	if idx, ok := b.utf8[s]; ok {
		return idx
	}
	idx := b.poolCount
	b.pool.WriteByte(tagUtf8)
	writeU2(&b.pool, uint16(len(s)))
	b.pool.WriteString(s)
	b.poolCount++
	b.utf8[s] = idx
	return idx
}

func (b *Builder) internClass(name string) uint16 {
	if idx, ok := b.classes[name]; ok {
		return idx
	}
	nameIdx := b.internUtf8(name)
	idx := b.poolCount
	b.pool.WriteByte(tagClass)
	writeU2(&b.pool, nameIdx)
	b.poolCount++
	b.classes[name] = idx
	return idx
}

func (b *Builder) Build() []byte {
	for _, v := range b.longs {
		b.pool.WriteByte(tagLong)
		_ = binary.Write(&b.pool, binary.BigEndian, v)
		b.poolCount += 2
	}

	var body bytes.Buffer
	writeU2(&body, b.access)
	writeU2(&body, b.internClass(b.this))
	if b.super == "" {
		writeU2(&body, 0)
	} else {
		writeU2(&body, b.internClass(b.super))
	}

	writeU2(&body, uint16(len(b.interfaces)))
	for _, iface := range b.interfaces {
		writeU2(&body, b.internClass(iface))
	}

	b.writeMembers(&body, b.fields, false)
	b.writeMembers(&body, b.methods, true)

	writeU2(&body, 1)
	writeU2(&body, b.internUtf8("SourceFile"))
	writeU4(&body, 2)
	writeU2(&body, b.internUtf8("Test.java"))

	var out bytes.Buffer
	writeU4(&out, magic)
	writeU2(&out, 0)
	writeU2(&out, 65)
	writeU2(&out, b.poolCount)
	out.Write(b.pool.Bytes())
	out.Write(body.Bytes())
	return out.Bytes()
}

func (b *Builder) writeMembers(out *bytes.Buffer, members []member, withCode bool) {
	writeU2(out, uint16(len(members)))
	for _, m := range members {
		writeU2(out, m.access)
		writeU2(out, b.internUtf8(m.name))
		writeU2(out, b.internUtf8(m.desc))

		if !withCode || m.access&Abstract != 0 {
			writeU2(out, 0)
			continue
		}

		writeU2(out, 1)
		writeU2(out, b.internUtf8("Code"))
		code := b.codeAttribute(m.locals)
		writeU4(out, uint32(len(code)))
		out.Write(code)
	}
}

func (b *Builder) codeAttribute(locals []LocalVar) []byte {
	var code bytes.Buffer
	writeU2(&code, 1)    // max_stack
	writeU2(&code, 1)    // max_locals
	writeU4(&code, 1)    // code_length
	code.WriteByte(0xB1) // return
	writeU2(&code, 1)    // exception_table_length
	code.Write(make([]byte, 8))

	if len(locals) == 0 {
		writeU2(&code, 0)
		return code.Bytes()
	}

	var table bytes.Buffer
	writeU2(&table, uint16(len(locals)))
	for i, local := range locals {
		writeU2(&table, 0)
		writeU2(&table, 1)
		writeU2(&table, b.internUtf8(local.Name))
		writeU2(&table, b.internUtf8(local.Descriptor))
		writeU2(&table, uint16(i))
	}

	writeU2(&code, 2)
	writeU2(&code, b.internUtf8("LineNumberTable"))
	writeU4(&code, 2)
	writeU2(&code, 0)

	writeU2(&code, b.internUtf8("LocalVariableTable"))
	writeU4(&code, uint32(table.Len()))
	code.Write(table.Bytes())
	return code.Bytes()
}

func writeU2(buf *bytes.Buffer, v uint16) {
	_ = binary.Write(buf, binary.BigEndian, v)
}

func writeU4(buf *bytes.Buffer, v uint32) {
	_ = binary.Write(buf, binary.BigEndian, v)
}
