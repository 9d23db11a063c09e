package classfile

import (
	"errors"
	"fmt"
)

/*
*	Class file format described here
*	https://docs.oracle.com/javase/specs/jvms/se21/html/jvms-4.html
 */

const Magic uint32 = 0xCAFEBABE

var (
	ErrBadMagic  = errors.New("not a class file: bad magic number")
	ErrNotAClass = errors.New("not a class: module or package descriptor")
)

type ConstantTag uint8

const (
	CONSTANT_Utf8               ConstantTag = 1
	CONSTANT_Integer            ConstantTag = 3
	CONSTANT_Float              ConstantTag = 4
	CONSTANT_Long               ConstantTag = 5
	CONSTANT_Double             ConstantTag = 6
	CONSTANT_Class              ConstantTag = 7
	CONSTANT_String             ConstantTag = 8
	CONSTANT_Fieldref           ConstantTag = 9
	CONSTANT_Methodref          ConstantTag = 10
	CONSTANT_InterfaceMethodref ConstantTag = 11
	CONSTANT_NameAndType        ConstantTag = 12
	CONSTANT_MethodHandle       ConstantTag = 15
	CONSTANT_MethodType         ConstantTag = 16
	CONSTANT_Dynamic            ConstantTag = 17
	CONSTANT_InvokeDynamic      ConstantTag = 18
	CONSTANT_Module             ConstantTag = 19
	CONSTANT_Package            ConstantTag = 20
)

func (t ConstantTag) String() string {
	switch t {
	case CONSTANT_Utf8:
		return "Utf8"
	case CONSTANT_Integer:
		return "Integer"
	case CONSTANT_Float:
		return "Float"
	case CONSTANT_Long:
		return "Long"
	case CONSTANT_Double:
		return "Double"
	case CONSTANT_Class:
		return "Class"
	case CONSTANT_String:
		return "String"
	case CONSTANT_Fieldref:
		return "Fieldref"
	case CONSTANT_Methodref:
		return "Methodref"
	case CONSTANT_InterfaceMethodref:
		return "InterfaceMethodref"
	case CONSTANT_NameAndType:
		return "NameAndType"
	case CONSTANT_MethodHandle:
		return "MethodHandle"
	case CONSTANT_MethodType:
		return "MethodType"
	case CONSTANT_Dynamic:
		return "Dynamic"
	case CONSTANT_InvokeDynamic:
		return "InvokeDynamic"
	case CONSTANT_Module:
		return "Module"
	case CONSTANT_Package:
		return "Package"
	default:
		return fmt.Sprintf("ConstantTag(%d)", uint8(t))
	}
}

// payloadSize is the fixed size of a constant after its tag; Utf8 is variable
func (t ConstantTag) payloadSize() int {
	switch t {
	case CONSTANT_Class, CONSTANT_String, CONSTANT_MethodType, CONSTANT_Module, CONSTANT_Package:
		return 2
	case CONSTANT_MethodHandle:
		return 3
	case CONSTANT_Integer, CONSTANT_Float, CONSTANT_Fieldref, CONSTANT_Methodref,
		CONSTANT_InterfaceMethodref, CONSTANT_NameAndType, CONSTANT_Dynamic, CONSTANT_InvokeDynamic:
		return 4
	case CONSTANT_Long, CONSTANT_Double:
		return 8
	default:
		return -1
	}
}

type AccessFlags uint16

const (
	ACC_PUBLIC     AccessFlags = 0x0001
	ACC_PRIVATE    AccessFlags = 0x0002
	ACC_PROTECTED  AccessFlags = 0x0004
	ACC_STATIC     AccessFlags = 0x0008
	ACC_FINAL      AccessFlags = 0x0010
	ACC_SUPER      AccessFlags = 0x0020
	ACC_VOLATILE   AccessFlags = 0x0040
	ACC_TRANSIENT  AccessFlags = 0x0080
	ACC_INTERFACE  AccessFlags = 0x0200
	ACC_ABSTRACT   AccessFlags = 0x0400
	ACC_SYNTHETIC  AccessFlags = 0x1000
	ACC_ANNOTATION AccessFlags = 0x2000
	ACC_ENUM       AccessFlags = 0x4000
	ACC_MODULE     AccessFlags = 0x8000
)

func (f AccessFlags) Has(flag AccessFlags) bool {
	return f&flag != 0
}

// ClassFile is the raw structure read from a .class file, with constant pool
// references already resolved to strings
type ClassFile struct {
	MinorVersion uint16
	MajorVersion uint16
	AccessFlags  AccessFlags
	ThisClass    string // internal form, e.g. "com/shop/Product"
	SuperClass   string // empty for java/lang/Object and module-info
	Interfaces   []string
	Fields       []MemberInfo
	Methods      []MemberInfo
}

type MemberInfo struct {
	AccessFlags    AccessFlags
	Name           string
	Descriptor     string
	LocalVariables []LocalVariable // methods only, from LocalVariableTable
}

type LocalVariable struct {
	StartPC    uint16
	Length     uint16
	Name       string
	Descriptor string
	Index      uint16
}
