package classfile

import (
	"fmt"
)

const (
	attrCode               = "Code"
	attrLocalVariableTable = "LocalVariableTable"
)

/*
ParseClassFile parses a complete class file:

u4             magic
u2             minor_version
u2             major_version
cp             constant pool
u2             access_flags
u2             this_class
u2             super_class
u2             interfaces_count
u2[]           interfaces
u2             fields_count
member_info[]  fields
u2             methods_count
member_info[]  methods
u2             attributes_count
attribute[]    attributes (skipped)
*/
func ParseClassFile(data []byte) (*ClassFile, error) {
	reader := NewBytesReader(data)

	magic, err := reader.ReadU4()
	if err != nil {
		return nil, fmt.Errorf("failed to read magic: %w", err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: 0x%08X", ErrBadMagic, magic)
	}

	cf := &ClassFile{}
	if cf.MinorVersion, err = reader.ReadU2(); err != nil {
		return nil, fmt.Errorf("failed to read minor version: %w", err)
	}
	if cf.MajorVersion, err = reader.ReadU2(); err != nil {
		return nil, fmt.Errorf("failed to read major version: %w", err)
	}

	pool, err := ParseConstantPool(reader)
	if err != nil {
		return nil, err
	}

	access, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read access flags: %w", err)
	}
	cf.AccessFlags = AccessFlags(access)
	if cf.AccessFlags.Has(ACC_MODULE) {
		return nil, ErrNotAClass
	}

	thisIdx, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read this_class: %w", err)
	}
	if cf.ThisClass, err = pool.ClassName(thisIdx); err != nil {
		return nil, fmt.Errorf("failed to resolve this_class: %w", err)
	}

	superIdx, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read super_class: %w", err)
	}
	// index 0 means no super class (java/lang/Object itself)
	if superIdx != 0 {
		if cf.SuperClass, err = pool.ClassName(superIdx); err != nil {
			return nil, fmt.Errorf("failed to resolve super_class: %w", err)
		}
	}

	if cf.Interfaces, err = parseInterfaces(reader, pool); err != nil {
		return nil, err
	}

	if cf.Fields, err = parseMembers(reader, pool, "field"); err != nil {
		return nil, err
	}

	if cf.Methods, err = parseMembers(reader, pool, "method"); err != nil {
		return nil, err
	}

	if _, err := parseAttributes(reader, pool, nil); err != nil {
		return nil, fmt.Errorf("failed to read class attributes: %w", err)
	}

	return cf, nil
}

func parseInterfaces(reader *BinaryReader, pool *ConstantPool) ([]string, error) {
	count, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read interfaces count: %w", err)
	}

	interfaces := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		idx, err := reader.ReadU2()
		if err != nil {
			return nil, fmt.Errorf("failed to read interface #%d: %w", i, err)
		}
		name, err := pool.ClassName(idx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve interface #%d: %w", i, err)
		}
		interfaces = append(interfaces, name)
	}

	return interfaces, nil
}

/*
parseMembers reads a field or method table:

u2             count
member_info:
u2             access_flags
u2             name_index
u2             descriptor_index
u2             attributes_count
attribute[]    attributes
*/
func parseMembers(reader *BinaryReader, pool *ConstantPool, kind string) ([]MemberInfo, error) {
	count, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s count: %w", kind, err)
	}

	members := make([]MemberInfo, 0, count)
	for i := 0; i < int(count); i++ {
		var member MemberInfo

		access, err := reader.ReadU2()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s #%d access flags: %w", kind, i, err)
		}
		member.AccessFlags = AccessFlags(access)

		nameIdx, err := reader.ReadU2()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s #%d name: %w", kind, i, err)
		}
		if member.Name, err = pool.Utf8(nameIdx); err != nil {
			return nil, fmt.Errorf("failed to resolve %s #%d name: %w", kind, i, err)
		}

		descIdx, err := reader.ReadU2()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s %s descriptor: %w", kind, member.Name, err)
		}
		if member.Descriptor, err = pool.Utf8(descIdx); err != nil {
			return nil, fmt.Errorf("failed to resolve %s %s descriptor: %w", kind, member.Name, err)
		}

		member.LocalVariables, err = parseAttributes(reader, pool, map[string]attributeParser{
			attrCode: parseCode,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read %s %s attributes: %w", kind, member.Name, err)
		}

		members = append(members, member)
	}

	return members, nil
}

// attributeParser decodes the body of one attribute into local variables
type attributeParser func(body []byte, pool *ConstantPool) ([]LocalVariable, error)

/*
parseAttributes reads an attribute table, handing known attribute bodies to the
matching parser and skipping the rest:

u2             attributes_count
attribute:
u2             attribute_name_index
u4             attribute_length
u1[]           info
*/
func parseAttributes(reader *BinaryReader, pool *ConstantPool, parsers map[string]attributeParser) ([]LocalVariable, error) {
	count, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read attributes count: %w", err)
	}

	var locals []LocalVariable
	for i := 0; i < int(count); i++ {
		nameIdx, err := reader.ReadU2()
		if err != nil {
			return nil, fmt.Errorf("failed to read attribute #%d name: %w", i, err)
		}
		length, err := reader.ReadU4()
		if err != nil {
			return nil, fmt.Errorf("failed to read attribute #%d length: %w", i, err)
		}

		name, err := pool.Utf8(nameIdx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve attribute #%d name: %w", i, err)
		}

		parse, known := parsers[name]
		if !known {
			if err := reader.Skip(int(length)); err != nil {
				return nil, fmt.Errorf("failed to skip attribute %s: %w", name, err)
			}
			continue
		}

		body, err := reader.ReadNBytes(int(length))
		if err != nil {
			return nil, fmt.Errorf("failed to read attribute %s: %w", name, err)
		}
		found, err := parse(body, pool)
		if err != nil {
			return nil, fmt.Errorf("failed to parse attribute %s: %w", name, err)
		}
		locals = append(locals, found...)
	}

	return locals, nil
}

/*
parseCode reads a Code attribute body and returns its LocalVariableTable entries:

u2             max_stack
u2             max_locals
u4             code_length
u1[]           code
u2             exception_table_length
u2 x 4 []      exception_table
u2             attributes_count
attribute[]    attributes
*/
func parseCode(body []byte, pool *ConstantPool) ([]LocalVariable, error) {
	reader := NewBytesReader(body)

	// max_stack + max_locals
	if err := reader.Skip(4); err != nil {
		return nil, err
	}

	codeLength, err := reader.ReadU4()
	if err != nil {
		return nil, fmt.Errorf("failed to read code length: %w", err)
	}
	if err := reader.Skip(int(codeLength)); err != nil {
		return nil, err
	}

	exceptionCount, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read exception table length: %w", err)
	}
	if err := reader.Skip(int(exceptionCount) * 8); err != nil {
		return nil, err
	}

	return parseAttributes(reader, pool, map[string]attributeParser{
		attrLocalVariableTable: parseLocalVariableTable,
	})
}

/*
parseLocalVariableTable reads a LocalVariableTable attribute body:

u2             local_variable_table_length
entry:
u2             start_pc
u2             length
u2             name_index
u2             descriptor_index
u2             index
*/
func parseLocalVariableTable(body []byte, pool *ConstantPool) ([]LocalVariable, error) {
	reader := NewBytesReader(body)

	count, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read table length: %w", err)
	}

	locals := make([]LocalVariable, 0, count)
	for i := 0; i < int(count); i++ {
		var fields [5]uint16
		for j := range fields {
			if fields[j], err = reader.ReadU2(); err != nil {
				return nil, fmt.Errorf("failed to read local variable #%d: %w", i, err)
			}
		}

		name, err := pool.Utf8(fields[2])
		if err != nil {
			return nil, fmt.Errorf("failed to resolve local variable #%d name: %w", i, err)
		}
		desc, err := pool.Utf8(fields[3])
		if err != nil {
			return nil, fmt.Errorf("failed to resolve local variable %s descriptor: %w", name, err)
		}

		locals = append(locals, LocalVariable{
			StartPC:    fields[0],
			Length:     fields[1],
			Name:       name,
			Descriptor: desc,
			Index:      fields[4],
		})
	}

	return locals, nil
}
