package classfile

import (
	"fmt"
)

type constant struct {
	tag      ConstantTag
	utf8     string
	nameIdx  uint16 // Class, Module, Package: name index
	rawBytes []byte
}

// ConstantPool holds the entries of a class file's constant pool. Index 0 and the
// slot after each Long/Double are unusable and stay nil.
type ConstantPool struct {
	entries []*constant
}

/*
ParseConstantPool reads the constant pool:

u2              constant_pool_count
cp_info         constant_pool[constant_pool_count-1]

cp_info:
u1              tag
u1[]            info (size depends on tag)
*/
func ParseConstantPool(reader *BinaryReader) (*ConstantPool, error) {
	count, err := reader.ReadU2()
	if err != nil {
		return nil, fmt.Errorf("failed to read constant pool count: %w", err)
	}

	pool := &ConstantPool{entries: make([]*constant, count)}

	for i := 1; i < int(count); i++ {
		rawTag, err := reader.ReadU1()
		if err != nil {
			return nil, fmt.Errorf("failed to read tag of constant #%d: %w", i, err)
		}
		tag := ConstantTag(rawTag)

		entry := &constant{tag: tag}
		switch tag {
		case CONSTANT_Utf8:
			entry.utf8, err = reader.ReadUtf8String()
			if err != nil {
				return nil, fmt.Errorf("failed to read Utf8 constant #%d: %w", i, err)
			}

		case CONSTANT_Class, CONSTANT_Module, CONSTANT_Package:
			entry.nameIdx, err = reader.ReadU2()
			if err != nil {
				return nil, fmt.Errorf("failed to read %s constant #%d: %w", tag, i, err)
			}

		default:
			size := tag.payloadSize()
			if size < 0 {
				return nil, fmt.Errorf("unknown constant tag %d at #%d", rawTag, i)
			}
			entry.rawBytes, err = reader.ReadNBytes(size)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s constant #%d: %w", tag, i, err)
			}
		}

		pool.entries[i] = entry

		// Long and Double take two slots
		if tag == CONSTANT_Long || tag == CONSTANT_Double {
			i++
		}
	}

	return pool, nil
}

func (cp *ConstantPool) Count() int {
	return len(cp.entries)
}

func (cp *ConstantPool) get(index uint16, tag ConstantTag) (*constant, error) {
	if int(index) <= 0 || int(index) >= len(cp.entries) {
		return nil, fmt.Errorf("constant pool index %d out of range", index)
	}
	entry := cp.entries[index]
	if entry == nil {
		return nil, fmt.Errorf("constant pool index %d is unusable", index)
	}
	if entry.tag != tag {
		return nil, fmt.Errorf("constant #%d is %s, expected %s", index, entry.tag, tag)
	}
	return entry, nil
}

// Utf8 resolves a CONSTANT_Utf8 entry
func (cp *ConstantPool) Utf8(index uint16) (string, error) {
	entry, err := cp.get(index, CONSTANT_Utf8)
	if err != nil {
		return "", err
	}
	return entry.utf8, nil
}

// ClassName resolves a CONSTANT_Class entry to its internal name
func (cp *ConstantPool) ClassName(index uint16) (string, error) {
	entry, err := cp.get(index, CONSTANT_Class)
	if err != nil {
		return "", err
	}
	return cp.Utf8(entry.nameIdx)
}
