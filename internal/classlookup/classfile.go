// Package classlookup provides a purely structural JVM classfile reader: it
// answers exists/implements/isSubclassOf/findImplementedInterface questions
// over compiled outputs and dependency jars without ever invoking a JVM.
package classlookup

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

const classFileMagic = 0xCAFEBABE

// Constant pool tags (JVM spec §4.4).
const (
	cpUTF8              = 1
	cpInteger           = 3
	cpFloat             = 4
	cpLong              = 5
	cpDouble            = 6
	cpClass             = 7
	cpString            = 8
	cpFieldref          = 9
	cpMethodref         = 10
	cpInterfaceMethodref = 11
	cpNameAndType       = 12
	cpMethodHandle      = 15
	cpMethodType        = 16
	cpDynamic           = 17
	cpInvokeDynamic     = 18
	cpModule            = 19
	cpPackage           = 20
)

// cpEntry is one constant pool slot. Only the fields needed to resolve class
// names, UTF8 strings, and String-constant references are retained.
type cpEntry struct {
	tag        byte
	utf8       string
	classIndex uint16 // cpClass: index of the name UTF8 entry
	stringIndex uint16 // cpString: index of the value UTF8 entry
}

// Method is one method_info entry: its name, descriptor, and — if present —
// the raw bytecode of its Code attribute.
type Method struct {
	Name       string
	Descriptor string
	Code       []byte
}

// ClassFile is the structural subset of a parsed .class file this linter
// needs: identity, inheritance, interfaces, and method bodies for bytecode
// constant scanning.
type ClassFile struct {
	ThisClass  string // fully-qualified, dot-separated
	SuperClass string // empty for java.lang.Object
	Interfaces []string
	Methods    []Method

	constantPool []cpEntry
}

// ParseClassFile parses the JVM classfile binary format from r.
func ParseClassFile(r io.Reader) (*ClassFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	br := bytes.NewReader(data)

	var magic uint32
	if err := binary.Read(br, binary.BigEndian, &magic); err != nil {
		return nil, fmt.Errorf("classlookup: reading magic: %w", err)
	}
	if magic != classFileMagic {
		return nil, fmt.Errorf("classlookup: not a class file (magic %#x)", magic)
	}

	var minor, major uint16
	if err := binary.Read(br, binary.BigEndian, &minor); err != nil {
		return nil, err
	}
	if err := binary.Read(br, binary.BigEndian, &major); err != nil {
		return nil, err
	}

	pool, err := readConstantPool(br)
	if err != nil {
		return nil, fmt.Errorf("classlookup: reading constant pool: %w", err)
	}

	var accessFlags, thisClass, superClass uint16
	if err := binary.Read(br, binary.BigEndian, &accessFlags); err != nil {
		return nil, err
	}
	if err := binary.Read(br, binary.BigEndian, &thisClass); err != nil {
		return nil, err
	}
	if err := binary.Read(br, binary.BigEndian, &superClass); err != nil {
		return nil, err
	}

	var interfaceCount uint16
	if err := binary.Read(br, binary.BigEndian, &interfaceCount); err != nil {
		return nil, err
	}
	interfaces := make([]string, 0, interfaceCount)
	for i := 0; i < int(interfaceCount); i++ {
		var idx uint16
		if err := binary.Read(br, binary.BigEndian, &idx); err != nil {
			return nil, err
		}
		if name := resolveClassName(pool, idx); name != "" {
			interfaces = append(interfaces, name)
		}
	}

	if err := skipFieldsOrMethods(br); err != nil { // fields
		return nil, fmt.Errorf("classlookup: skipping fields: %w", err)
	}

	methods, err := readMethods(br, pool)
	if err != nil {
		return nil, fmt.Errorf("classlookup: reading methods: %w", err)
	}

	cf := &ClassFile{
		ThisClass:    resolveClassName(pool, thisClass),
		SuperClass:   resolveClassName(pool, superClass),
		Interfaces:   interfaces,
		Methods:      methods,
		constantPool: pool,
	}
	_ = major
	_ = minor
	_ = accessFlags
	return cf, nil
}

func readConstantPool(br *bytes.Reader) ([]cpEntry, error) {
	var count uint16
	if err := binary.Read(br, binary.BigEndian, &count); err != nil {
		return nil, err
	}

	// Constant pool is 1-indexed; entry 0 is unused. Long/Double entries
	// occupy two consecutive slots (the second is left zero-valued).
	pool := make([]cpEntry, count)
	for i := 1; i < int(count); i++ {
		var tag byte
		if err := binary.Read(br, binary.BigEndian, &tag); err != nil {
			return nil, err
		}

		switch tag {
		case cpUTF8:
			var length uint16
			if err := binary.Read(br, binary.BigEndian, &length); err != nil {
				return nil, err
			}
			buf := make([]byte, length)
			if _, err := io.ReadFull(br, buf); err != nil {
				return nil, err
			}
			pool[i] = cpEntry{tag: tag, utf8: string(buf)}
		case cpClass, cpMethodType, cpModule, cpPackage:
			var idx uint16
			if err := binary.Read(br, binary.BigEndian, &idx); err != nil {
				return nil, err
			}
			pool[i] = cpEntry{tag: tag, classIndex: idx}
		case cpString:
			var idx uint16
			if err := binary.Read(br, binary.BigEndian, &idx); err != nil {
				return nil, err
			}
			pool[i] = cpEntry{tag: tag, stringIndex: idx}
		case cpFieldref, cpMethodref, cpInterfaceMethodref, cpNameAndType,
			cpInteger, cpFloat, cpDynamic, cpInvokeDynamic:
			if _, err := br.Seek(4, io.SeekCurrent); err != nil {
				return nil, err
			}
			pool[i] = cpEntry{tag: tag}
		case cpLong, cpDouble:
			if _, err := br.Seek(8, io.SeekCurrent); err != nil {
				return nil, err
			}
			pool[i] = cpEntry{tag: tag}
			i++ // occupies two slots
		case cpMethodHandle:
			if _, err := br.Seek(3, io.SeekCurrent); err != nil {
				return nil, err
			}
			pool[i] = cpEntry{tag: tag}
		default:
			return nil, fmt.Errorf("unknown constant pool tag %d at index %d", tag, i)
		}
	}
	return pool, nil
}

func resolveClassName(pool []cpEntry, idx uint16) string {
	if idx == 0 || int(idx) >= len(pool) {
		return ""
	}
	entry := pool[idx]
	if entry.tag != cpClass {
		return ""
	}
	name := utf8At(pool, entry.classIndex)
	return strings.ReplaceAll(name, "/", ".")
}

func utf8At(pool []cpEntry, idx uint16) string {
	if idx == 0 || int(idx) >= len(pool) {
		return ""
	}
	return pool[idx].utf8
}

// attribute reads one attribute_info and returns its name and raw payload.
func readAttribute(br *bytes.Reader, pool []cpEntry) (name string, info []byte, err error) {
	var nameIdx uint16
	if err = binary.Read(br, binary.BigEndian, &nameIdx); err != nil {
		return "", nil, err
	}
	var length uint32
	if err = binary.Read(br, binary.BigEndian, &length); err != nil {
		return "", nil, err
	}
	buf := make([]byte, length)
	if _, err = io.ReadFull(br, buf); err != nil {
		return "", nil, err
	}
	return utf8At(pool, nameIdx), buf, nil
}

func skipFieldsOrMethods(br *bytes.Reader) error {
	var count uint16
	if err := binary.Read(br, binary.BigEndian, &count); err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		// access_flags, name_index, descriptor_index
		if _, err := br.Seek(6, io.SeekCurrent); err != nil {
			return err
		}
		var attrCount uint16
		if err := binary.Read(br, binary.BigEndian, &attrCount); err != nil {
			return err
		}
		for j := 0; j < int(attrCount); j++ {
			if _, _, err := readAttribute(br, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func readMethods(br *bytes.Reader, pool []cpEntry) ([]Method, error) {
	var count uint16
	if err := binary.Read(br, binary.BigEndian, &count); err != nil {
		return nil, err
	}

	methods := make([]Method, 0, count)
	for i := 0; i < int(count); i++ {
		var accessFlags, nameIdx, descIdx uint16
		if err := binary.Read(br, binary.BigEndian, &accessFlags); err != nil {
			return nil, err
		}
		if err := binary.Read(br, binary.BigEndian, &nameIdx); err != nil {
			return nil, err
		}
		if err := binary.Read(br, binary.BigEndian, &descIdx); err != nil {
			return nil, err
		}

		m := Method{
			Name:       utf8At(pool, nameIdx),
			Descriptor: utf8At(pool, descIdx),
		}

		var attrCount uint16
		if err := binary.Read(br, binary.BigEndian, &attrCount); err != nil {
			return nil, err
		}
		for j := 0; j < int(attrCount); j++ {
			name, info, err := readAttribute(br, pool)
			if err != nil {
				return nil, err
			}
			if name == "Code" {
				if code, err := extractCodeBytes(info); err == nil {
					m.Code = code
				}
			}
		}
		methods = append(methods, m)
	}
	return methods, nil
}

// extractCodeBytes parses a Code attribute's payload just far enough to
// return the raw bytecode array (skipping the exception table and nested
// attributes, which StringConstants does not need).
func extractCodeBytes(info []byte) ([]byte, error) {
	r := bytes.NewReader(info)
	// max_stack, max_locals
	if _, err := r.Seek(4, io.SeekCurrent); err != nil {
		return nil, err
	}
	var codeLength uint32
	if err := binary.Read(r, binary.BigEndian, &codeLength); err != nil {
		return nil, err
	}
	code := make([]byte, codeLength)
	if _, err := io.ReadFull(r, code); err != nil {
		return nil, err
	}
	return code, nil
}
