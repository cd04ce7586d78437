package classlookup

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestClass hand-assembles a minimal but structurally valid .class file
// for com.acme.Foo implements com.acme.IFoo extends java.lang.Object, with
// one method `getName()Ljava/lang/String;` whose body is `ldc "hello";
// areturn`. There is no javac available in this environment, so the bytes
// are constructed directly against the classfile format this package parses.
func buildTestClass(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := func(v any) {
		require.NoError(t, binary.Write(&buf, binary.BigEndian, v))
	}
	utf8 := func(s string) {
		w(uint16(len(s)))
		buf.WriteString(s)
	}

	w(uint32(classFileMagic))
	w(uint16(0))  // minor
	w(uint16(52)) // major (Java 8)

	// Constant pool: 11 entries -> count = 12 (1-indexed, count = highest+1).
	w(uint16(12))

	w(byte(cpUTF8))
	utf8("com/acme/Foo") // #1

	w(byte(cpClass))
	w(uint16(1)) // #2 -> #1

	w(byte(cpUTF8))
	utf8("java/lang/Object") // #3

	w(byte(cpClass))
	w(uint16(3)) // #4 -> #3

	w(byte(cpUTF8))
	utf8("com/acme/IFoo") // #5

	w(byte(cpClass))
	w(uint16(5)) // #6 -> #5

	w(byte(cpUTF8))
	utf8("getName") // #7

	w(byte(cpUTF8))
	utf8("()Ljava/lang/String;") // #8

	w(byte(cpUTF8))
	utf8("hello") // #9

	w(byte(cpString))
	w(uint16(9)) // #10 -> #9

	w(byte(cpUTF8))
	utf8("Code") // #11

	w(uint16(0x0021)) // access_flags: public, super
	w(uint16(2))      // this_class -> #2
	w(uint16(4))      // super_class -> #4

	w(uint16(1)) // interfaces_count
	w(uint16(6)) // -> #6

	w(uint16(0)) // fields_count

	w(uint16(1)) // methods_count
	w(uint16(0x0001)) // access_flags: public
	w(uint16(7))       // name_index -> "getName"
	w(uint16(8))       // descriptor_index
	w(uint16(1))       // attributes_count

	w(uint16(11)) // attribute name_index -> "Code"
	code := []byte{0x12, 0x0a, 0xb0} // ldc #10; areturn
	var codeAttr bytes.Buffer
	cw := func(v any) {
		require.NoError(t, binary.Write(&codeAttr, binary.BigEndian, v))
	}
	cw(uint16(1))               // max_stack
	cw(uint16(1))               // max_locals
	cw(uint32(len(code)))       // code_length
	codeAttr.Write(code)
	cw(uint16(0)) // exception_table_length
	cw(uint16(0)) // attributes_count
	w(uint32(codeAttr.Len()))
	buf.Write(codeAttr.Bytes())

	w(uint16(0)) // class attributes_count

	return buf.Bytes()
}

func TestParseClassFile(t *testing.T) {
	data := buildTestClass(t)

	cf, err := ParseClassFile(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, "com.acme.Foo", cf.ThisClass)
	assert.Equal(t, "java.lang.Object", cf.SuperClass)
	assert.Equal(t, []string{"com.acme.IFoo"}, cf.Interfaces)
	require.Len(t, cf.Methods, 1)
	assert.Equal(t, "getName", cf.Methods[0].Name)
	assert.NotEmpty(t, cf.Methods[0].Code)
}

func TestParseClassFileRejectsBadMagic(t *testing.T) {
	_, err := ParseClassFile(bytes.NewReader([]byte{0, 0, 0, 0}))
	assert.Error(t, err)
}

func TestStringConstants(t *testing.T) {
	data := buildTestClass(t)
	cf, err := ParseClassFile(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, []string{"hello"}, cf.StringConstants("getName"))
	assert.Nil(t, cf.StringConstants("noSuchMethod"))
}
