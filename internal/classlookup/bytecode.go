package classlookup

// Bytecode opcodes relevant to StringConstants scanning (JVM spec §6.5).
const (
	opLdc      = 0x12
	opLdcW     = 0x13
	opLdc2W    = 0x14
	opTableSwitch   = 0xaa
	opLookupSwitch  = 0xab
	opWide          = 0xc4
	opGotoW         = 0xc8
	opJsrW          = 0xc9
)

// operandLength gives the number of operand bytes following each one-byte
// opcode, for every opcode with a fixed-width encoding. Variable-width
// opcodes (tableswitch, lookupswitch, wide) are handled specially in
// StringConstants. This is the standard JVM instruction set table; unused
// or reserved opcodes default to 0, which is safe because they do not occur
// in verifiable bytecode.
var operandLength = [256]int{
	0x10: 1, 0x11: 2, 0x12: 1, 0x13: 2, 0x14: 2,
	0x15: 1, 0x16: 1, 0x17: 1, 0x18: 1, 0x19: 1,
	0x36: 1, 0x37: 1, 0x38: 1, 0x39: 1, 0x3a: 1,
	0x84: 2,
	0x99: 2, 0x9a: 2, 0x9b: 2, 0x9c: 2, 0x9d: 2, 0x9e: 2,
	0x9f: 2, 0xa0: 2, 0xa1: 2, 0xa2: 2, 0xa3: 2, 0xa4: 2,
	0xa5: 2, 0xa6: 2, 0xa7: 2, 0xa8: 2, 0xa9: 1,
	0xb2: 2, 0xb3: 2, 0xb4: 2, 0xb5: 2,
	0xb6: 2, 0xb7: 2, 0xb8: 2, 0xb9: 4, 0xba: 4,
	0xbb: 2, 0xbc: 1, 0xbd: 2,
	0xc0: 2, 0xc1: 2, 0xc5: 3, 0xc6: 2, 0xc7: 2,
	0xc8: 4, 0xc9: 4,
}

// StringConstants locates the named method and linearly scans its Code
// attribute's bytecode for ldc/ldc_w/ldc2_w instructions that reference a
// CONSTANT_String entry, returning the referenced literals in bytecode
// order. This statically approximates what a no-arg getter method would
// return at runtime, since the linter never executes JVM bytecode (§9 open
// question on descriptor instantiation).
func (cf *ClassFile) StringConstants(method string) []string {
	var code []byte
	for _, m := range cf.Methods {
		if m.Name == method {
			code = m.Code
			break
		}
	}
	if code == nil {
		return nil
	}

	var out []string
	i := 0
	for i < len(code) {
		op := code[i]
		switch op {
		case opLdc:
			if i+1 < len(code) {
				if s, ok := cf.stringConstant(uint16(code[i+1])); ok {
					out = append(out, s)
				}
			}
			i += 2
		case opLdcW, opLdc2W:
			if i+2 < len(code) {
				idx := uint16(code[i+1])<<8 | uint16(code[i+2])
				if s, ok := cf.stringConstant(idx); ok {
					out = append(out, s)
				}
			}
			i += 3
		case opTableSwitch:
			i = skipTableSwitch(code, i)
		case opLookupSwitch:
			i = skipLookupSwitch(code, i)
		case opWide:
			i = skipWide(code, i)
		default:
			i += 1 + operandLength[op]
		}
	}
	return out
}

func (cf *ClassFile) stringConstant(idx uint16) (string, bool) {
	if int(idx) >= len(cf.constantPool) {
		return "", false
	}
	entry := cf.constantPool[idx]
	if entry.tag != cpString {
		return "", false
	}
	return utf8At(cf.constantPool, entry.stringIndex), true
}

// skipTableSwitch advances past a tableswitch instruction starting at i
// (pointing at the opcode byte).
func skipTableSwitch(code []byte, i int) int {
	pos := i + 1
	for pos%4 != 0 {
		pos++
	}
	// default, low, high (3 x 4 bytes), then (high-low+1) 4-byte offsets.
	if pos+12 > len(code) {
		return len(code)
	}
	low := int32(uint32(code[pos+4])<<24 | uint32(code[pos+5])<<16 | uint32(code[pos+6])<<8 | uint32(code[pos+7]))
	high := int32(uint32(code[pos+8])<<24 | uint32(code[pos+9])<<16 | uint32(code[pos+10])<<8 | uint32(code[pos+11]))
	pos += 12
	count := int(high - low + 1)
	if count < 0 {
		return len(code)
	}
	return pos + count*4
}

// skipLookupSwitch advances past a lookupswitch instruction starting at i.
func skipLookupSwitch(code []byte, i int) int {
	pos := i + 1
	for pos%4 != 0 {
		pos++
	}
	if pos+8 > len(code) {
		return len(code)
	}
	npairs := int32(uint32(code[pos+4])<<24 | uint32(code[pos+5])<<16 | uint32(code[pos+6])<<8 | uint32(code[pos+7]))
	pos += 8
	if npairs < 0 {
		return len(code)
	}
	return pos + int(npairs)*8
}

// skipWide advances past a wide-prefixed instruction starting at i.
func skipWide(code []byte, i int) int {
	if i+1 >= len(code) {
		return len(code)
	}
	modified := code[i+1]
	if modified == 0x84 { // iinc
		return i + 6
	}
	return i + 4
}
