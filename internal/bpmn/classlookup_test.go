package bpmn

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wharflab/dsf-lint/internal/classlookup"
)

// --- minimal classfile builder, generalized from classlookup's own test
// fixture (and reused verbatim in shape from plugindiscovery's test), so
// service/send-task/listener rules can be exercised against a real
// classlookup.Catalog without a JVM. Method bodies are irrelevant here —
// only ThisClass/SuperClass/Interfaces matter for Implements/IsSubclassOf —
// so this version omits methodSpec entirely. ---

type cpBuilder struct {
	entries [][]byte
}

func (b *cpBuilder) utf8(s string) uint16 {
	var buf bytes.Buffer
	buf.WriteByte(1) // cpUTF8
	_ = binary.Write(&buf, binary.BigEndian, uint16(len(s)))
	buf.WriteString(s)
	b.entries = append(b.entries, buf.Bytes())
	return uint16(len(b.entries))
}

func (b *cpBuilder) class(nameIdx uint16) uint16 {
	var buf bytes.Buffer
	buf.WriteByte(7) // cpClass
	_ = binary.Write(&buf, binary.BigEndian, nameIdx)
	b.entries = append(b.entries, buf.Bytes())
	return uint16(len(b.entries))
}

func buildClassBytes(t *testing.T, thisClass, superClass string, interfaces []string) []byte {
	t.Helper()

	cp := &cpBuilder{}
	thisIdx := cp.class(cp.utf8(toSlashFQN(thisClass)))
	superIdx := cp.class(cp.utf8(toSlashFQN(superClass)))

	ifaceIdxs := make([]uint16, len(interfaces))
	for i, iface := range interfaces {
		ifaceIdxs[i] = cp.class(cp.utf8(toSlashFQN(iface)))
	}

	var buf bytes.Buffer
	w := func(v any) { require.NoError(t, binary.Write(&buf, binary.BigEndian, v)) }

	w(uint32(0xCAFEBABE))
	w(uint16(0))
	w(uint16(52))
	w(uint16(len(cp.entries) + 1))
	for _, e := range cp.entries {
		buf.Write(e)
	}

	w(uint16(0x0021)) // access flags
	w(thisIdx)
	w(superIdx)

	w(uint16(len(ifaceIdxs)))
	for _, idx := range ifaceIdxs {
		w(idx)
	}

	w(uint16(0)) // fields_count
	w(uint16(0)) // methods_count
	w(uint16(0)) // class attributes_count

	return buf.Bytes()
}

func toSlashFQN(dotted string) string {
	out := make([]byte, len(dotted))
	for i := 0; i < len(dotted); i++ {
		if dotted[i] == '.' {
			out[i] = '/'
		} else {
			out[i] = dotted[i]
		}
	}
	return string(out)
}

func writeClassFile(t *testing.T, dir, fqn string, data []byte) {
	t.Helper()
	rel := toSlashFQN(fqn) + ".class"
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, data, 0o640))
}

// newTestCatalog builds a classlookup.Catalog over a fresh project root
// containing one compiled class per entry in classes, keyed by fully
// qualified name.
func newTestCatalog(t *testing.T, classes map[string]struct {
	super      string
	interfaces []string
}) *classlookup.Catalog {
	t.Helper()
	root := t.TempDir()
	outDir := filepath.Join(root, "target", "classes")

	for fqn, spec := range classes {
		data := buildClassBytes(t, fqn, spec.super, spec.interfaces)
		writeClassFile(t, outDir, fqn, data)
	}

	catalog, err := classlookup.ForRoot(root)
	require.NoError(t, err)
	return catalog
}
