package classlookup

import (
	"io"
	"strings"

	zip "github.com/STARRY-S/zip"
)

// readJarClasses opens a .jar (or other zip-based dependency archive) and
// parses every *.class entry into a ClassFile, indexed by fully-qualified
// name. Malformed entries are skipped rather than failing the whole archive,
// mirroring the "per-candidate throws are swallowed" tolerance §4.6
// specifies for discovery.
func readJarClasses(path string) (map[string]*ClassFile, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	classes := make(map[string]*ClassFile)
	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !strings.HasSuffix(file.Name, ".class") {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			continue
		}
		cf, err := ParseClassFile(rc)
		rc.Close()
		if err != nil || cf.ThisClass == "" {
			continue
		}
		classes[cf.ThisClass] = cf
	}
	return classes, nil
}

// ReadArchiveEntry reads one arbitrary entry (not necessarily a .class
// file — e.g. a META-INF/services registration) out of a zip/jar archive.
// The second return value is false when the archive contains no such
// entry.
func ReadArchiveEntry(archivePath, entryName string) ([]byte, bool, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, false, err
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != entryName {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, false, err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, false, err
		}
		return data, true, nil
	}
	return nil, false, nil
}
