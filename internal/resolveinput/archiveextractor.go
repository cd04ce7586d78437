package resolveinput

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	zip "github.com/STARRY-S/zip"
)

// defaultArchiveExtractor supports the archive shapes plugin packages and
// their dependency bundles actually ship in: zip/jar, tar, and tar.gz.
type defaultArchiveExtractor struct{}

// NewDefaultExtractor returns the production ArchiveExtractor.
func NewDefaultExtractor() ArchiveExtractor {
	return &defaultArchiveExtractor{}
}

func (defaultArchiveExtractor) Extract(ctx context.Context, src, destDir string) error {
	lower := strings.ToLower(src)
	switch {
	case strings.HasSuffix(lower, ".zip") || strings.HasSuffix(lower, ".jar"):
		return extractZip(ctx, src, destDir)
	case strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz"):
		return extractTarGz(ctx, src, destDir)
	case strings.HasSuffix(lower, ".tar"):
		return extractTar(ctx, src, destDir)
	default:
		// Any other name is opened as zip: most plugin archives are zip-based.
		return extractZip(ctx, src, destDir)
	}
}

func extractZip(ctx context.Context, src, destDir string) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("opening zip %s: %w", src, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := extractZipEntry(f, destDir); err != nil {
			return err
		}
	}
	return nil
}

func extractZipEntry(f *zip.File, destDir string) error {
	target, err := safeJoin(destDir, f.Name)
	if err != nil {
		return err
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o750)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening archived entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil { //nolint:gosec // size is bounded by the archive itself.
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

func extractTarGz(ctx context.Context, src, destDir string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("reading gzip %s: %w", src, err)
	}
	defer gz.Close()

	return extractTarStream(ctx, gz, destDir)
}

func extractTar(ctx context.Context, src, destDir string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	return extractTarStream(ctx, f, destDir)
}

func extractTarStream(ctx context.Context, r io.Reader, destDir string) error {
	tr := tar.NewReader(r)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading tar entry: %w", err)
		}

		target, err := safeJoin(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o750); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
			if err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			if _, err := io.Copy(out, tr); err != nil { //nolint:gosec // size bounded by the tar header itself.
				out.Close()
				return fmt.Errorf("writing %s: %w", target, err)
			}
			out.Close()
		}
	}
}

// safeJoin joins destDir and name, rejecting zip-slip style escapes.
func safeJoin(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(destDir, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("archive entry %q escapes destination directory", name)
	}
	return target, nil
}
