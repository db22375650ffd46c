package runner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideRoot is returned for an input that cannot be mirrored into the
// output directory because it lies outside the working directory.
var ErrOutsideRoot = errors.New("input is outside the working directory")

//nolint:gochecknoglobals // Read-only lookup table.
var outputExtensions = map[string]string{
	".ts":  ".js",
	".mts": ".mjs",
	".cts": ".cjs",
	".tsx": ".jsx",
}

// OutputExtension maps a source extension to the extension of its output.
// Extensions without a mapping are kept.
func OutputExtension(ext string) string {
	if out, ok := outputExtensions[strings.ToLower(ext)]; ok {
		return out
	}
	return ext
}

// OutputPath returns where the output for src is written. With an empty
// outDir it is next to src; otherwise src's path relative to root is
// mirrored under outDir. Markdown files keep their name, so without an
// outDir they are rewritten in place.
func OutputPath(root, outDir, src string) (string, error) {
	ext := filepath.Ext(src)
	name := strings.TrimSuffix(src, ext) + OutputExtension(ext)
	if outDir == "" {
		return name, nil
	}

	rel, err := filepath.Rel(root, name)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s: %w", src, ErrOutsideRoot)
	}
	return filepath.Join(resolveOutDir(root, outDir), rel), nil
}
