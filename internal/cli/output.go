package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// stdout receives artifacts written with -o -.
var stdout io.Writer = os.Stdout

// artifactWriteParams describes where rendered artifacts go.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // default path without extension
	output    string // -o value, may be empty
}

// artifactPaths maps each format to its output file. A single format with
// an explicit -o is written to exactly that path; otherwise -o (or base) is
// treated as a base path and the format becomes the extension.
func artifactPaths(p artifactWriteParams) map[string]string {
	paths := make(map[string]string, len(p.formats))
	if len(p.formats) == 1 && p.output != "" {
		paths[p.formats[0]] = p.output
		return paths
	}
	base := p.base
	if p.output != "" {
		base = strings.TrimSuffix(p.output, filepath.Ext(p.output))
	}
	for _, f := range p.formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeArtifacts writes every artifact and prints one line per file.
func writeArtifacts(p artifactWriteParams) ([]string, error) {
	paths := artifactPaths(p)
	formats := slices.Clone(p.formats)
	slices.Sort(formats)

	written := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := p.artifacts[f]
		if !ok {
			return written, fmt.Errorf("missing %s artifact", f)
		}
		path := paths[f]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
		written = append(written, path)
	}
	return written, nil
}
