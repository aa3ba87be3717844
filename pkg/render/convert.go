package render

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/matzehuels/dla/pkg/errors"
)

// rsvgBinary converts SVG to other vector formats. It is looked up on PATH.
const rsvgBinary = "rsvg-convert"

// PDFAvailable reports whether the pdf format can be produced on this host.
func PDFAvailable() bool {
	_, err := exec.LookPath(rsvgBinary)
	return err == nil
}

// ToPDF converts an SVG document to PDF by piping it through rsvg-convert.
func ToPDF(svg []byte) ([]byte, error) {
	if !PDFAvailable() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"pdf output needs %s on PATH (brew install librsvg, or apt install librsvg2-bin)", rsvgBinary)
	}

	var out, diag bytes.Buffer
	cmd := exec.Command(rsvgBinary, "--format", "pdf")
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &out
	cmd.Stderr = &diag
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgBinary, strings.TrimSpace(diag.String()))
	}
	return out.Bytes(), nil
}
