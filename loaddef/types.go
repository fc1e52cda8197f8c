// Package loaddef document type, format dispatch, and sentinel errors.
package loaddef

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/structcalc/loadcomb/combine"
	"github.com/structcalc/loadcomb/hierarchy"
)

// Sentinel errors for definition parsing.
var (
	// ErrMalformedDocument indicates a document that does not follow the
	// groups/combinations structure.
	ErrMalformedDocument = errors.New("loaddef: malformed definition document")

	// ErrBadFactor indicates a factor value that is not a number.
	ErrBadFactor = errors.New("loaddef: factor is not a number")

	// ErrUnknownFormat indicates a file extension that is neither YAML nor HCL.
	ErrUnknownFormat = errors.New("loaddef: unknown definition format")
)

// Document is a fully parsed definition: the ordered group hierarchy and
// the factor overrides of every named combination.
type Document struct {
	Groups       hierarchy.Definition
	Combinations combine.FactorSet
}

// ParseFile reads and parses a definition file, dispatching on its
// extension: .yaml/.yml or .hcl.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loaddef: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".hcl":
		return ParseHCL(path, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
