// Package template loads and normalizes pre-authored multi-part assemblies.
//
// A template is an ordered sequence of placement records read from an LDraw
// source (typically a Studio export of a single minifig). Templates are
// loaded once, normalized once, and then shared read-only across every
// placement instance, so authoring noise is cleaned up front:
//
//   - the model is recentered around (0,0) in X/Z
//   - coordinates are rounded to whole LDraw units
//   - orientation matrices are snapped to exact {-1,0,1} where the
//     authoring tool left floating noise (genuine rotations such as
//     tilted arms are preserved)
package template

import (
	"bufio"
	"io"
	"math"
	"os"
	"strings"

	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
)

// snapEpsilon is the threshold for cleaning near-integer orientation
// scalars. It is small enough to preserve real rotations: the smallest
// rotation the authoring tool emits (5 degrees) has cos ~0.9962, far
// outside the window around 1.
const snapEpsilon = 1e-5

// Template is a reusable multi-part assembly.
//
// Parts is read-only after Normalize; callers share the template by
// reference and must not mutate it.
type Template struct {
	// Name identifies the source, used in error messages.
	Name string

	// Parts is the ordered placement sequence.
	Parts []scene.Placement

	normalized bool
}

// Load parses a template from r. Lines starting with the type-0
// discriminator are comments and ignored; type-1 lines are parsed as
// placement records; any other non-blank line is ignored for forward
// compatibility with richer source exports.
//
// Returns a MALFORMED_RECORD error for an unparsable type-1 line and an
// EMPTY_TEMPLATE error if the source yields zero usable records.
func Load(r io.Reader, name string) (*Template, error) {
	var parts []scene.Placement

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || scene.IsComment(line) {
			continue
		}
		if !scene.IsType1(line) {
			continue
		}
		p, err := scene.ParseLine(line)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read template %s", name)
	}

	if len(parts) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyTemplate, "no type-1 lines found in template: %s", name)
	}
	return &Template{Name: name, Parts: parts}, nil
}

// LoadFile loads a template from a .ldr file on disk.
func LoadFile(path string) (*Template, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open template %s", path)
	}
	defer f.Close()
	return Load(f, path)
}

// Normalize recenters, rounds and cleans the template in place.
//
// The centroid of all X/Z coordinates is subtracted from every placement
// (Y untouched), every coordinate is rounded to the nearest whole LDraw
// unit, and every orientation scalar within snapEpsilon of {-1,0,1} is
// snapped to that exact value.
//
// Normalize is the template's single mutation point: it runs once, before
// the template is shared, and further calls are no-ops. It must not run
// concurrently with reads of the same template.
func (t *Template) Normalize() {
	if t.normalized || len(t.Parts) == 0 {
		t.normalized = true
		return
	}

	var cx, cz float64
	for _, p := range t.Parts {
		cx += p.Position.X
		cz += p.Position.Z
	}
	cx /= float64(len(t.Parts))
	cz /= float64(len(t.Parts))

	for i := range t.Parts {
		p := &t.Parts[i]

		p.Position.X = math.Round(p.Position.X - cx)
		p.Position.Y = math.Round(p.Position.Y)
		p.Position.Z = math.Round(p.Position.Z - cz)

		for j, v := range p.Orient {
			p.Orient[j] = snap(v)
		}
	}
	t.normalized = true
}

// Normalized reports whether Normalize has run.
func (t *Template) Normalized() bool {
	return t.normalized
}

// Len returns the number of placements in the template.
func (t *Template) Len() int {
	return len(t.Parts)
}

// snap cleans floating noise from one orientation scalar.
func snap(v float64) float64 {
	switch {
	case math.Abs(v) < snapEpsilon:
		return 0
	case math.Abs(v-1) < snapEpsilon:
		return 1
	case math.Abs(v+1) < snapEpsilon:
		return -1
	}
	return v
}
