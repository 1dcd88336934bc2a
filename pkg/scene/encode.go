package scene

import (
	"math"
	"strconv"
	"strings"

	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
)

// The output line format is a compatibility contract with external viewers
// (BrickLink Studio). A type-1 line is:
//
//	1 <color> <x> <y> <z> <a> <b> <c> <d> <e> <f> <g> <h> <i> <part>
//
// Field order, count and token formatting must be preserved exactly.
const type1FieldCount = 15 // discriminator + 14 payload fields

// EncodeLine formats a placement as one LDraw type-1 line.
//
// Integer-valued scalars print without a decimal part; genuine floating
// values print with 6 decimal places so that composed placements do not
// show visible seams in the viewer.
func EncodeLine(p Placement) string {
	var b strings.Builder
	b.WriteString("1 ")
	b.WriteString(strconv.Itoa(p.Color))
	for _, v := range []float64{p.Position.X, p.Position.Y, p.Position.Z} {
		b.WriteByte(' ')
		b.WriteString(formatScalar(v))
	}
	for _, v := range p.Orient {
		b.WriteByte(' ')
		b.WriteString(formatScalar(v))
	}
	b.WriteByte(' ')
	b.WriteString(p.Part)
	return b.String()
}

// ParseLine parses an LDraw type-1 line into a placement. It is the exact
// inverse of EncodeLine for pre-rounded template data.
//
// Returns a MALFORMED_RECORD error if the line does not start with the
// type-1 discriminator, has fewer than 14 fields after it, or contains
// unparsable numeric tokens.
func ParseLine(line string) (Placement, error) {
	fields := strings.Fields(line)
	if len(fields) < type1FieldCount || fields[0] != "1" {
		return Placement{}, errors.New(errors.ErrCodeMalformedRecord, "not a type-1 line: %q", line)
	}

	color, err := strconv.Atoi(fields[1])
	if err != nil {
		return Placement{}, errors.Wrap(errors.ErrCodeMalformedRecord, err, "bad color in line %q", line)
	}

	var scalars [12]float64
	for i := range scalars {
		v, err := strconv.ParseFloat(fields[2+i], 64)
		if err != nil {
			return Placement{}, errors.Wrap(errors.ErrCodeMalformedRecord, err, "bad numeric field in line %q", line)
		}
		scalars[i] = v
	}

	p := Placement{
		Color:    color,
		Position: Vec3{scalars[0], scalars[1], scalars[2]},
		// Part references never contain the field separator in catalog data,
		// but richer exports may append qualifiers; keep them.
		Part: strings.Join(fields[14:], " "),
	}
	copy(p.Orient[:], scalars[3:])
	return p, nil
}

// IsType1 reports whether a source line is a placement record.
func IsType1(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "1 ")
}

// IsComment reports whether a source line is a type-0 comment/metadata line.
func IsComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "0")
}

// SectionMarker formats a named section marker as a type-0 comment line.
// Downstream BOM aggregation groups placements by these markers; the
// composition core emits them but does not depend on their interpretation.
func SectionMarker(name string) string {
	return "0 ===== " + name + " ====="
}

// SectionName extracts the section name from a marker line, and reports
// whether the line is a marker at all.
func SectionName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "0 =====") {
		return "", false
	}
	name := strings.TrimPrefix(trimmed, "0 =====")
	name = strings.TrimSuffix(name, "=====")
	return strings.TrimSpace(name), true
}

// formatScalar renders one numeric token of a type-1 line.
func formatScalar(v float64) string {
	if v == 0 {
		return "0" // avoid "-0" from negative zero
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
