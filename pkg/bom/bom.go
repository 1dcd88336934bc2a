// Package bom classifies and aggregates the parts of an emitted model
// into a bill of materials.
//
// The classifier is a strict closed world: every part reference the
// model can emit must map to a known category, and an unknown reference
// is an error rather than a fallback bucket. This catches catalog drift
// the moment a new part sneaks into the output.
package bom

import (
	"strings"

	"github.com/lpauloin/BrickTablePlanner/pkg/catalog"
	"github.com/lpauloin/BrickTablePlanner/pkg/errors"
	"github.com/lpauloin/BrickTablePlanner/pkg/scene"
)

// Category is a BOM classification bucket.
type Category string

// Part categories, strict and closed.
const (
	CategoryBaseplate      Category = "PLATE_32x32"
	CategoryMinifigHead    Category = "MINIFIG_HEAD"
	CategoryMinifigTorso   Category = "MINIFIG_TORSO"
	CategoryMinifigArms    Category = "MINIFIG_ARMS"
	CategoryMinifigHands   Category = "MINIFIG_HANDS"
	CategoryMinifigLegs    Category = "MINIFIG_LEGS"
	CategoryMinifigAccess  Category = "MINIFIG_ACCESSORY"
	CategoryBricks         Category = "BRICKS"
	CategoryTiles          Category = "TILES"
	CategoryPlate1x1       Category = "PLATE_1x1"
	CategoryPlates         Category = "PLATES"
	CategoryPlatesModified Category = "PLATES_MODIFIED"
)

// minifig part families by bare part number.
var (
	minifigArms   = map[string]bool{"3818": true, "3819": true}
	minifigLegs   = map[string]bool{"3815": true, "3816": true, "3817": true, "87609": true}
	minifigAccess = map[string]bool{
		"88646": true, // neck bracket
		"30414": true, // armor
	}
	platesModified = map[string]bool{"2431": true}
)

// Classify maps a part reference to its BOM category.
// Returns an UNKNOWN_PART error for any reference outside the closed
// classification; there is deliberately no fallback category.
func Classify(ref string) (Category, error) {
	part := catalog.TrimRef(ref)

	switch {
	case part == "3811":
		return CategoryBaseplate, nil
	case strings.HasPrefix(part, "3626"):
		return CategoryMinifigHead, nil
	case part == "973":
		return CategoryMinifigTorso, nil
	case minifigArms[part]:
		return CategoryMinifigArms, nil
	case part == "3820":
		return CategoryMinifigHands, nil
	case minifigLegs[part]:
		return CategoryMinifigLegs, nil
	case minifigAccess[part]:
		return CategoryMinifigAccess, nil
	case catalog.IsBrick(part):
		return CategoryBricks, nil
	case catalog.IsTile(part):
		return CategoryTiles, nil
	case part == "3024":
		return CategoryPlate1x1, nil
	case catalog.IsPlate(part):
		return CategoryPlates, nil
	case platesModified[part]:
		return CategoryPlatesModified, nil
	}
	return "", errors.New(errors.ErrCodeUnknownPart, "unknown part in BOM: %s", ref)
}

// Section is the part tally of one model section.
type Section struct {
	Name  string
	Parts map[string]int // part reference -> count
}

// BOM is the aggregated bill of materials, sections in emission order.
type BOM struct {
	Sections []Section
}

// undefinedSection collects placements appearing before the first marker.
const undefinedSection = "UNDEFINED"

// Aggregate groups the placement records of a model by its section
// markers. Lines that are neither markers nor type-1 records are skipped.
func Aggregate(lines []string) *BOM {
	b := &BOM{}
	index := map[string]int{}

	current := undefinedSection
	for _, line := range lines {
		if name, ok := scene.SectionName(line); ok {
			current = name
			continue
		}
		if !scene.IsType1(line) {
			continue
		}

		fields := strings.Fields(line)
		ref := fields[len(fields)-1]

		i, ok := index[current]
		if !ok {
			i = len(b.Sections)
			index[current] = i
			b.Sections = append(b.Sections, Section{Name: current, Parts: map[string]int{}})
		}
		b.Sections[i].Parts[ref]++
	}
	return b
}

// Merged returns the part tally across all sections.
func (b *BOM) Merged() map[string]int {
	merged := map[string]int{}
	for _, s := range b.Sections {
		for ref, n := range s.Parts {
			merged[ref] += n
		}
	}
	return merged
}
