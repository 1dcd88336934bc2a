package bom

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lpauloin/BrickTablePlanner/pkg/catalog"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

// tally is the classified part count of one section (or of the whole
// model). Plates, bricks and tiles are additionally detailed by size.
type tally struct {
	categories map[Category]int
	plates     map[catalog.Size]int
	bricks     map[catalog.Size]int
	tiles      map[catalog.Size]int
	total      int
}

func tallyParts(parts map[string]int) (*tally, error) {
	t := &tally{
		categories: map[Category]int{},
		plates:     map[catalog.Size]int{},
		bricks:     map[catalog.Size]int{},
		tiles:      map[catalog.Size]int{},
	}

	for ref, count := range parts {
		category, err := Classify(ref)
		if err != nil {
			return nil, err
		}
		t.categories[category] += count
		t.total += count

		switch category {
		case CategoryPlates:
			if size, ok := catalog.PlateSize(ref); ok {
				t.plates[size] += count
			}
		case CategoryBricks:
			if size, ok := catalog.BrickSize(ref); ok {
				t.bricks[size] += count
			}
		case CategoryTiles:
			if size, ok := catalog.TileSize(ref); ok {
				t.tiles[size] += count
			}
		}
	}
	return t, nil
}

// rows flattens a tally into table rows: plain categories first (sorted),
// then plates, bricks and tiles detailed by size.
func (t *tally) rows() [][]string {
	var out [][]string

	categories := make([]Category, 0, len(t.categories))
	for c := range t.categories {
		if c == CategoryPlates || c == CategoryBricks || c == CategoryTiles {
			continue
		}
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for _, c := range categories {
		out = append(out, []string{string(c), fmt.Sprintf("%d", t.categories[c])})
	}

	for _, family := range []struct {
		name  string
		sizes map[catalog.Size]int
	}{
		{"PLATES", t.plates},
		{"BRICKS", t.bricks},
		{"TILES", t.tiles},
	} {
		sizes := make([]catalog.Size, 0, len(family.sizes))
		for s := range family.sizes {
			sizes = append(sizes, s)
		}
		sort.Slice(sizes, func(i, j int) bool {
			if sizes[i].Width != sizes[j].Width {
				return sizes[i].Width < sizes[j].Width
			}
			return sizes[i].Length < sizes[j].Length
		})
		for _, s := range sizes {
			out = append(out, []string{
				fmt.Sprintf("%s %dx%d", family.name, s.Width, s.Length),
				fmt.Sprintf("%d", family.sizes[s]),
			})
		}
	}
	return out
}

func renderTable(w io.Writer, title string, t *tally) {
	fmt.Fprintln(w, titleStyle.Render(title))

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Part", "Count").
		Rows(t.rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, tbl.Render())
	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("Total: %d", t.total)))
	fmt.Fprintln(w)
}

// Report writes per-section part tables in section emission order.
// Classification is strict: an unknown part aborts the whole report.
func Report(w io.Writer, b *BOM) error {
	for _, section := range b.Sections {
		t, err := tallyParts(section.Parts)
		if err != nil {
			return err
		}
		renderTable(w, section.Name, t)
	}
	return nil
}

// GlobalSummary writes one consolidated table across all sections.
func GlobalSummary(w io.Writer, b *BOM) error {
	t, err := tallyParts(b.Merged())
	if err != nil {
		return err
	}
	renderTable(w, "GLOBAL SUMMARY", t)
	return nil
}
