package report

import (
	"fmt"
	"strings"

	"github.com/alnah/go-passimages"
)

// DefaultTitle heads reports when Summary.Title is empty.
const DefaultTitle = "Pass images"

// Cell markers for the coverage table.
const (
	markPresent = "yes"
	markAbsent  = "-"
)

// Markdown builds a GFM report: a coverage table (role x density), the list
// of registered files, skipped names, and the YAML manifest in a fenced block.
func Markdown(s *Summary) (string, error) {
	vocab := s.Vocabulary
	if vocab == nil {
		vocab = passimages.DefaultVocabulary()
	}
	title := s.Title
	if title == "" {
		title = DefaultTitle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeCell(title))
	if s.Dir != "" {
		fmt.Fprintf(&b, "Scanned `%s`: %d registered, %d skipped.\n\n", s.Dir, len(s.Entries), len(s.Skipped))
	}

	writeCoverage(&b, vocab, s.Entries)

	b.WriteString("## Files\n\n")
	if len(s.Entries) == 0 {
		b.WriteString("No images registered.\n\n")
	} else {
		b.WriteString("| Role | Density | Path |\n|---|---|---|\n")
		for _, e := range s.Entries {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Role, e.Density, escapeCell(e.Path))
		}
		b.WriteString("\n")
	}

	if len(s.Skipped) > 0 {
		b.WriteString("## Skipped\n\n")
		for _, name := range s.Skipped {
			fmt.Fprintf(&b, "- %s\n", escapeInline(name))
		}
		b.WriteString("\n")
	}

	manifest, err := YAML(s.Entries)
	if err != nil {
		return "", err
	}
	b.WriteString("## Manifest\n\n```yaml\n")
	b.Write(manifest)
	b.WriteString("```\n")

	return b.String(), nil
}

// writeCoverage writes one row per role and one column per density.
func writeCoverage(b *strings.Builder, vocab *passimages.Vocabulary, entries []passimages.Entry) {
	type key struct {
		role    passimages.Role
		density passimages.Density
	}
	present := make(map[key]bool, len(entries))
	for _, e := range entries {
		present[key{e.Role, e.Density}] = true
	}

	densities := vocab.Densities()

	b.WriteString("## Coverage\n\n| Role |")
	for _, d := range densities {
		fmt.Fprintf(b, " %s |", d)
	}
	b.WriteString("\n|---|")
	for range densities {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, r := range vocab.Roles() {
		fmt.Fprintf(b, "| %s |", r)
		for _, d := range densities {
			mark := markAbsent
			if present[key{r, d}] {
				mark = markPresent
			}
			fmt.Fprintf(b, " %s |", mark)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// escapeCell keeps a value from breaking a table row.
func escapeCell(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ", "\r", " ").Replace(s)
}

// escapeInline keeps a filename from being read as Markdown emphasis or code.
func escapeInline(s string) string {
	return strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "\n", " ").Replace(s)
}
