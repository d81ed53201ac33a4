// Package report renders the contents of an asset store for people and tools.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alnah/go-passimages"
	"github.com/alnah/go-passimages/internal/yamlutil"
)

// Format selects a report renderer.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ErrUnknownFormat indicates a format name outside the supported set.
var ErrUnknownFormat = errors.New("unknown report format")

// Formats returns the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatYAML), string(FormatMarkdown), string(FormatHTML)}
}

// ParseFormat resolves a format name, case-insensitively.
// "md" and "yml" are accepted as aliases. Empty means FormatText.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Summary is the input of every renderer.
type Summary struct {
	Title      string
	Dir        string
	Vocabulary *passimages.Vocabulary
	Entries    []passimages.Entry
	Skipped    []string
}

// Render writes s to w in the given format.
func Render(ctx context.Context, w io.Writer, format Format, s *Summary) error {
	switch format {
	case FormatText:
		return Text(w, s.Entries)
	case FormatYAML:
		out, err := YAML(s.Entries)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case FormatMarkdown:
		md, err := Markdown(s)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	case FormatHTML:
		md, err := Markdown(s)
		if err != nil {
			return err
		}
		html, err := NewHTMLRenderer().ToHTML(ctx, s.Title, md)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, html)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Text writes one aligned "role density path" line per entry.
func Text(w io.Writer, entries []passimages.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tDENSITY\tPATH")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Role, e.Density, e.Path)
	}
	return tw.Flush()
}

// Manifest nests entries as role -> density -> path, preserving entry order.
func Manifest(entries []passimages.Entry) yamlutil.Ordered {
	manifest := yamlutil.Ordered{}
	index := make(map[passimages.Role]int)

	for _, e := range entries {
		i, ok := index[e.Role]
		if !ok {
			i = len(manifest)
			index[e.Role] = i
			manifest = append(manifest, yamlutil.Field{Key: string(e.Role), Value: yamlutil.Ordered{}})
		}
		densities := manifest[i].Value.(yamlutil.Ordered)
		manifest[i].Value = append(densities, yamlutil.Field{Key: string(e.Density), Value: e.Path})
	}

	return manifest
}

// YAML encodes the entries as a manifest document.
func YAML(entries []passimages.Entry) ([]byte, error) {
	if len(entries) == 0 {
		return []byte("{}\n"), nil
	}
	return yamlutil.Marshal(Manifest(entries))
}
