// Package diagram inspects and stores the geometric SVG the model returns
// alongside geometry solutions.
package diagram

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotSVG is returned when the markup does not have an <svg> root.
var ErrNotSVG = errors.New("not an svg document")

// Diagram summarizes an SVG document.
type Diagram struct {
	Raw     string
	Width   string
	Height  string
	ViewBox string
	Points  int
	Labels  []string
	Lines   int
}

// Empty reports whether the model returned no diagram. Non-geometry
// solutions always carry an empty string.
func Empty(svg string) bool {
	return strings.TrimSpace(svg) == ""
}

// Parse reads the root attributes and counts the drawn elements.
func Parse(svg string) (*Diagram, error) {
	raw := strings.TrimSpace(svg)
	if !strings.HasPrefix(raw, "<svg") {
		return nil, ErrNotSVG
	}

	d := &Diagram{Raw: raw}
	dec := xml.NewDecoder(strings.NewReader(raw))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose

	var root bool
	var inText bool
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "svg":
				if !root {
					root = true
					for _, a := range t.Attr {
						switch a.Name.Local {
						case "width":
							d.Width = a.Value
						case "height":
							d.Height = a.Value
						case "viewBox":
							d.ViewBox = a.Value
						}
					}
				}
			case "circle":
				d.Points++
			case "line", "polyline", "path", "polygon":
				d.Lines++
			case "text":
				inText = true
				text.Reset()
			}
		case xml.CharData:
			if inText {
				text.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "text" && inText {
				inText = false
				if l := strings.TrimSpace(text.String()); l != "" {
					d.Labels = append(d.Labels, l)
				}
			}
		}
	}
	if !root {
		return nil, ErrNotSVG
	}
	return d, nil
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Save writes svg to dir/name.svg, creating dir if needed, and returns the
// path written.
func Save(dir, name, svg string) (string, error) {
	if Empty(svg) {
		return "", errors.New("save diagram: empty svg")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("save diagram: %w", err)
	}
	name = unsafeName.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "diagram"
	}
	if !strings.HasSuffix(name, ".svg") {
		name += ".svg"
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(svg)+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("save diagram: %w", err)
	}
	return path, nil
}
