// Package slides pulls per-slide text out of a .pptx deck. A pptx file is a
// zip archive; slide bodies live in ppt/slides/slideN.xml and visible text sits
// in DrawingML <a:t> runs.
package slides

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slideEntryPattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// ExtractText returns one text blob per slide, in deck order. Slides with no
// visible text yield a numbered placeholder so passage indexes stay aligned
// with the deck.
func ExtractText(path string) ([]string, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open pptx %s: %w", path, err)
	}
	defer reader.Close()

	type slideEntry struct {
		index int
		file  *zip.File
	}
	var entries []slideEntry
	for _, f := range reader.File {
		m := slideEntryPattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, slideEntry{index: n, file: f})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no slides found in %s", path)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	texts := make([]string, 0, len(entries))
	for i, entry := range entries {
		text, err := slideText(entry.file)
		if err != nil {
			return nil, fmt.Errorf("read slide %d: %w", entry.index, err)
		}
		if text == "" {
			text = fmt.Sprintf("[slide %d - no text]", i+1)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// slideText decodes one slide XML and joins its text runs. Paragraph
// boundaries (<a:p>) become newlines.
func slideText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var parts []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			parts = append(parts, s)
		}
		current.Reset()
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var run string
				if err := decoder.DecodeElement(&run, &t); err != nil {
					return "", err
				}
				current.WriteString(run)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				flush()
			}
		}
	}
	flush()

	return strings.Join(parts, "\n"), nil
}
