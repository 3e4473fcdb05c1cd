package slides

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeDeck(t *testing.T, slides map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.pptx")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	for name, body := range slides {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func slideXML(paragraphs ...string) string {
	body := ""
	for _, p := range paragraphs {
		body += fmt.Sprintf("<a:p><a:r><a:t>%s</a:t></a:r></a:p>", p)
	}
	return `<?xml version="1.0"?><p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"><p:cSld><p:spTree>` + body + `</p:spTree></p:cSld></p:sld>`
}

func TestExtractTextDeckOrderAndPlaceholders(t *testing.T) {
	path := writeDeck(t, map[string]string{
		"ppt/slides/slide2.xml":  slideXML(),
		"ppt/slides/slide1.xml":  slideXML("Coping strategies", "Breathing exercises"),
		"ppt/slides/slide10.xml": slideXML("Crisis resources"),
		"ppt/presentation.xml":   "<p:presentation/>",
	})

	texts, err := ExtractText(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"Coping strategies\nBreathing exercises",
		"[slide 2 - no text]",
		"Crisis resources",
	}
	if len(texts) != len(want) {
		t.Fatalf("got %d slides, want %d: %v", len(texts), len(want), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("slide %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestExtractTextNoSlides(t *testing.T) {
	path := writeDeck(t, map[string]string{"docProps/core.xml": "<x/>"})

	if _, err := ExtractText(path); err == nil {
		t.Fatal("expected error for archive without slides")
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "nope.pptx")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
