package crawler

import (
	"strings"
	"testing"
)

// TestParsePage tests visible text and link extraction.
func TestParsePage(t *testing.T) {
	t.Parallel()

	t.Run("extracts anchor hrefs in document order", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<a href="http://a.test/1">one</a>
			<p>filler</p>
			<a href="http://a.test/2">two</a>
			<a>no href</a>
		</body></html>`

		result, err := ParsePage(strings.NewReader(page))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		want := []string{"http://a.test/1", "http://a.test/2"}
		if len(result.Links) != len(want) {
			t.Fatalf("expected %d links, got %d: %v", len(want), len(result.Links), result.Links)
		}
		for i, link := range want {
			if result.Links[i] != link {
				t.Errorf("link %d: expected %q, got %q", i, link, result.Links[i])
			}
		}
	})

	t.Run("normalizes whitespace in visible text", func(t *testing.T) {
		t.Parallel()

		page := "<html><body><h1>Gatos</h1>\n\n<p>  e \t cachorros  </p></body></html>"
		result, err := ParsePage(strings.NewReader(page))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if result.Text != "Gatos e cachorros" {
			t.Errorf("expected normalized text, got %q", result.Text)
		}
	})

	t.Run("skips script and style content", func(t *testing.T) {
		t.Parallel()

		page := `<html><head>
			<style>body { color: red; }</style>
			<script>var hidden = "secret";</script>
		</head><body><p>visible</p><noscript>fallback</noscript></body></html>`

		result, err := ParsePage(strings.NewReader(page))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}

		if result.Text != "visible" {
			t.Errorf("expected only visible text, got %q", result.Text)
		}
	})

	t.Run("tolerates malformed HTML", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><p>unclosed <a href="http://a.test/x">link`
		result, err := ParsePage(strings.NewReader(page))
		if err != nil {
			t.Fatalf("expected malformed HTML to parse, got %v", err)
		}

		if len(result.Links) != 1 {
			t.Errorf("expected 1 link, got %d", len(result.Links))
		}
	})

	t.Run("empty document yields empty result", func(t *testing.T) {
		t.Parallel()

		result, err := ParsePage(strings.NewReader(""))
		if err != nil {
			t.Fatalf("failed to parse: %v", err)
		}
		if result.Text != "" || len(result.Links) != 0 {
			t.Errorf("expected empty result, got text=%q links=%v", result.Text, result.Links)
		}
	})
}
