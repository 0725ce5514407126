package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var hiddenElements = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Iframe:   true,
	atom.Template: true,
}

var blockElements = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Br:         true,
	atom.Li:         true,
	atom.Pre:        true,
	atom.Tr:         true,
	atom.Blockquote: true,
	atom.Section:    true,
	atom.Article:    true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
}

// HTMLText returns the shorthand carried by an HTML page. When the page has
// <code> or <pre> elements only their text is used, otherwise all visible
// text. Block elements end a line and entities are decoded.
func HTMLText(content string) (string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var snippets []*html.Node
	findCode(doc, &snippets)
	if len(snippets) == 0 {
		return visibleText(doc), nil
	}

	var parts []string
	for _, n := range snippets {
		if text := visibleText(n); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// findCode collects the outermost <code> and <pre> elements outside hidden
// content
func findCode(n *html.Node, found *[]*html.Node) {
	if n.Type == html.ElementNode {
		if hiddenElements[n.DataAtom] {
			return
		}
		if n.DataAtom == atom.Code || n.DataAtom == atom.Pre {
			*found = append(*found, n)
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		findCode(c, found)
	}
}

// visibleText flattens n to text, skipping scripts, styles and other
// content a reader never sees
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if hiddenElements[n.DataAtom] {
				return
			}
			if blockElements[n.DataAtom] {
				buf.WriteString("\n")
				defer buf.WriteString("\n")
			}
		}

		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
