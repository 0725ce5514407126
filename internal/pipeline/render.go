package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/geoshort/internal/model"
)

// Format is an output rendering
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatHTML     Format = "html"
)

// ParseFormat accepts a format name or its common alias
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, markdown, json, yaml or html)", s)
}

// Extension is the file extension used for batch output
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatHTML:
		return ".html"
	}
	return ".txt"
}

// Renderer writes documents in the supported formats
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer. The footer appears in markdown and html.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// Render writes doc to w in the given format
func (r *Renderer) Render(w io.Writer, doc *model.Document, format Format) error {
	switch format {
	case FormatText:
		return r.renderText(w, doc)
	case FormatMarkdown:
		return r.renderMarkdown(w, doc)
	case FormatJSON:
		return r.renderJSON(w, doc)
	case FormatYAML:
		return r.renderYAML(w, doc)
	case FormatHTML:
		return r.renderHTML(w, doc)
	}
	return fmt.Errorf("unknown format %q", format)
}

// RenderFile writes doc to path in the given format
func (r *Renderer) RenderFile(doc *model.Document, format Format, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()

	return r.Render(f, doc, format)
}

func (r *Renderer) renderText(w io.Writer, doc *model.Document) error {
	var b strings.Builder
	for _, res := range doc.Results {
		fmt.Fprintf(&b, "%d. %s\n", res.Index, res.Original)
		for _, line := range strings.Split(res.Translation, "\n") {
			fmt.Fprintf(&b, "   %s\n", line)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) renderMarkdown(w io.Writer, doc *model.Document) error {
	var b strings.Builder

	b.WriteString("# Translation\n\n")
	if doc.Source != "" {
		fmt.Fprintf(&b, "Source: `%s`\n\n", doc.Source)
	}

	for _, res := range doc.Results {
		fmt.Fprintf(&b, "%d. %s\n", res.Index, codeSpan(res.Original))
		for _, line := range strings.Split(res.Translation, "\n") {
			fmt.Fprintf(&b, "   %s\n", line)
		}
	}

	b.WriteString("\n## Copy all\n\n```text\n")
	if text := doc.CopyText(); text != "" {
		b.WriteString(text)
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	if r.includeFooter {
		fmt.Fprintf(&b, "\n---\n\n_Translated by geoshort at %s_\n", doc.TranslatedAt.Format("2006-01-02 15:04:05 MST"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// codeSpan wraps s in enough backticks that any it contains survive
func codeSpan(s string) string {
	fence := "`"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	if fence == "`" {
		return fence + s + fence
	}
	return fence + " " + s + " " + fence
}

func (r *Renderer) renderJSON(w io.Writer, doc *model.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func (r *Renderer) renderYAML(w io.Writer, doc *model.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	return enc.Close()
}

func (r *Renderer) renderHTML(w io.Writer, doc *model.Document) error {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	page := element("html", html.Attribute{Key: "lang", Val: "en"})
	root.AppendChild(page)

	head := element("head")
	head.AppendChild(element("meta", html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(element("title"), "geoshort translation"))
	page.AppendChild(head)

	body := element("body")
	page.AppendChild(body)
	body.AppendChild(withText(element("h1"), "Translation"))

	list := element("ol")
	for _, res := range doc.Results {
		item := element("li", html.Attribute{Key: "value", Val: fmt.Sprint(res.Index)})
		item.AppendChild(withText(element("code"), res.Original))

		para := element("p")
		for i, line := range strings.Split(res.Translation, "\n") {
			if i > 0 {
				para.AppendChild(element("br"))
			}
			para.AppendChild(textNode(line))
		}
		item.AppendChild(para)
		list.AppendChild(item)
	}
	body.AppendChild(list)

	body.AppendChild(withText(element("h2"), "Copy all"))
	body.AppendChild(withText(element("pre"), doc.CopyText()))

	if r.includeFooter {
		footer := element("footer")
		footer.AppendChild(withText(element("p"),
			"Translated by geoshort at "+doc.TranslatedAt.Format("2006-01-02 15:04:05 MST")))
		body.AppendChild(footer)
	}

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withText(n *html.Node, s string) *html.Node {
	n.AppendChild(textNode(s))
	return n
}
