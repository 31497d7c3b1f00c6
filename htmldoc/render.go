// Package htmldoc renders reconstructed paragraphs as HTML.
package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/reflow/layout"
	"github.com/tsawler/reflow/text"
)

// Render writes a page of paragraphs as an HTML fragment: a <div>
// containing one <p> per paragraph, in reading order. Each <p> carries an
// inline style with the paragraph's font, color, alignment, and line
// height; RTL-dominant paragraphs get dir="rtl". Text content is escaped
// by the serializer.
func Render(w io.Writer, paragraphs []layout.Paragraph) error {
	root := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
	}

	for i := range paragraphs {
		root.AppendChild(paragraphNode(&paragraphs[i]))
	}

	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("rendering paragraphs: %w", err)
	}
	return nil
}

// RenderString is [Render] into a string
func RenderString(paragraphs []layout.Paragraph) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, paragraphs); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// paragraphNode builds the <p> element for one paragraph
func paragraphNode(p *layout.Paragraph) *html.Node {
	node := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.P,
		Data:     "p",
		Attr: []html.Attribute{
			{Key: "style", Val: styleAttr(p)},
		},
	}

	if p.Direction == text.RTL {
		node.Attr = append(node.Attr, html.Attribute{Key: "dir", Val: "rtl"})
	}

	node.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: p.Text,
	})

	return node
}

// styleAttr assembles the inline CSS for a paragraph from its
// representative style and refined layout properties
func styleAttr(p *layout.Paragraph) string {
	var parts []string

	if p.Style.FontFamily != "" {
		parts = append(parts, fmt.Sprintf("font-family:%s", p.Style.FontFamily))
	}
	if p.Style.FontSize > 0 {
		parts = append(parts, fmt.Sprintf("font-size:%gpt", p.Style.FontSize))
	}
	if p.Style.FontWeight != 0 {
		parts = append(parts, fmt.Sprintf("font-weight:%d", int(p.Style.FontWeight)))
	}
	if p.Style.FontStyle != 0 {
		parts = append(parts, fmt.Sprintf("font-style:%s", p.Style.FontStyle))
	}
	if p.Style.Color != "" {
		parts = append(parts, fmt.Sprintf("color:%s", p.Style.Color))
	}
	if p.Alignment != layout.AlignUnknown {
		parts = append(parts, fmt.Sprintf("text-align:%s", p.Alignment))
	}
	if p.HasLineHeight() {
		parts = append(parts, fmt.Sprintf("line-height:%gpt", p.LineHeight))
	}

	return strings.Join(parts, ";")
}
