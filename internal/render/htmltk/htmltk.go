// Package htmltk implements the render toolkit on golang.org/x/net/html nodes.
package htmltk

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/superposition/board-chess-club/internal/render"
	"github.com/superposition/board-chess-club/internal/view"
)

// Toolkit builds inline-styled HTML elements.
type Toolkit struct{}

var _ render.Toolkit[*html.Node] = Toolkit{}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func appendChildren(n *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		n.AppendChild(c)
	}
	return n
}

// Box is a relatively positioned square so overlays can be anchored in it.
func (Toolkit) Box(size int, color string) *html.Node {
	return element(atom.Div,
		attr("class", "square"),
		attr("style", fmt.Sprintf("position:relative;width:%dpx;height:%dpx;background-color:%s", size, size, color)),
	)
}

// Layer appends layers as children of base.
func (Toolkit) Layer(base *html.Node, layers ...*html.Node) *html.Node {
	return appendChildren(base, layers...)
}

// Row is a horizontal flex container.
func (Toolkit) Row(items ...*html.Node) *html.Node {
	return appendChildren(element(atom.Div,
		attr("class", "rank"),
		attr("style", "display:flex;flex-direction:row"),
	), items...)
}

// Column is a vertical flex container.
func (Toolkit) Column(items ...*html.Node) *html.Node {
	return appendChildren(element(atom.Div,
		attr("class", "board"),
		attr("style", "display:flex;flex-direction:column"),
	), items...)
}

// Image fills the cell height and is centered in it.
func (Toolkit) Image(src, alt string) *html.Node {
	return element(atom.Img,
		attr("class", "piece"),
		attr("src", src),
		attr("alt", alt),
		attr("style", "position:absolute;top:0;bottom:0;left:0;right:0;margin:auto;height:100%"),
	)
}

var anchorStyle = map[render.Anchor]string{
	render.Center:      "top:50%;left:50%;transform:translate(-50%,-50%)",
	render.TopLeft:     "top:2px;left:4px",
	render.BottomRight: "bottom:2px;right:4px",
}

// Text is an absolutely positioned label.
func (Toolkit) Text(text string, anchor render.Anchor, color string) *html.Node {
	span := element(atom.Span,
		attr("class", "label "+anchor.String()),
		attr("style", fmt.Sprintf("position:absolute;%s;color:%s;font:bold 12px sans-serif", anchorStyle[anchor], color)),
	)
	span.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return span
}

// Frame fixes the board width and centers it horizontally.
func (Toolkit) Frame(width int, child *html.Node) *html.Node {
	return appendChildren(element(atom.Div,
		attr("class", "chessboard"),
		attr("style", fmt.Sprintf("width:%dpx;margin:0 auto", width)),
	), child)
}

// Page wraps board in a complete HTML document.
func Page(title string, board *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	titleNode := element(atom.Title)
	titleNode.AppendChild(&html.Node{Type: html.TextNode, Data: title})

	head := appendChildren(element(atom.Head),
		element(atom.Meta, attr("charset", "utf-8")),
		element(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")),
		titleNode,
	)
	body := appendChildren(element(atom.Body,
		attr("style", "margin:0;padding:24px 0;background-color:#f4f4f4"),
	), board)

	doc.AppendChild(appendChildren(element(atom.Html, attr("lang", "en")), head, body))
	return doc
}

// Write serializes n.
func Write(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// BoardPage renders g and wraps it in a document titled title.
func BoardPage(title string, g view.Grid, opts render.Options) *html.Node {
	return Page(title, render.Render[*html.Node](Toolkit{}, g, opts))
}
