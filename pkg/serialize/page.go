package serialize

import (
	"io"

	"github.com/blockforge-dev/blockforge/pkg/element"
)

// Document contains the data needed to render a complete HTML page
// around a serialized content tree.
type Document struct {
	// Body is the root node for the page content.
	Body *element.Node

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains meta tags for the document head.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS blocks.
	Styles []string

	// Scripts contains script sources appended before </body>.
	Scripts []string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name    string // name attribute
	Content string // content attribute
}

// RenderDocument renders a full HTML document to the writer, wrapping
// the document body in DOCTYPE, html, head and body.
func (s *Serializer) RenderDocument(w io.Writer, doc Document) error {
	if doc.Lang == "" {
		doc.Lang = "en"
	}

	head := element.El("head",
		element.El("meta", element.Props{"charset": "utf-8"}),
		element.El("meta", element.Props{
			"name":    "viewport",
			"content": "width=device-width, initial-scale=1",
		}),
	)
	for _, meta := range doc.Meta {
		head.Children = append(head.Children, element.El("meta", element.Props{
			"name":    meta.Name,
			"content": meta.Content,
		}))
	}
	if doc.Title != "" {
		head.Children = append(head.Children, element.El("title", doc.Title))
	}
	for _, href := range doc.StyleSheets {
		head.Children = append(head.Children, element.El("link", element.Props{
			"rel":  "stylesheet",
			"href": href,
		}))
	}
	for _, css := range doc.Styles {
		head.Children = append(head.Children, element.El("style", element.Raw(css)))
	}

	body := element.El("body", doc.Body)
	for _, src := range doc.Scripts {
		body.Children = append(body.Children, element.El("script", element.Props{"src": src}))
	}

	page := element.El("html", element.Props{"lang": doc.Lang}, head, body)

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	return s.RenderToWriter(w, page)
}
