// Package richtext turns blog post bodies into HTML. A body is either a CMS
// rich-text document (a tree of typed nodes) or a Markdown string.
package richtext

import (
	"bytes"
	"encoding/json"
	"html/template"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/lib/jsonlib"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	DocumentNode      = "document"
	ParagraphNode     = "paragraph"
	Heading1Node      = "heading-1"
	Heading2Node      = "heading-2"
	Heading3Node      = "heading-3"
	UnorderedListNode = "unordered-list"
	OrderedListNode   = "ordered-list"
	ListItemNode      = "list-item"
	QuoteNode         = "blockquote"
	RuleNode          = "hr"
	EmbeddedAssetNode = "embedded-asset-block"
	HyperlinkNode     = "hyperlink"
	TextNode          = "text"

	BoldMark   = "bold"
	ItalicMark = "italic"
	CodeMark   = "code"
)

type Mark struct {
	Type string `json:"type"`
}

type Node struct {
	NodeType string         `json:"nodeType"`
	Value    string         `json:"value,omitempty"`
	Marks    []Mark         `json:"marks,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
	Content  []Node         `json:"content,omitempty"`
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Render returns an empty string for bodies with nothing to show,
// so callers can put placeholder copy in their place
func Render(content any) (template.HTML, error) {
	switch body := content.(type) {
	case nil:
		return "", nil

	case string:
		return renderMarkdown(body)

	default:
		document, err := decodeDocument(body)
		if err != nil {
			return "", err
		}

		return renderDocument(document), nil
	}
}

func renderMarkdown(body string) (template.HTML, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}

	buf := bytes.Buffer{}
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return "", errors.Wrap(err, "Failed to render markdown body")
	}

	return template.HTML(buf.String()), nil
}

func decodeDocument(body any) (Node, error) {
	jsonBytes, err := json.Marshal(body)
	if err != nil {
		return Node{}, errors.Wrap(err, "Failed to encode rich text body")
	}

	document := Node{}
	if err := json.Unmarshal(jsonBytes, &document); err != nil {
		return Node{}, errors.Wrap(err, "Rich text body isn't a document")
	}

	return document, nil
}

func renderDocument(document Node) template.HTML {
	if document.NodeType != DocumentNode || len(document.Content) == 0 {
		return ""
	}

	builder := &strings.Builder{}
	renderChildren(builder, document)
	return template.HTML(builder.String())
}

func renderChildren(builder *strings.Builder, node Node) {
	for _, child := range node.Content {
		renderNode(builder, child)
	}
}

func renderNode(builder *strings.Builder, node Node) {
	wrap := func(tag string) {
		builder.WriteString("<" + tag + ">")
		renderChildren(builder, node)
		builder.WriteString("</" + tag + ">")
	}

	switch node.NodeType {
	case TextNode:
		renderText(builder, node)
	case ParagraphNode:
		wrap("p")
	case Heading1Node:
		wrap("h1")
	case Heading2Node:
		wrap("h2")
	case Heading3Node:
		wrap("h3")
	case UnorderedListNode:
		wrap("ul")
	case OrderedListNode:
		wrap("ol")
	case ListItemNode:
		wrap("li")
	case QuoteNode:
		wrap("blockquote")
	case RuleNode:
		builder.WriteString("<hr>")
	case EmbeddedAssetNode:
		renderAsset(builder, node)
	case HyperlinkNode:
		renderLink(builder, node)
	default:
		// unsupported node types still show their text
		renderChildren(builder, node)
	}
}

func renderText(builder *strings.Builder, node Node) {
	text := template.HTMLEscapeString(node.Value)

	for _, mark := range node.Marks {
		switch mark.Type {
		case BoldMark:
			text = "<strong>" + text + "</strong>"
		case ItalicMark:
			text = "<em>" + text + "</em>"
		case CodeMark:
			text = "<code>" + text + "</code>"
		}
	}

	builder.WriteString(text)
}

func renderAsset(builder *strings.Builder, node Node) {
	target, ok := node.Data["target"].(map[string]any)
	if !ok {
		return
	}

	asset, err := jsonlib.MapToStruct[contententity.Asset](target)
	if err != nil || asset.URL() == "" {
		return
	}

	title := asset.Fields.Title
	alt := title
	if alt == "" {
		alt = "Blog image"
	}

	builder.WriteString(`<figure class="embedded-asset">`)
	builder.WriteString(`<img src="` + template.HTMLEscapeString(AbsoluteURL(asset.URL())) + `" alt="` + template.HTMLEscapeString(alt) + `">`)
	if title != "" {
		builder.WriteString("<figcaption>" + template.HTMLEscapeString(title) + "</figcaption>")
	}
	builder.WriteString("</figure>")
}

func renderLink(builder *strings.Builder, node Node) {
	uri, _ := node.Data["uri"].(string)

	builder.WriteString(`<a href="` + template.HTMLEscapeString(safeURI(uri)) + `" target="_blank" rel="noopener noreferrer">`)
	renderChildren(builder, node)
	builder.WriteString("</a>")
}

// AbsoluteURL gives protocol relative CMS asset URLs an https scheme
func AbsoluteURL(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}

	return url
}

func safeURI(uri string) string {
	lower := strings.ToLower(strings.TrimSpace(uri))

	for _, allowed := range []string{"https://", "http://", "mailto:", "/", "#"} {
		if strings.HasPrefix(lower, allowed) {
			return uri
		}
	}

	return "#"
}
