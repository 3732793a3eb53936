package page_test

import (
	"html/template"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/server/internal/page/richtext"
	. "github.com/veedubyou/castel-site/src/shared/testing"
)

func text(value string, marks ...string) map[string]any {
	markList := []any{}
	for _, mark := range marks {
		markList = append(markList, map[string]any{"type": mark})
	}

	return map[string]any{
		"nodeType": "text",
		"value":    value,
		"marks":    markList,
		"data":     map[string]any{},
	}
}

func node(nodeType string, content ...map[string]any) map[string]any {
	children := []any{}
	for _, child := range content {
		children = append(children, child)
	}

	return map[string]any{
		"nodeType": nodeType,
		"data":     map[string]any{},
		"content":  children,
	}
}

func document(content ...map[string]any) map[string]any {
	return node("document", content...)
}

var _ = Describe("Rich text", func() {
	render := func(content any) string {
		html := ExpectSuccess(richtext.Render(content))
		return string(html)
	}

	It("renders nothing for empty bodies", func() {
		Expect(render(nil)).To(BeEmpty())
		Expect(render("   ")).To(BeEmpty())
		Expect(render(map[string]any{})).To(BeEmpty())
		Expect(render(document())).To(BeEmpty())
	})

	It("renders block nodes", func() {
		html := render(document(
			node("heading-1", text("One")),
			node("heading-2", text("Two")),
			node("heading-3", text("Three")),
			node("paragraph", text("Body")),
			node("unordered-list", node("list-item", node("paragraph", text("a")))),
			node("ordered-list", node("list-item", node("paragraph", text("b")))),
			node("blockquote", node("paragraph", text("quoted"))),
			node("hr"),
		))

		Expect(html).To(Equal(
			"<h1>One</h1><h2>Two</h2><h3>Three</h3><p>Body</p>" +
				"<ul><li><p>a</p></li></ul><ol><li><p>b</p></li></ol>" +
				"<blockquote><p>quoted</p></blockquote><hr>"))
	})

	It("applies marks to text", func() {
		html := render(document(node("paragraph",
			text("loud", "bold"),
			text(" and "),
			text("soft", "italic"),
			text(" and "),
			text("x := 1", "code"),
			text("both", "bold", "italic"),
		)))

		Expect(html).To(Equal(
			"<p><strong>loud</strong> and <em>soft</em> and <code>x := 1</code><em><strong>both</strong></em></p>"))
	})

	It("escapes text", func() {
		html := render(document(node("paragraph", text(`<script>alert("hi")</script>`))))
		Expect(html).NotTo(ContainSubstring("<script>"))
		Expect(html).To(ContainSubstring("&lt;script&gt;"))
	})

	It("opens hyperlinks in a new tab", func() {
		link := node("hyperlink", text("listen"))
		link["data"] = map[string]any{"uri": "https://open.spotify.com"}

		html := render(document(node("paragraph", link)))
		Expect(html).To(Equal(
			`<p><a href="https://open.spotify.com" target="_blank" rel="noopener noreferrer">listen</a></p>`))
	})

	It("neutralises script links", func() {
		link := node("hyperlink", text("click"))
		link["data"] = map[string]any{"uri": "javascript:alert(1)"}

		html := render(document(node("paragraph", link)))
		Expect(html).To(ContainSubstring(`href="#"`))
	})

	It("renders embedded assets with an https scheme and a caption", func() {
		asset := node("embedded-asset-block")
		asset["data"] = map[string]any{
			"target": map[string]any{
				"fields": map[string]any{
					"title": "Studio",
					"file":  map[string]any{"url": "//images.ctfassets.net/studio.jpg"},
				},
			},
		}

		html := render(document(asset))
		Expect(html).To(Equal(
			`<figure class="embedded-asset"><img src="https://images.ctfassets.net/studio.jpg" alt="Studio">` +
				`<figcaption>Studio</figcaption></figure>`))
	})

	It("skips embedded assets that didn't resolve", func() {
		asset := node("embedded-asset-block")
		asset["data"] = map[string]any{"target": map[string]any{"sys": map[string]any{"id": "missing"}}}

		Expect(render(document(asset))).To(BeEmpty())
	})

	It("keeps the text of unsupported nodes", func() {
		html := render(document(node("table", node("paragraph", text("cell")))))
		Expect(html).To(Equal("<p>cell</p>"))
	})

	It("renders markdown bodies", func() {
		html := render("## Studio notes\n\nSome **bold** words")
		Expect(html).To(ContainSubstring("<h2>Studio notes</h2>"))
		Expect(html).To(ContainSubstring("<strong>bold</strong>"))
	})

	It("doesn't pass raw html through markdown", func() {
		html := render("<script>alert(1)</script>\n\ntext")
		Expect(html).NotTo(ContainSubstring("<script>"))
	})

	It("rejects bodies that aren't documents", func() {
		_, err := richtext.Render([]int{1, 2})
		Expect(err).To(HaveOccurred())
	})

	It("returns safe html", func() {
		html, err := richtext.Render(document(node("paragraph", text("hi"))))
		Expect(err).NotTo(HaveOccurred())
		Expect(html).To(Equal(template.HTML("<p>hi</p>")))
	})
})
