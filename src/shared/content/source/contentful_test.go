package contentsource_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/source"
	. "github.com/veedubyou/castel-site/src/shared/testing"
)

const entriesResponse = `{
	"items": [
		{
			"sys": {
				"id": "post-1",
				"createdAt": "2024-01-15T10:00:00Z",
				"updatedAt": "2024-01-16T10:00:00Z",
				"contentType": {"sys": {"type": "Link", "linkType": "ContentType", "id": "blogPost"}}
			},
			"fields": {
				"title": "Hello",
				"slug": "hello",
				"featuredImage": {"sys": {"type": "Link", "linkType": "Asset", "id": "img-1"}},
				"gallery": [
					{"sys": {"type": "Link", "linkType": "Asset", "id": "img-1"}},
					{"sys": {"type": "Link", "linkType": "Asset", "id": "missing"}}
				]
			}
		}
	],
	"includes": {
		"Asset": [
			{
				"sys": {"type": "Asset", "id": "img-1"},
				"fields": {"title": "Cover", "file": {"url": "//images.ctfassets.net/cover.jpg", "contentType": "image/jpeg"}}
			}
		]
	}
}`

var _ = Describe("ContentfulSource", func() {
	var (
		server      *httptest.Server
		lastRequest *http.Request
		status      int
		body        string
		src         contentsource.ContentfulSource
	)

	BeforeEach(func() {
		status = http.StatusOK
		body = entriesResponse

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastRequest = r
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))

		src = contentsource.NewContentfulSource(config.Contentful{
			Host:        server.URL,
			SpaceID:     "space-1",
			AccessToken: "token-1",
		}, server.Client())
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("the entries query", func() {
		It("encodes type, filters, order and limit", func() {
			query := contententity.NewQuery(contententity.TourDateType).
				Where("featured", "true").
				WhereAtLeast("date", "2024-07-01").
				OrderBy("date").
				WithLimit(10)

			ExpectSuccess(src.GetEntries(context.Background(), query))

			Expect(lastRequest.URL.Path).To(Equal("/spaces/space-1/environments/master/entries"))
			Expect(lastRequest.Header.Get("Authorization")).To(Equal("Bearer token-1"))

			params := lastRequest.URL.Query()
			Expect(params.Get("content_type")).To(Equal("tourDate"))
			Expect(params.Get("fields.featured")).To(Equal("true"))
			Expect(params.Get("fields.date[gte]")).To(Equal("2024-07-01"))
			Expect(params.Get("order")).To(Equal("fields.date"))
			Expect(params.Get("limit")).To(Equal("10"))
		})

		It("prefixes descending orders with a minus", func() {
			query := contententity.NewQuery(contententity.BlogPostType).OrderByDesc("publishDate")
			ExpectSuccess(src.GetEntries(context.Background(), query))

			params := lastRequest.URL.Query()
			Expect(params.Get("order")).To(Equal("-fields.publishDate"))
			Expect(params).NotTo(HaveKey("limit"))
		})

		It("uses the configured environment", func() {
			src = contentsource.NewContentfulSource(config.Contentful{
				Host:        server.URL,
				SpaceID:     "space-1",
				AccessToken: "token-1",
				Environment: "staging",
			}, server.Client())

			ExpectSuccess(src.GetEntries(context.Background(), contententity.NewQuery(contententity.TrackType)))
			Expect(lastRequest.URL.Path).To(Equal("/spaces/space-1/environments/staging/entries"))
		})
	})

	Describe("the response", func() {
		var entries []contententity.Entry

		BeforeEach(func() {
			entries = ExpectSuccess(src.GetEntries(context.Background(), contententity.NewQuery(contententity.BlogPostType)))
			Expect(entries).To(HaveLen(1))
		})

		It("keeps the sys block and content type", func() {
			Expect(entries[0].Sys).To(Equal(contententity.Sys{
				ID:        "post-1",
				CreatedAt: "2024-01-15T10:00:00Z",
				UpdatedAt: "2024-01-16T10:00:00Z",
			}))
			Expect(entries[0].ContentType).To(Equal(contententity.BlogPostType))
		})

		It("resolves asset links from the includes", func() {
			post := ExpectSuccess(contententity.DecodeRecord[contententity.BlogPostFields](entries[0]))
			Expect(post.Fields.Defined.Title).To(Equal("Hello"))
			Expect(post.Fields.Defined.FeaturedImage.URL()).To(Equal("//images.ctfassets.net/cover.jpg"))
			Expect(post.Fields.Defined.FeaturedImage.Fields.Title).To(Equal("Cover"))
		})

		It("resolves links inside lists and leaves unknown links alone", func() {
			gallery := ExpectType[[]any](entries[0].Fields["gallery"])
			Expect(gallery).To(HaveLen(2))

			resolved := ExpectType[map[string]any](gallery[0])
			Expect(resolved).To(HaveKey("fields"))

			unresolved := ExpectType[map[string]any](gallery[1])
			Expect(unresolved).To(HaveKey("sys"))
		})
	})

	Describe("failures", func() {
		It("marks non-200 responses", func() {
			status = http.StatusUnauthorized
			body = `{"sys": {"id": "AccessTokenInvalid"}, "message": "The access token you sent could not be found or is invalid."}`

			_, err := src.GetEntries(context.Background(), contententity.NewQuery(contententity.TrackType))
			Expect(err).To(HaveOccurred())
			Expect(markers.Is(err, contentsource.BadResponseMark)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("AccessTokenInvalid"))
		})

		It("marks undecodable bodies", func() {
			body = `not json`

			_, err := src.GetEntries(context.Background(), contententity.NewQuery(contententity.TrackType))
			Expect(markers.Is(err, contentsource.BadResponseMark)).To(BeTrue())
		})

		It("marks unreachable hosts", func() {
			src = contentsource.NewContentfulSource(config.Contentful{
				Host:        "http://127.0.0.1:1",
				SpaceID:     "space-1",
				AccessToken: "token-1",
			}, nil)

			_, err := src.GetEntries(context.Background(), contententity.NewQuery(contententity.TrackType))
			Expect(markers.Is(err, contentsource.UnavailableMark)).To(BeTrue())
		})

		It("gives up when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := src.GetEntries(ctx, contententity.NewQuery(contententity.TrackType))
			Expect(markers.Is(err, contentsource.UnavailableMark)).To(BeTrue())
		})
	})
})
