package page_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/server/internal/blog/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/server/internal/page/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/page/render"
	"github.com/veedubyou/castel-site/src/server/internal/page/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/release/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/tour/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/track/usecase"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/source"
	"github.com/veedubyou/castel-site/src/shared/content/source/contentsourcefakes"
	"github.com/veedubyou/castel-site/src/shared/profile"
	. "github.com/veedubyou/castel-site/src/shared/testing"
)

var _ = Describe("Page", func() {
	var (
		source   contentsource.Source
		today    time.Time
		renderer *render.Renderer
		usecase  pageusecase.Usecase
		gateway  pagegateway.Gateway
	)

	BeforeEach(func() {
		source = nil
		today = time.Date(2024, 7, 18, 9, 0, 0, 0, time.UTC)
		renderer = ExpectSuccess(render.New())
	})

	JustBeforeEach(func() {
		fixedClock := clock.Fixed(today)
		usecase = pageusecase.NewUsecase(
			blogusecase.NewUsecase(source),
			releaseusecase.NewUsecase(source),
			tourusecase.NewUsecase(source, fixedClock),
			trackusecase.NewUsecase(source, nil),
			profile.Default(),
			fixedClock,
		)
		gateway = pagegateway.NewGateway(usecase)
	})

	serve := func(target string, handler func(c echo.Context) error) *httptest.ResponseRecorder {
		req := RequestFactory{
			Method: "GET",
			Target: target,
		}.MakeFake()

		res := httptest.NewRecorder()
		e := echo.New()
		e.Renderer = renderer
		c := e.NewContext(req, res)

		Expect(handler(c)).To(Succeed())
		return res
	}

	Describe("Landing page", func() {
		var res *httptest.ResponseRecorder

		JustBeforeEach(func() {
			res = serve("/", gateway.Landing)
		})

		It("renders every section", func() {
			Expect(res.Code).To(Equal(http.StatusOK))
			Expect(res.Header().Get(echo.HeaderContentType)).To(HavePrefix("text/html"))

			for _, anchor := range []string{"home", "blog", "music", "tour", "about", "contact"} {
				Expect(res.Body.String()).To(ContainSubstring(`id="` + anchor + `"`))
			}
		})

		It("shows the sample content", func() {
			body := res.Body.String()
			Expect(body).To(ContainSubstring("The Evolution of Electronic Music"))
			Expect(body).To(ContainSubstring(`href="/blog/evolution-electronic-music-analog-digital"`))
			Expect(body).To(ContainSubstring("Neon Nights EP"))
			Expect(body).To(ContainSubstring("Cosmic Waves"))
		})

		It("only lists upcoming shows", func() {
			body := res.Body.String()
			Expect(body).NotTo(ContainSubstring("Electric Dreams Festival"))
			Expect(body).To(ContainSubstring("Neon Nights Club"))
			Expect(body).To(ContainSubstring("SOLD OUT"))
			Expect(body).To(ContainSubstring("JUL"))
		})

		It("hands the tracks to the disc widgets", func() {
			Expect(res.Body.String()).To(ContainSubstring(`data-disc="thumbnail"`))
			Expect(res.Body.String()).To(ContainSubstring(`data-disc="compact"`))
			Expect(res.Body.String()).To(ContainSubstring("data-tracks="))
		})

		It("renders the profile", func() {
			body := res.Body.String()
			Expect(body).To(ContainSubstring("admin@rodriwcastel.site"))
			Expect(body).To(ContainSubstring("15551234567"))
			Expect(body).To(ContainSubstring("Bill and Victoria"))
			Expect(body).To(ContainSubstring("&copy; 2024 Rodriw Castel"))
		})

		Context("when the content source is failing", func() {
			BeforeEach(func() {
				failing := &contentsourcefakes.FakeSource{}
				failing.GetEntriesReturns(nil, errors.New("CMS is down"))
				source = failing
			})

			It("still renders with the sample content", func() {
				Expect(res.Code).To(Equal(http.StatusOK))
				Expect(res.Body.String()).To(ContainSubstring("Digital Dreams"))
			})
		})
	})

	Describe("Blog index", func() {
		It("lists the posts with their dates", func() {
			res := serve("/blog", gateway.BlogIndex)
			Expect(res.Code).To(Equal(http.StatusOK))

			body := res.Body.String()
			Expect(body).To(ContainSubstring("All <span class=\"accent\">Blog Posts</span>"))
			Expect(body).To(ContainSubstring("January 15, 2024"))
			Expect(body).To(ContainSubstring("8 min"))
			Expect(body).To(ContainSubstring("<li>Electronic Music</li><li>Production</li></ul>"))
		})

		Context("with no posts in the source", func() {
			BeforeEach(func() {
				source = SourceFromEntries()
			})

			It("says there's nothing yet", func() {
				res := serve("/blog", gateway.BlogIndex)
				Expect(res.Body.String()).To(ContainSubstring("No blog posts available at the moment."))
			})
		})
	})

	Describe("Blog post", func() {
		Context("with sample content", func() {
			It("renders placeholder copy for the empty body", func() {
				slug := "evolution-electronic-music-analog-digital"
				res := serve("/blog/"+slug, func(c echo.Context) error {
					return gateway.BlogPost(c, slug)
				})

				Expect(res.Code).To(Equal(http.StatusOK))
				body := res.Body.String()
				Expect(body).To(ContainSubstring("By Rodriw Castel"))
				Expect(body).To(ContainSubstring("This is a sample blog post content."))
				Expect(body).To(ContainSubstring("<li>Technology</li>"))
			})
		})

		Context("with a live post", func() {
			BeforeEach(func() {
				source = SourceFromEntries(ContentEntry(contententity.BlogPostType, "live", map[string]any{
					"title":       "Live post",
					"slug":        "live-post",
					"publishDate": "2024-03-02",
					"author":      "Rodriw Castel",
					"content": document(
						node("paragraph", text("From the "), text("studio", "bold")),
					),
				}))
			})

			It("renders the rich text body", func() {
				res := serve("/blog/live-post", func(c echo.Context) error {
					return gateway.BlogPost(c, "live-post")
				})

				Expect(res.Code).To(Equal(http.StatusOK))
				body := res.Body.String()
				Expect(body).To(ContainSubstring("<p>From the <strong>studio</strong></p>"))
				Expect(body).To(ContainSubstring("March 2, 2024"))
				Expect(body).NotTo(ContainSubstring("This is a sample blog post content."))
				Expect(body).NotTo(ContainSubstring(`class="featured-image"`))
			})
		})

		It("renders the not found page for unknown slugs", func() {
			res := serve("/blog/nope", func(c echo.Context) error {
				return gateway.BlogPost(c, "nope")
			})

			Expect(res.Code).To(Equal(http.StatusNotFound))
			Expect(res.Body.String()).To(ContainSubstring("<h1>404</h1>"))
		})
	})

	It("renders the not found page", func() {
		res := serve("/nowhere", gateway.NotFound)
		Expect(res.Code).To(Equal(http.StatusNotFound))
		Expect(res.Body.String()).To(ContainSubstring("doesn&#39;t exist"))
	})

	It("formats CMS dates", func() {
		Expect(pageusecase.FormatDate("2024-01-05")).To(Equal("January 5, 2024"))
		Expect(pageusecase.FormatDate("soon")).To(Equal("soon"))
	})
})
