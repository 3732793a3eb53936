package application_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/server/application"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	. "github.com/veedubyou/castel-site/src/shared/testing"
)

var _ = Describe("App", func() {
	var (
		staticDir string
		server    *httptest.Server
	)

	BeforeEach(func() {
		By("Laying out a static directory", func() {
			var err error
			staticDir, err = os.MkdirTemp("", "castel-static")
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(func() {
				_ = os.RemoveAll(staticDir)
			})

			Expect(os.MkdirAll(filepath.Join(staticDir, "images"), 0o755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(staticDir, "placeholder.svg"), []byte("<svg></svg>"), 0o644)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(staticDir, "images", "cover.jpg"), []byte("jpg"), 0o644)).To(Succeed())
		})

		By("Starting the app without any integrations", func() {
			app := application.NewApp(application.Config{
				StaticDir:          staticDir,
				CORSAllowedOrigins: []string{"*"},
				Clock:              clock.Fixed(time.Date(2024, 7, 18, 0, 0, 0, 0, time.UTC)),
			})
			server = httptest.NewServer(app.Handler())
		})
	})

	AfterEach(func() {
		server.Close()
	})

	get := func(target string) *http.Response {
		res, err := server.Client().Get(server.URL + target)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(res.Body.Close)
		return res
	}

	It("answers health checks", func() {
		Expect(get("/health-check").StatusCode).To(Equal(http.StatusOK))
	})

	It("serves the pages", func() {
		for _, target := range []string{"/", "/blog", "/blog/art-live-electronic-performance"} {
			res := get(target)
			Expect(res.StatusCode).To(Equal(http.StatusOK), target)
			Expect(res.Header.Get("Content-Type")).To(HavePrefix("text/html"), target)
		}
	})

	It("serves the not found page for unknown pages", func() {
		res := get("/nowhere")
		Expect(res.StatusCode).To(Equal(http.StatusNotFound))
		Expect(res.Header.Get("Content-Type")).To(HavePrefix("text/html"))

		res = get("/blog/nope")
		Expect(res.StatusCode).To(Equal(http.StatusNotFound))
		Expect(res.Header.Get("Content-Type")).To(HavePrefix("text/html"))
	})

	It("keeps API misses in JSON", func() {
		res := get("/api/nowhere")
		Expect(res.StatusCode).To(Equal(http.StatusNotFound))
		Expect(res.Header.Get("Content-Type")).To(HavePrefix("application/json"))
	})

	It("serves the content API", func() {
		res := get("/api/posts?limit=1")
		Expect(res.StatusCode).To(Equal(http.StatusOK))
		posts := DecodeJSON[[]contententity.BlogPost](res.Body)
		Expect(posts).To(HaveLen(1))
		Expect(posts[0].Fields.Defined.Slug).To(Equal("evolution-electronic-music-analog-digital"))

		res = get("/api/posts/art-live-electronic-performance")
		Expect(res.StatusCode).To(Equal(http.StatusOK))

		res = get("/api/releases?featured=true")
		Expect(res.StatusCode).To(Equal(http.StatusOK))
		Expect(DecodeJSON[[]contententity.MusicRelease](res.Body)).To(HaveLen(1))

		res = get("/api/tour?upcoming=true")
		Expect(res.StatusCode).To(Equal(http.StatusOK))
		Expect(DecodeJSON[[]contententity.TourDate](res.Body)).To(HaveLen(1))

		res = get("/api/tracks")
		Expect(res.StatusCode).To(Equal(http.StatusOK))
		Expect(DecodeJSON[[]contententity.Track](res.Body)).To(HaveLen(4))
	})

	It("rejects bad query params", func() {
		res := get("/api/posts?limit=lots")
		Expect(res.StatusCode).To(Equal(http.StatusBadRequest))
		Expect(DecodeJSONError(res.Body).Code).To(Equal("bad_limit"))

		res = get("/api/tour?upcoming=maybe")
		Expect(res.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("answers CORS preflights on the API", func() {
		req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/contact", nil)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")

		res, err := server.Client().Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer res.Body.Close()

		Expect(res.Header.Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})

	It("serves static files", func() {
		Expect(get("/placeholder.svg?height=300&width=300").StatusCode).To(Equal(http.StatusOK))
		Expect(get("/images/cover.jpg").StatusCode).To(Equal(http.StatusOK))
	})

	It("refuses scripts it doesn't mirror", func() {
		res := get("/assets/scripts/jquery.min.js")
		Expect(res.StatusCode).To(Equal(http.StatusNotFound))
		Expect(DecodeJSONError(res.Body).Code).To(Equal("script_not_found"))
	})
})
