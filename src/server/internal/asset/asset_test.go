package asset_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/server/internal/asset/errors"
	"github.com/veedubyou/castel-site/src/server/internal/asset/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/asset/usecase"
	"github.com/veedubyou/castel-site/src/shared/filestore"
	"github.com/veedubyou/castel-site/src/shared/filestore/filestorefakes"
	"github.com/veedubyou/castel-site/src/shared/lib/errors/mark"
	"github.com/veedubyou/castel-site/src/shared/lib/storagepath"
	. "github.com/veedubyou/castel-site/src/shared/testing"
)

type fakeCDN struct {
	hits    atomic.Int32
	status  atomic.Int32
	release chan struct{}
}

func (f *fakeCDN) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	if f.release != nil {
		<-f.release
	}

	w.WriteHeader(int(f.status.Load()))
	_, _ = w.Write([]byte("/* " + r.URL.Path + " */"))
}

var _ = Describe("Asset", func() {
	var (
		cdn       *fakeCDN
		server    *httptest.Server
		fileStore *filestorefakes.FakeFileStore
		generator *storagepath.Generator
		usecase   assetusecase.Usecase
	)

	BeforeEach(func() {
		cdn = &fakeCDN{}
		cdn.status.Store(http.StatusOK)
		server = httptest.NewServer(cdn)

		fileStore = nil
		generator = nil
	})

	JustBeforeEach(func() {
		config := assetusecase.Config{
			PathGenerator: generator,
			CDNBase:       server.URL + "/ajax/libs/gsap/3.12.2",
			Client:        server.Client(),
		}

		if fileStore != nil {
			config.FileStore = fileStore
		}

		usecase = assetusecase.NewUsecase(config)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Without cloud storage", func() {
		It("serves scripts from the CDN", func() {
			contents, apiErr := usecase.GetScript(context.Background(), "gsap.min.js")
			Expect(apiErr).To(BeNil())
			Expect(string(contents)).To(Equal("/* /ajax/libs/gsap/3.12.2/gsap.min.js */"))
		})

		It("only fetches a script once", func() {
			for i := 0; i < 3; i++ {
				_, apiErr := usecase.GetScript(context.Background(), "Draggable.min.js")
				Expect(apiErr).To(BeNil())
			}

			Expect(cdn.hits.Load()).To(BeEquivalentTo(1))
		})

		It("shares a fetch between concurrent callers", func() {
			cdn.release = make(chan struct{})

			wg := sync.WaitGroup{}
			results := make([]string, 5)
			for i := range results {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()

					contents, apiErr := usecase.GetScript(context.Background(), "TextPlugin.min.js")
					Expect(apiErr).To(BeNil())
					results[i] = string(contents)
				}(i)
			}

			Eventually(cdn.hits.Load).Should(BeEquivalentTo(1))
			close(cdn.release)
			wg.Wait()

			Expect(cdn.hits.Load()).To(BeEquivalentTo(1))
			for _, result := range results {
				Expect(result).To(Equal("/* /ajax/libs/gsap/3.12.2/TextPlugin.min.js */"))
			}
		})

		It("reports upstream failures and tries again next time", func() {
			cdn.status.Store(http.StatusServiceUnavailable)

			_, apiErr := usecase.GetScript(context.Background(), "gsap.min.js")
			Expect(apiErr).NotTo(BeNil())
			Expect(apiErr.ErrorCode).To(Equal(asseterrors.ScriptUnavailableCode))

			cdn.status.Store(http.StatusOK)

			contents, apiErr := usecase.GetScript(context.Background(), "gsap.min.js")
			Expect(apiErr).To(BeNil())
			Expect(contents).NotTo(BeEmpty())
			Expect(cdn.hits.Load()).To(BeEquivalentTo(2))
		})

		It("refuses scripts it doesn't mirror", func() {
			_, apiErr := usecase.GetScript(context.Background(), "../secrets.js")
			Expect(apiErr).NotTo(BeNil())
			Expect(apiErr.ErrorCode).To(Equal(asseterrors.ScriptNotFoundCode))
			Expect(cdn.hits.Load()).To(BeZero())
		})
	})

	Describe("With cloud storage", func() {
		const objectURL = "https://storage.example.com/castel-assets/scripts/gsap/3.12.2/gsap.min.js"

		BeforeEach(func() {
			fileStore = &filestorefakes.FakeFileStore{}
			generator = &storagepath.Generator{
				Host:   "https://storage.example.com",
				Bucket: "castel-assets",
			}
		})

		Context("when the script is mirrored", func() {
			BeforeEach(func() {
				fileStore.ReadFileReturns([]byte("mirrored"), nil)
			})

			It("serves the mirrored copy without touching the CDN", func() {
				contents, apiErr := usecase.GetScript(context.Background(), "gsap.min.js")
				Expect(apiErr).To(BeNil())
				Expect(string(contents)).To(Equal("mirrored"))

				Expect(cdn.hits.Load()).To(BeZero())
				_, url := fileStore.ReadFileArgsForCall(0)
				Expect(url).To(Equal(objectURL))
				Expect(fileStore.WriteFileCallCount()).To(BeZero())
			})
		})

		Context("when the script isn't mirrored yet", func() {
			BeforeEach(func() {
				fileStore.ReadFileReturns(nil, mark.Message(filestore.NotFoundMark, "no such object"))
			})

			It("fetches from the CDN and mirrors the script", func() {
				contents, apiErr := usecase.GetScript(context.Background(), "gsap.min.js")
				Expect(apiErr).To(BeNil())
				Expect(string(contents)).To(Equal("/* /ajax/libs/gsap/3.12.2/gsap.min.js */"))

				Expect(fileStore.WriteFileCallCount()).To(Equal(1))
				_, url, written, contentType := fileStore.WriteFileArgsForCall(0)
				Expect(url).To(Equal(objectURL))
				Expect(written).To(Equal(contents))
				Expect(contentType).To(Equal(assetusecase.ScriptContentType))
			})

			It("still serves the script when mirroring fails", func() {
				fileStore.WriteFileReturns(errors.New("bucket is read only"))

				contents, apiErr := usecase.GetScript(context.Background(), "gsap.min.js")
				Expect(apiErr).To(BeNil())
				Expect(contents).NotTo(BeEmpty())
			})
		})

		Context("when cloud storage is failing", func() {
			BeforeEach(func() {
				fileStore.ReadFileReturns(nil, errors.New("storage is down"))
			})

			It("falls back to the CDN", func() {
				_, apiErr := usecase.GetScript(context.Background(), "gsap.min.js")
				Expect(apiErr).To(BeNil())
				Expect(cdn.hits.Load()).To(BeEquivalentTo(1))
			})
		})
	})

	Describe("Gateway", func() {
		var gateway assetgateway.Gateway

		JustBeforeEach(func() {
			gateway = assetgateway.NewGateway(usecase)
		})

		get := func(name string) *httptest.ResponseRecorder {
			req := RequestFactory{
				Method: "GET",
				Target: "/assets/scripts/" + name,
			}.MakeFake()

			res := httptest.NewRecorder()
			c := PrepareEchoContext(req, res)
			Expect(gateway.GetScript(c, name)).To(Succeed())
			return res
		}

		It("serves the script as javascript", func() {
			res := get("gsap.min.js")
			Expect(res.Code).To(Equal(http.StatusOK))
			Expect(res.Header().Get("Content-Type")).To(Equal("application/javascript; charset=utf-8"))
			Expect(res.Header().Get("Cache-Control")).To(ContainSubstring("immutable"))
			Expect(res.Body.String()).To(ContainSubstring("gsap.min.js"))
		})

		It("responds 404 for unknown scripts", func() {
			res := get("jquery.min.js")
			Expect(res.Code).To(Equal(http.StatusNotFound))
			Expect(DecodeJSONError(res.Body).Code).To(Equal(string(asseterrors.ScriptNotFoundCode)))
		})

		It("responds 502 when the CDN is failing", func() {
			cdn.status.Store(http.StatusInternalServerError)

			res := get("gsap.min.js")
			Expect(res.Code).To(Equal(http.StatusBadGateway))
			Expect(DecodeJSONError(res.Body).Code).To(Equal(string(asseterrors.ScriptUnavailableCode)))
		})
	})
})
