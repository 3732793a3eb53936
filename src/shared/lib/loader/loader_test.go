package loader_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/shared/lib/loader"
)

var _ = Describe("Loader", func() {
	var (
		calls   atomic.Int32
		release chan struct{}
		fail    atomic.Bool
		l       *loader.Loader[string]
	)

	BeforeEach(func() {
		calls.Store(0)
		fail.Store(false)
		release = make(chan struct{})
		close(release)

		l = loader.New(func(ctx context.Context, key string) (string, error) {
			calls.Add(1)
			<-release
			if fail.Load() {
				return "", errors.New("script blocked")
			}
			return "loaded:" + key, nil
		})
	})

	It("loads a key once and then returns it immediately", func() {
		val, err := l.Load(context.Background(), "gsap")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal("loaded:gsap"))

		val, err = l.Load(context.Background(), "gsap")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal("loaded:gsap"))

		Expect(calls.Load()).To(BeEquivalentTo(1))
	})

	It("keeps keys apart", func() {
		_, err := l.Load(context.Background(), "gsap")
		Expect(err).NotTo(HaveOccurred())
		_, err = l.Load(context.Background(), "draggable")
		Expect(err).NotTo(HaveOccurred())

		Expect(calls.Load()).To(BeEquivalentTo(2))
	})

	It("makes concurrent callers wait on the in-flight load", func() {
		release = make(chan struct{})

		wg := sync.WaitGroup{}
		results := make([]string, 5)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				val, err := l.Load(context.Background(), "gsap")
				Expect(err).NotTo(HaveOccurred())
				results[i] = val
			}(i)
		}

		Eventually(calls.Load).Should(BeEquivalentTo(1))
		close(release)
		wg.Wait()

		Expect(calls.Load()).To(BeEquivalentTo(1))
		for _, result := range results {
			Expect(result).To(Equal("loaded:gsap"))
		}
	})

	It("does not remember failures", func() {
		fail.Store(true)
		_, err := l.Load(context.Background(), "gsap")
		Expect(err).To(HaveOccurred())

		_, ok := l.Loaded("gsap")
		Expect(ok).To(BeFalse())

		fail.Store(false)
		val, err := l.Load(context.Background(), "gsap")
		Expect(err).NotTo(HaveOccurred())
		Expect(val).To(Equal("loaded:gsap"))
		Expect(calls.Load()).To(BeEquivalentTo(2))
	})

	It("stops waiting when the caller's context ends", func() {
		release = make(chan struct{})
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := l.Load(ctx, "gsap")
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
	})
})
