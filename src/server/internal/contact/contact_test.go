package contact_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/server/internal/contact/errors"
	"github.com/veedubyou/castel-site/src/server/internal/contact/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/contact/relay"
	"github.com/veedubyou/castel-site/src/server/internal/contact/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/shared/contact/entity"
	"github.com/veedubyou/castel-site/src/shared/lib/rabbitmq/rabbitmqfakes"
	"github.com/veedubyou/castel-site/src/shared/ratelimit/ratelimitfakes"
	. "github.com/veedubyou/castel-site/src/shared/testing"
)

type formEndpoint struct {
	lock     sync.Mutex
	status   int
	received []*http.Request
	bodies   []map[string]string
}

func (f *formEndpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.lock.Lock()
	defer f.lock.Unlock()

	body := map[string]string{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.received = append(f.received, r)
	f.bodies = append(f.bodies, body)

	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(`{"ok": true}`))
}

var validSubmission = map[string]string{
	"name":    "Victoria",
	"email":   "victoria@example.com",
	"subject": "Booking",
	"message": "Can you play at my house party?",
}

var _ = Describe("Contact", func() {
	var (
		endpoint  *formEndpoint
		server    *httptest.Server
		limiter   *ratelimitfakes.FakeLimiter
		publisher *rabbitmqfakes.FakePublisher
		gateway   contactgateway.Gateway
		submitted time.Time
	)

	BeforeEach(func() {
		endpoint = &formEndpoint{status: http.StatusOK}
		server = httptest.NewServer(endpoint)

		limiter = &ratelimitfakes.FakeLimiter{}
		limiter.AllowReturns(true, nil)
		publisher = &rabbitmqfakes.FakePublisher{}
		submitted = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	})

	JustBeforeEach(func() {
		relay := contactrelay.NewFormRelay(server.URL+"/f/test", server.Client())
		usecase := contactusecase.NewUsecase(relay, limiter, publisher, clock.Fixed(submitted))
		gateway = contactgateway.NewGateway(usecase)
	})

	AfterEach(func() {
		server.Close()
	})

	submit := func(body any) *httptest.ResponseRecorder {
		req := RequestFactory{
			Method:  "POST",
			Target:  "/api/contact",
			JSONObj: body,
			Mods:    RequestModifiers{WithRemoteAddr("203.0.113.9:5555")},
		}.MakeFake()

		res := httptest.NewRecorder()
		c := PrepareEchoContext(req, res)
		Expect(gateway.Submit(c)).To(Succeed())
		return res
	}

	Describe("A valid submission", func() {
		var res *httptest.ResponseRecorder

		JustBeforeEach(func() {
			res = submit(validSubmission)
		})

		It("responds with an id", func() {
			Expect(res.Code).To(Equal(http.StatusOK))
			receipt := DecodeJSON[contactentity.Receipt](res.Body)
			Expect(receipt.ID).NotTo(BeEmpty())
		})

		It("relays the submission as JSON", func() {
			Expect(endpoint.received).To(HaveLen(1))
			request := endpoint.received[0]
			Expect(request.Method).To(Equal(http.MethodPost))
			Expect(request.URL.Path).To(Equal("/f/test"))
			Expect(request.Header.Get("Accept")).To(Equal("application/json"))
			Expect(request.Header.Get("Content-Type")).To(Equal("application/json"))
			Expect(endpoint.bodies[0]).To(Equal(validSubmission))
		})

		It("counts the attempt against the client's address", func() {
			Expect(limiter.AllowCallCount()).To(Equal(1))
			_, key := limiter.AllowArgsForCall(0)
			Expect(key).To(Equal("203.0.113.9"))
		})

		It("announces the submission on the queue", func() {
			receipt := DecodeJSON[contactentity.Receipt](res.Body)

			Eventually(publisher.PublishCallCount).Should(Equal(1))
			_, msg := publisher.PublishArgsForCall(0)
			Expect(msg.Type).To(Equal(contactentity.SubmittedMessageType))

			message := contactentity.SubmittedMessage{}
			Expect(json.Unmarshal(msg.Body, &message)).To(Succeed())
			Expect(message.ID).To(Equal(receipt.ID))
			Expect(message.SubmittedAt).To(Equal("2025-05-01T12:00:00Z"))
			Expect(message.Submission.Email).To(Equal("victoria@example.com"))
		})
	})

	Describe("Validation", func() {
		DescribeTable("rejects incomplete or malformed submissions",
			func(field string, value string) {
				body := map[string]string{}
				for k, v := range validSubmission {
					body[k] = v
				}
				body[field] = value

				res := submit(body)
				Expect(res.Code).To(Equal(http.StatusBadRequest))
				Expect(DecodeJSONError(res.Body).Code).To(Equal(string(contacterrors.BadContactDataCode)))
				Expect(endpoint.received).To(BeEmpty())
				Expect(limiter.AllowCallCount()).To(BeZero())
			},
			Entry("missing name", "name", ""),
			Entry("blank subject", "subject", "   "),
			Entry("missing message", "message", ""),
			Entry("missing email", "email", ""),
			Entry("unparseable email", "email", "not-an-email"),
			Entry("email with a display name", "email", "Victoria <victoria@example.com>"),
		)

		It("rejects bodies that aren't JSON objects", func() {
			res := submit([]string{"hello"})
			Expect(res.Code).To(Equal(http.StatusBadRequest))
			Expect(DecodeJSONError(res.Body).Code).To(Equal(string(contacterrors.BadContactDataCode)))
		})

		It("trims whitespace before relaying", func() {
			body := map[string]string{}
			for k, v := range validSubmission {
				body[k] = "  " + v + "\n"
			}

			res := submit(body)
			Expect(res.Code).To(Equal(http.StatusOK))
			Expect(endpoint.bodies[0]).To(Equal(validSubmission))
		})
	})

	Describe("Rate limiting", func() {
		It("refuses clients over the limit", func() {
			limiter.AllowReturns(false, nil)

			res := submit(validSubmission)
			Expect(res.Code).To(Equal(http.StatusTooManyRequests))
			Expect(DecodeJSONError(res.Body).Code).To(Equal(string(contacterrors.TooManySubmissionsCode)))
			Expect(endpoint.received).To(BeEmpty())
		})

		It("lets submissions through when the limiter fails", func() {
			limiter.AllowReturns(false, errors.New("redis is down"))

			res := submit(validSubmission)
			Expect(res.Code).To(Equal(http.StatusOK))
			Expect(endpoint.received).To(HaveLen(1))
		})

		Context("without a limiter", func() {
			JustBeforeEach(func() {
				relay := contactrelay.NewFormRelay(server.URL, server.Client())
				gateway = contactgateway.NewGateway(contactusecase.NewUsecase(relay, nil, nil, clock.System()))
			})

			It("relays every submission", func() {
				for i := 0; i < 10; i++ {
					Expect(submit(validSubmission).Code).To(Equal(http.StatusOK))
				}
				Expect(endpoint.received).To(HaveLen(10))
			})
		})
	})

	Describe("Relay failures", func() {
		It("reports a non-2xx response from the form endpoint", func() {
			endpoint.status = http.StatusUnprocessableEntity

			res := submit(validSubmission)
			Expect(res.Code).To(Equal(http.StatusBadGateway))

			apiErr := DecodeJSONError(res.Body)
			Expect(apiErr.Code).To(Equal(string(contacterrors.RelayFailedCode)))
			Expect(apiErr.Msg).To(Equal("Failed to send message."))
			Expect(strings.Contains(apiErr.ErrorDetails, "422")).To(BeTrue())
		})

		It("reports an unreachable form endpoint", func() {
			server.Close()

			res := submit(validSubmission)
			Expect(res.Code).To(Equal(http.StatusBadGateway))
			Expect(DecodeJSONError(res.Body).Code).To(Equal(string(contacterrors.RelayFailedCode)))
		})

		It("announces nothing", func() {
			endpoint.status = http.StatusInternalServerError
			submit(validSubmission)
			Consistently(publisher.PublishCallCount).Should(BeZero())
		})
	})

	Describe("Publishing failures", func() {
		It("still confirms the submission", func() {
			publisher.PublishReturns(errors.New("broker unreachable"))

			res := submit(validSubmission)
			Expect(res.Code).To(Equal(http.StatusOK))
			Eventually(publisher.PublishCallCount).Should(Equal(1))
		})
	})
})
