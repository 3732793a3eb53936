package tour_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/server/internal/tour/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/tour/usecase"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/source"
	"github.com/veedubyou/castel-site/src/shared/content/source/contentsourcefakes"
	. "github.com/veedubyou/castel-site/src/shared/testing"
)

func liveDate(id string, date string) contententity.Entry {
	return ContentEntry(contententity.TourDateType, id, map[string]any{
		"venue":        "Venue " + id,
		"city":         "São Paulo",
		"country":      "BR",
		"date":         date,
		"time":         "9:00 PM",
		"ticketStatus": "limited",
		"featured":     false,
	})
}

func day(date string) clock.Clock {
	t, err := time.Parse(clock.DateLayout, date)
	Expect(err).NotTo(HaveOccurred())
	return clock.Fixed(t.Add(15 * time.Hour))
}

var _ = Describe("Tour", func() {
	var (
		source      contentsource.Source
		now         clock.Clock
		tourUsecase tourusecase.Usecase
		tourGateway tourgateway.Gateway
	)

	BeforeEach(func() {
		now = day("2024-07-20")
	})

	JustBeforeEach(func() {
		tourUsecase = tourusecase.NewUsecase(source, now)
		tourGateway = tourgateway.NewGateway(tourUsecase)
	})

	Describe("Unconfigured source", func() {
		BeforeEach(func() {
			source = nil
		})

		It("serves every fallback date", func() {
			ExpectEntryIDs(tourUsecase.GetTourDates(context.Background(), 0), "1", "2")
		})

		It("serves only the fallback dates from today on", func() {
			ExpectEntryIDs(tourUsecase.GetUpcomingTourDates(context.Background(), 0), "2")
		})

		It("counts today as upcoming", func() {
			now = day("2024-07-15")
			tourUsecase = tourusecase.NewUsecase(source, now)

			ExpectEntryIDs(tourUsecase.GetUpcomingTourDates(context.Background(), 0), "1", "2")
			ExpectEntryIDs(tourUsecase.GetUpcomingTourDates(context.Background(), 1), "1")
		})

		It("has nothing upcoming once every date has passed", func() {
			now = day("2026-01-01")
			tourUsecase = tourusecase.NewUsecase(source, now)

			Expect(tourUsecase.GetUpcomingTourDates(context.Background(), 0)).To(BeEmpty())
		})
	})

	Describe("Live source", func() {
		var fake *contentsourcefakes.FakeSource

		BeforeEach(func() {
			fake = SourceFromEntries(
				liveDate("late", "2024-09-01"),
				liveDate("past", "2024-07-01"),
				liveDate("today", "2024-07-20"),
				liveDate("soon", "2024-08-01"),
			)
			source = fake
		})

		It("orders every date ascending", func() {
			ExpectEntryIDs(tourUsecase.GetTourDates(context.Background(), 0), "past", "today", "soon", "late")

			_, query := fake.GetEntriesArgsForCall(0)
			Expect(query.Order).To(Equal(&contententity.Order{Field: "date"}))
			Expect(query.Limit).To(Equal(tourusecase.DefaultTourDatesLimit))
		})

		It("asks for dates from today on", func() {
			ExpectEntryIDs(tourUsecase.GetUpcomingTourDates(context.Background(), 2), "today", "soon")

			_, query := fake.GetEntriesArgsForCall(0)
			Expect(query.Filters).To(ConsistOf(contententity.Filter{
				Field: "date",
				Op:    contententity.GreaterThanOrEqual,
				Value: "2024-07-20",
			}))
		})

		It("uses the UTC date", func() {
			local := time.FixedZone("UTC-5", -5*60*60)
			now = clock.Fixed(time.Date(2024, 7, 19, 22, 0, 0, 0, local))
			tourUsecase = tourusecase.NewUsecase(source, now)

			tourUsecase.GetUpcomingTourDates(context.Background(), 0)
			_, query := fake.GetEntriesArgsForCall(0)
			Expect(query.Filters[0].Value).To(Equal("2024-07-20"))
		})
	})

	Describe("GET /api/tour", func() {
		BeforeEach(func() {
			source = nil
		})

		get := func(target string) *httptest.ResponseRecorder {
			req := RequestFactory{
				Method: "GET",
				Target: target,
			}.MakeFake()

			res := httptest.NewRecorder()
			c := PrepareEchoContext(req, res)
			Expect(tourGateway.GetTourDates(c)).To(Succeed())
			return res
		}

		It("serves every date", func() {
			res := get("/api/tour")
			Expect(res.Code).To(Equal(http.StatusOK))
			Expect(DecodeJSON[[]map[string]any](res.Body)).To(HaveLen(2))
		})

		It("serves upcoming dates", func() {
			res := get("/api/tour?upcoming=true&limit=5")
			Expect(res.Code).To(Equal(http.StatusOK))

			dates := DecodeJSON[[]map[string]any](res.Body)
			Expect(dates).To(HaveLen(1))
			fields := ExpectType[map[string]any](dates[0]["fields"])
			Expect(fields["ticketStatus"]).To(Equal("sold-out"))
		})
	})
})
