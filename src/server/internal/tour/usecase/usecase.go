package tourusecase

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/server/internal/lib/contentfetch"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/fallback"
	"github.com/veedubyou/castel-site/src/shared/content/source"
)

const (
	DefaultTourDatesLimit = 20
	DefaultUpcomingLimit  = 10
)

type Usecase struct {
	source contentsource.Source
	clock  clock.Clock
}

func NewUsecase(source contentsource.Source, clock clock.Clock) Usecase {
	return Usecase{
		source: source,
		clock:  clock,
	}
}

// GetTourDates returns every date, earliest first
func (u Usecase) GetTourDates(ctx context.Context, limit int) []contententity.TourDate {
	limit = contentfetch.LimitOrDefault(limit, DefaultTourDatesLimit)

	query := contententity.NewQuery(contententity.TourDateType).
		OrderBy("date").
		WithLimit(limit)

	dates, _ := contentfetch.Records(ctx, u.source, query, fallback.TourDates)
	return contentfetch.Take(dates, limit)
}

// GetUpcomingTourDates returns the dates from today (UTC) on, earliest first
func (u Usecase) GetUpcomingTourDates(ctx context.Context, limit int) []contententity.TourDate {
	limit = contentfetch.LimitOrDefault(limit, DefaultUpcomingLimit)
	today := u.clock.Today()

	query := contententity.NewQuery(contententity.TourDateType).
		WhereAtLeast("date", today).
		OrderBy("date").
		WithLimit(limit)

	upcomingFallback := func() []contententity.TourDate {
		upcoming := lo.Filter(fallback.TourDates(), func(date contententity.TourDate, _ int) bool {
			return date.Fields.Defined.Date >= today
		})

		sort.SliceStable(upcoming, func(i, j int) bool {
			return upcoming[i].Fields.Defined.Date < upcoming[j].Fields.Defined.Date
		})

		return upcoming
	}

	dates, _ := contentfetch.Records(ctx, u.source, query, upcomingFallback)
	return contentfetch.Take(dates, limit)
}
