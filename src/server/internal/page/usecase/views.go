package pageusecase

import (
	"html/template"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/server/internal/lib/contentfetch"
	"github.com/veedubyou/castel-site/src/server/internal/page/richtext"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/profile"
)

const (
	DisplayDateLayout = "January 2, 2006"

	placeholderPostImage  = "/placeholder.svg?height=300&width=400"
	placeholderCoverImage = "/placeholder.svg?height=300&width=300"
	cardTagCount          = 2
)

type PostCard struct {
	Title    string
	Slug     string
	Excerpt  string
	Image    string
	Author   string
	Date     string
	ReadTime int
	Tags     []string
	CardTags []string
}

type PostPage struct {
	PostCard
	HasImage bool
	// Body is empty when the post has no content to render
	Body template.HTML
}

type ReleaseCard struct {
	Title       string
	Artist      string
	ReleaseType string
	Year        string
	TrackCount  int
	Description string
	Cover       string
	Featured    bool
	Links       []profile.Link
}

type TourCard struct {
	Venue       string
	City        string
	Country     string
	Month       string
	Day         string
	Time        string
	Status      string
	StatusLabel string
	SoldOut     bool
	TicketLink  string
	Description string
	Featured    bool
}

type Chrome struct {
	Profile profile.Profile
	Year    int
}

type Landing struct {
	Chrome
	Tracks    []contententity.Track
	Posts     []PostCard
	Releases  []ReleaseCard
	TourDates []TourCard
}

type BlogIndex struct {
	Chrome
	Posts []PostCard
}

type Post struct {
	Chrome
	Post PostPage
}

type NotFound struct {
	Chrome
	Message string
}

// FormatDate renders a CMS date for people, falling back to the raw value
func FormatDate(date string) string {
	t, err := time.Parse(clock.DateLayout, date)
	if err != nil {
		return date
	}

	return t.Format(DisplayDateLayout)
}

func toPostCard(post contententity.BlogPost) PostCard {
	fields := post.Fields.Defined

	image := richtext.AbsoluteURL(fields.FeaturedImage.URL())
	if image == "" {
		image = placeholderPostImage
	}

	return PostCard{
		Title:    fields.Title,
		Slug:     fields.Slug,
		Excerpt:  fields.Excerpt,
		Image:    image,
		Author:   fields.Author,
		Date:     FormatDate(fields.PublishDate),
		ReadTime: fields.ReadTime,
		Tags:     fields.Tags,
		CardTags: contentfetch.Take(fields.Tags, cardTagCount),
	}
}

func toReleaseCard(release contententity.MusicRelease) ReleaseCard {
	fields := release.Fields.Defined

	cover := richtext.AbsoluteURL(fields.CoverArt.URL())
	if cover == "" {
		cover = placeholderCoverImage
	}

	year := fields.ReleaseDate
	if t, err := time.Parse(clock.DateLayout, fields.ReleaseDate); err == nil {
		year = t.Format("2006")
	}

	streaming := fields.StreamingLinks
	links := lo.Filter([]profile.Link{
		{Label: "Spotify", URL: streaming.Spotify},
		{Label: "Apple Music", URL: streaming.AppleMusic},
		{Label: "YouTube", URL: streaming.YouTube},
		{Label: "SoundCloud", URL: streaming.SoundCloud},
	}, func(link profile.Link, _ int) bool {
		return link.URL != ""
	})

	return ReleaseCard{
		Title:       fields.Title,
		Artist:      fields.Artist,
		ReleaseType: string(fields.ReleaseType),
		Year:        year,
		TrackCount:  fields.TrackCount,
		Description: fields.Description,
		Cover:       cover,
		Featured:    fields.Featured,
		Links:       links,
	}
}

func toTourCard(date contententity.TourDate) TourCard {
	fields := date.Fields.Defined

	month, day := "", fields.Date
	if t, err := time.Parse(clock.DateLayout, fields.Date); err == nil {
		month = strings.ToUpper(t.Format("Jan"))
		day = t.Format("2")
	}

	status := string(fields.TicketStatus)

	return TourCard{
		Venue:       fields.Venue,
		City:        fields.City,
		Country:     fields.Country,
		Month:       month,
		Day:         day,
		Time:        fields.Time,
		Status:      status,
		StatusLabel: strings.ToUpper(strings.ReplaceAll(status, "-", " ")),
		SoldOut:     fields.TicketStatus == contententity.SoldOut,
		TicketLink:  fields.TicketLink,
		Description: fields.Description,
		Featured:    fields.Featured,
	}
}
