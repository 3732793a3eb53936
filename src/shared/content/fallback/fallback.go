// Package fallback holds the records served when no content source is
// configured or the configured one fails. Each function returns a fresh
// slice in the order the site presents it.
package fallback

import (
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/lib/jsonlib"
)

const artist = "Rodriw Castel"

func sys(id string, at string) contententity.Sys {
	return contententity.Sys{
		ID:        id,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func BlogPosts() []contententity.BlogPost {
	return []contententity.BlogPost{
		{
			Sys: sys("1", "2024-01-15T10:00:00Z"),
			Fields: jsonlib.NewFlatten(contententity.BlogPostFields{
				Title:         "The Evolution of Electronic Music: From Analog to Digital",
				Slug:          "evolution-electronic-music-analog-digital",
				Excerpt:       "Exploring how electronic music has transformed over the decades, from the early analog synthesizers to today's digital production techniques.",
				Content:       map[string]any{},
				FeaturedImage: contententity.NewAsset("/images/profile.jpg", "Electronic Music Evolution"),
				Author:        artist,
				PublishDate:   "2024-01-15",
				Tags:          []string{"Electronic Music", "Production", "Technology"},
				ReadTime:      8,
			}),
		},
		{
			Sys: sys("2", "2024-01-10T10:00:00Z"),
			Fields: jsonlib.NewFlatten(contententity.BlogPostFields{
				Title:         "Behind the Scenes: Creating 'Digital Dreams'",
				Slug:          "behind-scenes-creating-digital-dreams",
				Excerpt:       "A deep dive into the creative process behind my latest album, including the inspiration, challenges, and breakthrough moments.",
				Content:       map[string]any{},
				FeaturedImage: contententity.NewAsset("/placeholder.svg?height=400&width=600", "Digital Dreams Album"),
				Author:        artist,
				PublishDate:   "2024-01-10",
				Tags:          []string{"Album", "Creative Process", "Studio"},
				ReadTime:      12,
			}),
		},
		{
			Sys: sys("3", "2024-01-05T10:00:00Z"),
			Fields: jsonlib.NewFlatten(contententity.BlogPostFields{
				Title:         "The Art of Live Electronic Performance",
				Slug:          "art-live-electronic-performance",
				Excerpt:       "How to bring electronic music to life on stage, creating an immersive experience that connects with the audience.",
				Content:       map[string]any{},
				FeaturedImage: contententity.NewAsset("/placeholder.svg?height=400&width=600", "Live Performance"),
				Author:        artist,
				PublishDate:   "2024-01-05",
				Tags:          []string{"Live Performance", "Stage Design", "Audience"},
				ReadTime:      6,
			}),
		},
	}
}

func MusicReleases() []contententity.MusicRelease {
	return []contententity.MusicRelease{
		{
			Sys: sys("1", "2024-01-15T10:00:00Z"),
			Fields: jsonlib.NewFlatten(contententity.MusicReleaseFields{
				Title:       "Digital Dreams",
				Artist:      artist,
				ReleaseType: contententity.AlbumRelease,
				ReleaseDate: "2024-01-15",
				TrackCount:  12,
				Description: "A journey through electronic soundscapes and emotional depths.",
				CoverArt:    contententity.NewAsset("/images/profile.jpg", "Digital Dreams Cover"),
				StreamingLinks: contententity.StreamingLinks{
					Spotify:    "#",
					AppleMusic: "#",
					YouTube:    "#",
					SoundCloud: "#",
				},
				Featured: true,
			}),
		},
		{
			Sys: sys("2", "2023-12-10T10:00:00Z"),
			Fields: jsonlib.NewFlatten(contententity.MusicReleaseFields{
				Title:       "Neon Nights EP",
				Artist:      artist,
				ReleaseType: contententity.EPRelease,
				ReleaseDate: "2023-12-10",
				TrackCount:  6,
				Description: "Late-night vibes with synthesized melodies and urban beats.",
				CoverArt:    contententity.NewAsset("/placeholder.svg?height=300&width=300", "Neon Nights Cover"),
				StreamingLinks: contententity.StreamingLinks{
					Spotify:    "#",
					AppleMusic: "#",
					YouTube:    "#",
				},
				Featured: false,
			}),
		},
	}
}

func TourDates() []contententity.TourDate {
	return []contententity.TourDate{
		{
			Sys: sys("1", "2024-01-15T10:00:00Z"),
			Fields: jsonlib.NewFlatten(contententity.TourDateFields{
				Venue:        "Electric Dreams Festival",
				City:         "Los Angeles",
				Country:      "CA",
				Date:         "2024-07-15",
				Time:         "9:00 PM",
				TicketStatus: contententity.TicketsAvailable,
				TicketLink:   "#",
				Featured:     true,
			}),
		},
		{
			Sys: sys("2", "2024-01-10T10:00:00Z"),
			Fields: jsonlib.NewFlatten(contententity.TourDateFields{
				Venue:        "Neon Nights Club",
				City:         "New York",
				Country:      "NY",
				Date:         "2024-07-22",
				Time:         "10:30 PM",
				TicketStatus: contententity.SoldOut,
				TicketLink:   "#",
				Featured:     false,
			}),
		},
	}
}

func Tracks() []contententity.Track {
	return []contententity.Track{
		{ID: "1", Title: "Digital Dreams", Artist: artist, Duration: "3:45", AlbumArt: "/images/profile.jpg"},
		{ID: "2", Title: "Neon Nights", Artist: artist, Duration: "4:12", AlbumArt: "/images/cover.jpg"},
		{ID: "3", Title: "Electric Soul", Artist: artist, Duration: "3:28", AlbumArt: contententity.PlaceholderAlbumArt},
		{ID: "4", Title: "Cosmic Waves", Artist: artist, Duration: "5:03", AlbumArt: contententity.PlaceholderAlbumArt},
	}
}
