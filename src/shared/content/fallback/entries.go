package fallback

import (
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/lib/jsonlib"
)

// Entries returns every fallback record in its raw entry form,
// which is what gets written when seeding a content table
func Entries() ([]contententity.Entry, error) {
	entries := []contententity.Entry{}

	appendAll := func(contentType contententity.ContentType, toEntries func() ([]contententity.Entry, error)) error {
		converted, err := toEntries()
		if err != nil {
			return errors.Wrapf(err, "Failed to convert fallback %s records", contentType)
		}

		entries = append(entries, converted...)
		return nil
	}

	if err := appendAll(contententity.BlogPostType, func() ([]contententity.Entry, error) {
		return toEntries(contententity.BlogPostType, BlogPosts())
	}); err != nil {
		return nil, err
	}

	if err := appendAll(contententity.MusicReleaseType, func() ([]contententity.Entry, error) {
		return toEntries(contententity.MusicReleaseType, MusicReleases())
	}); err != nil {
		return nil, err
	}

	if err := appendAll(contententity.TourDateType, func() ([]contententity.Entry, error) {
		return toEntries(contententity.TourDateType, TourDates())
	}); err != nil {
		return nil, err
	}

	if err := appendAll(contententity.TrackType, func() ([]contententity.Entry, error) {
		return toEntries(contententity.TrackType, trackRecords())
	}); err != nil {
		return nil, err
	}

	return entries, nil
}

func toEntries[F any](contentType contententity.ContentType, records []contententity.Record[F]) ([]contententity.Entry, error) {
	entries := make([]contententity.Entry, 0, len(records))
	for _, record := range records {
		entry, err := record.ToEntry(contentType)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func trackRecords() []contententity.TrackRecord {
	records := []contententity.TrackRecord{}
	for _, track := range Tracks() {
		records = append(records, contententity.TrackRecord{
			Sys: sys(track.ID, "2024-01-15T10:00:00Z"),
			Fields: jsonlib.NewFlatten(contententity.TrackFields{
				Title:    track.Title,
				Artist:   track.Artist,
				Duration: track.Duration,
				AlbumArt: contententity.NewAsset(track.AlbumArt, track.Title),
			}),
		})
	}

	return records
}
