package trackusecase

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/veedubyou/castel-site/src/server/internal/lib/contentfetch"
	"github.com/veedubyou/castel-site/src/shared/content/entity"
	"github.com/veedubyou/castel-site/src/shared/content/fallback"
	"github.com/veedubyou/castel-site/src/shared/content/source"
	"github.com/veedubyou/castel-site/src/shared/lib/storagepath"
)

type Usecase struct {
	source        contentsource.Source
	pathGenerator *storagepath.Generator
}

// NewUsecase takes an optional path generator, used to turn bucket-relative
// asset paths into URLs when assets live in cloud storage
func NewUsecase(source contentsource.Source, pathGenerator *storagepath.Generator) Usecase {
	return Usecase{
		source:        source,
		pathGenerator: pathGenerator,
	}
}

// GetTracks returns the tracks ordered by title. An empty live list is
// treated like a missing source so the disc always has something to show
func (u Usecase) GetTracks(ctx context.Context) []contententity.Track {
	query := contententity.NewQuery(contententity.TrackType).OrderBy("title")

	noRecords := func() []contententity.TrackRecord { return nil }
	records, _ := contentfetch.Records(ctx, u.source, query, noRecords)
	if len(records) == 0 {
		return fallback.Tracks()
	}

	return lo.Map(records, func(record contententity.TrackRecord, _ int) contententity.Track {
		return u.toTrack(record)
	})
}

func (u Usecase) toTrack(record contententity.TrackRecord) contententity.Track {
	fields := record.Fields.Defined

	albumArt := u.assetURL(fields.AlbumArt)
	if albumArt == "" {
		albumArt = contententity.PlaceholderAlbumArt
	}

	return contententity.Track{
		ID:        record.Sys.ID,
		Title:     fields.Title,
		Artist:    fields.Artist,
		Duration:  fields.Duration,
		AlbumArt:  albumArt,
		AudioFile: u.assetURL(fields.AudioFile),
	}
}

func (u Usecase) assetURL(asset *contententity.Asset) string {
	url := asset.URL()
	if url == "" {
		return ""
	}

	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}

	if u.pathGenerator != nil {
		return u.pathGenerator.Resolve(url)
	}

	return url
}
