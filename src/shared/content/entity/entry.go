package contententity

import (
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/castel-site/src/shared/lib/jsonlib"
)

type ContentType string

const (
	BlogPostType     ContentType = "blogPost"
	MusicReleaseType ContentType = "musicRelease"
	TourDateType     ContentType = "tourDate"
	TrackType        ContentType = "track"
)

var AllContentTypes = []ContentType{BlogPostType, MusicReleaseType, TourDateType, TrackType}

type Sys struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Entry is a record as any content source returns it,
// before its fields are decoded into a known shape
type Entry struct {
	Sys         Sys            `json:"sys"`
	ContentType ContentType    `json:"-"`
	Fields      map[string]any `json:"fields"`
}

type Record[F any] struct {
	Sys    Sys                `json:"sys"`
	Fields jsonlib.Flatten[F] `json:"fields"`
}

func DecodeRecord[F any](entry Entry) (Record[F], error) {
	fields := jsonlib.Flatten[F]{}
	if err := fields.FromMap(entry.Fields); err != nil {
		return Record[F]{}, errors.Wrapf(err, "Failed to decode fields of entry %s", entry.Sys.ID)
	}

	return Record[F]{
		Sys:    entry.Sys,
		Fields: fields,
	}, nil
}

func DecodeRecords[F any](entries []Entry) ([]Record[F], error) {
	records := make([]Record[F], 0, len(entries))
	for _, entry := range entries {
		record, err := DecodeRecord[F](entry)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

func (r Record[F]) ToEntry(contentType ContentType) (Entry, error) {
	fields, err := r.Fields.ToMap()
	if err != nil {
		return Entry{}, errors.Wrapf(err, "Failed to encode fields of record %s", r.Sys.ID)
	}

	return Entry{
		Sys:         r.Sys,
		ContentType: contentType,
		Fields:      fields,
	}, nil
}

// Asset is a resolved media link
type Asset struct {
	Fields AssetFields `json:"fields"`
}

type AssetFields struct {
	File  AssetFile `json:"file"`
	Title string    `json:"title"`
}

type AssetFile struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType,omitempty"`
}

func NewAsset(url string, title string) *Asset {
	return &Asset{
		Fields: AssetFields{
			File:  AssetFile{URL: url},
			Title: title,
		},
	}
}

func (a *Asset) URL() string {
	if a == nil {
		return ""
	}

	return a.Fields.File.URL
}
