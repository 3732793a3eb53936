package contententity

type ReleaseType string

const (
	AlbumRelease  ReleaseType = "Album"
	EPRelease     ReleaseType = "EP"
	SingleRelease ReleaseType = "Single"
)

type StreamingLinks struct {
	Spotify    string `json:"spotify,omitempty"`
	AppleMusic string `json:"appleMusic,omitempty"`
	YouTube    string `json:"youtube,omitempty"`
	SoundCloud string `json:"soundcloud,omitempty"`
}

type MusicReleaseFields struct {
	Title          string         `json:"title"`
	Artist         string         `json:"artist"`
	ReleaseType    ReleaseType    `json:"releaseType"`
	ReleaseDate    string         `json:"releaseDate"`
	TrackCount     int            `json:"trackCount"`
	Description    string         `json:"description"`
	CoverArt       *Asset         `json:"coverArt"`
	StreamingLinks StreamingLinks `json:"streamingLinks"`
	Featured       bool           `json:"featured"`
}

type MusicRelease = Record[MusicReleaseFields]
