package contententity

const PlaceholderAlbumArt = "/placeholder.svg?height=300&width=300"

type TrackFields struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Duration  string `json:"duration"`
	AlbumArt  *Asset `json:"albumArt"`
	AudioFile *Asset `json:"audioFile"`
}

type TrackRecord = Record[TrackFields]

// Track is the flattened shape the disc widgets and the player consume
type Track struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Duration  string `json:"duration"`
	AlbumArt  string `json:"albumArt"`
	AudioFile string `json:"audioFile,omitempty"`
}
