package config

// Content selects where site content comes from.
// A nil Content means the source is unconfigured and every
// lookup is served from the fallback records
type Content interface {
	ContentConfig()
}

var _ Content = Contentful{}

type Contentful struct {
	Host        string
	SpaceID     string
	AccessToken string
	Environment string
}

func (c Contentful) ContentConfig() {}

var _ Content = DynamoContent{}

type DynamoContent struct {
	Dynamo Dynamo
}

func (d DynamoContent) ContentConfig() {}
