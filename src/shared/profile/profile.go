// Package profile holds the static artist information shown in the about,
// contact and footer sections. The compiled-in profile can be replaced by a
// TOML file of the same shape.
package profile

import (
	"bytes"
	_ "embed"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

//go:embed default_profile.toml
var defaultProfile []byte

type Link struct {
	Label string `toml:"label"`
	URL   string `toml:"url"`
}

type Stat struct {
	Label string `toml:"label"`
	Value string `toml:"value"`
}

type Contact struct {
	Email           string `toml:"email"`
	ManagementPhone string `toml:"management_phone"`
	BasedIn         string `toml:"based_in"`
	Headline        string `toml:"headline"`
}

type Release struct {
	Title string `toml:"title"`
	Type  string `toml:"type"`
	Year  string `toml:"year"`
	Link  string `toml:"link"`
}

type Profile struct {
	Name          string   `toml:"name"`
	Tagline       string   `toml:"tagline"`
	Portrait      string   `toml:"portrait"`
	Bio           []string `toml:"bio"`
	Stats         []Stat   `toml:"stats"`
	Contact       Contact  `toml:"contact"`
	Socials       []Link   `toml:"socials"`
	Streaming     []Link   `toml:"streaming"`
	LatestRelease *Release `toml:"latest_release"`
}

func (p Profile) MailTo() string {
	return "mailto:" + p.Contact.Email
}

// Tel strips everything but digits and a leading plus
func (p Profile) Tel() string {
	builder := strings.Builder{}
	for i, r := range p.Contact.ManagementPhone {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			builder.WriteRune(r)
		}
	}

	return "tel:" + builder.String()
}

func Default() Profile {
	profile, err := Decode(defaultProfile)
	if err != nil {
		panic(errors.Wrap(err, "Compiled-in profile is invalid"))
	}

	return profile
}

// Load reads the profile at path, or the compiled-in one when path is empty.
// Keys missing from the file keep their compiled-in values
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, errors.Wrapf(err, "Failed to read profile %s", path)
	}

	profile := Default()
	if err := decodeInto(contents, &profile); err != nil {
		return Profile{}, errors.Wrapf(err, "Failed to parse profile %s", path)
	}

	if err := profile.validate(); err != nil {
		return Profile{}, err
	}

	return profile, nil
}

func Decode(contents []byte) (Profile, error) {
	profile := Profile{}
	if err := decodeInto(contents, &profile); err != nil {
		return Profile{}, err
	}

	if err := profile.validate(); err != nil {
		return Profile{}, err
	}

	return profile, nil
}

func decodeInto(contents []byte, profile *Profile) error {
	decoder := toml.NewDecoder(bytes.NewReader(contents))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(profile); err != nil {
		return errors.Wrap(err, "Failed to decode profile")
	}

	return nil
}

func (p Profile) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("Profile has no artist name")
	}

	if len(p.Bio) == 0 {
		return errors.New("Profile has no bio")
	}

	return nil
}
