package assetusecase

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	"github.com/samber/lo"
	"github.com/veedubyou/castel-site/src/server/internal/asset/errors"
	"github.com/veedubyou/castel-site/src/server/internal/errors/api"
	"github.com/veedubyou/castel-site/src/shared/filestore"
	"github.com/veedubyou/castel-site/src/shared/lib/loader"
	"github.com/veedubyou/castel-site/src/shared/lib/storagepath"
)

const (
	GSAPVersion    = "3.12.2"
	DefaultCDNBase = "https://cdnjs.cloudflare.com/ajax/libs/gsap/" + GSAPVersion

	ScriptContentType = "application/javascript"
	fetchTimeout      = 20 * time.Second
)

// Scripts are the animation library files the client loads, in load order
var Scripts = []string{"gsap.min.js", "Draggable.min.js", "TextPlugin.min.js"}

type Usecase struct {
	scripts *loader.Loader[[]byte]
}

type Config struct {
	// FileStore and PathGenerator are both set when scripts are mirrored to cloud storage
	FileStore     filestore.FileStore
	PathGenerator *storagepath.Generator
	CDNBase       string
	Client        *http.Client
}

func NewUsecase(config Config) Usecase {
	if config.CDNBase == "" {
		config.CDNBase = DefaultCDNBase
	}

	if config.Client == nil {
		config.Client = &http.Client{Timeout: fetchTimeout}
	}

	if config.PathGenerator == nil {
		config.FileStore = nil
	}

	fetcher := scriptFetcher{config: config}
	return Usecase{
		scripts: loader.New(fetcher.fetch),
	}
}

func (u Usecase) GetScript(ctx context.Context, name string) ([]byte, *api.Error) {
	if !lo.Contains(Scripts, name) {
		err := errors.Newf("Script %q isn't mirrored", name)
		return nil, api.CommitError(err,
			asseterrors.ScriptNotFoundCode,
			"There's no such script")
	}

	contents, err := u.scripts.Load(ctx, name)
	if err != nil {
		return nil, api.CommitError(err,
			asseterrors.ScriptUnavailableCode,
			"The script couldn't be loaded, please try again")
	}

	return contents, nil
}

type scriptFetcher struct {
	config Config
}

func (s scriptFetcher) fetch(ctx context.Context, name string) ([]byte, error) {
	logger := log.WithField("script", name)

	if s.config.FileStore != nil {
		contents, err := s.config.FileStore.ReadFile(ctx, s.objectURL(name))
		if err == nil {
			logger.Debug("Serving script from cloud storage")
			return contents, nil
		}

		if !markers.Is(err, filestore.NotFoundMark) {
			logger.WithError(err).Warn("Failed to read mirrored script, going to the CDN")
		}
	}

	contents, err := s.fromCDN(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.config.FileStore != nil {
		err := s.config.FileStore.WriteFile(ctx, s.objectURL(name), contents, ScriptContentType)
		if err != nil {
			logger.WithError(err).Warn("Failed to mirror script to cloud storage")
		}
	}

	return contents, nil
}

func (s scriptFetcher) objectURL(name string) string {
	return s.config.PathGenerator.GeneratePath("scripts", "gsap", GSAPVersion, name)
}

func (s scriptFetcher) fromCDN(ctx context.Context, name string) ([]byte, error) {
	url := strings.TrimSuffix(s.config.CDNBase, "/") + "/" + name

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build CDN request")
	}

	response, err := s.config.Client.Do(request)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to fetch %s", url)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, errors.Newf("CDN responded %d for %s", response.StatusCode, url)
	}

	contents, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read %s", url)
	}

	return contents, nil
}
