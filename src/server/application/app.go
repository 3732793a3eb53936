package application

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/veedubyou/castel-site/src/server/internal/asset/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/asset/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/blog/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/blog/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/contact/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/contact/relay"
	"github.com/veedubyou/castel-site/src/server/internal/contact/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/server/internal/page/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/page/render"
	"github.com/veedubyou/castel-site/src/server/internal/page/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/release/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/release/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/tour/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/tour/usecase"
	"github.com/veedubyou/castel-site/src/server/internal/track/gateway"
	"github.com/veedubyou/castel-site/src/server/internal/track/usecase"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/content/source"
	"github.com/veedubyou/castel-site/src/shared/filestore"
	"github.com/veedubyou/castel-site/src/shared/lib/dynamo"
	"github.com/veedubyou/castel-site/src/shared/lib/rabbitmq"
	"github.com/veedubyou/castel-site/src/shared/lib/storagepath"
	"github.com/veedubyou/castel-site/src/shared/profile"
	"github.com/veedubyou/castel-site/src/shared/ratelimit"
)

type HTTPMethod string

const (
	GET  HTTPMethod = "GET"
	POST HTTPMethod = "POST"

	apiPrefix          = "/api"
	contactLimitPrefix = "contact"
)

type App struct {
	echo    *echo.Echo
	port    string
	closers []func() error
}

// Config leaves integrations unset to run without them: a nil ContentConfig
// serves the built-in content, a nil CloudStorage skips the script mirror and
// empty RabbitMQ or Redis URLs skip submission announcements and rate limiting
type Config struct {
	ContentConfig      config.Content
	CloudStorage       config.CloudStorage
	RabbitMQURL        string
	RabbitMQQueueName  string
	RedisURL           string
	ContactEndpoint    string
	ProfilePath        string
	StaticDir          string
	CORSAllowedOrigins []string
	Port               string
	Log                bool
	Clock              clock.Clock
}

func NewApp(config Config) App {
	e := echo.New()
	e.HideBanner = true

	if config.Log {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	if config.Clock == nil {
		config.Clock = clock.System()
	}

	renderer, err := render.New()
	if err != nil {
		panic(errors.Wrap(err, "Failed to load page templates"))
	}
	e.Renderer = renderer

	app := App{
		echo: e,
		port: config.Port,
	}

	corsMiddleware := makeCorsMiddleware(config)

	handleRoute := func(method HTTPMethod, path string, handlerFunc echo.HandlerFunc) {
		params := func() (string, echo.HandlerFunc, echo.MiddlewareFunc) {
			return path, handlerFunc, corsMiddleware
		}

		e.OPTIONS(params())

		switch method {
		case GET:
			e.GET(params())
		case POST:
			e.POST(params())
		default:
			panic("unhandled http method!")
		}
	}

	contentSource := makeContentSource(config.ContentConfig)
	pathGenerator, fileStore := makeFileStore(config.CloudStorage)

	blogUsecase := blogusecase.NewUsecase(contentSource)
	releaseUsecase := releaseusecase.NewUsecase(contentSource)
	tourUsecase := tourusecase.NewUsecase(contentSource, config.Clock)
	trackUsecase := trackusecase.NewUsecase(contentSource, pathGenerator)
	contactUsecase := app.makeContactUsecase(config)
	pageUsecase := pageusecase.NewUsecase(
		blogUsecase,
		releaseUsecase,
		tourUsecase,
		trackUsecase,
		makeProfile(config.ProfilePath),
		config.Clock,
	)
	assetUsecase := assetusecase.NewUsecase(assetusecase.Config{
		FileStore:     fileStore,
		PathGenerator: pathGenerator,
	})

	blogGateway := bloggateway.NewGateway(blogUsecase)
	releaseGateway := releasegateway.NewGateway(releaseUsecase)
	tourGateway := tourgateway.NewGateway(tourUsecase)
	trackGateway := trackgateway.NewGateway(trackUsecase)
	contactGateway := contactgateway.NewGateway(contactUsecase)
	pageGateway := pagegateway.NewGateway(pageUsecase)
	assetGateway := assetgateway.NewGateway(assetUsecase)

	// health check
	handleRoute(GET, "/health-check", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// pages
	e.GET("/", pageGateway.Landing)
	e.GET("/blog", pageGateway.BlogIndex)
	e.GET("/blog/:slug", func(c echo.Context) error {
		slug := c.Param("slug")
		return pageGateway.BlogPost(c, slug)
	})

	// content routes
	handleRoute(GET, "/api/posts", blogGateway.GetBlogPosts)
	handleRoute(GET, "/api/posts/:slug", func(c echo.Context) error {
		slug := c.Param("slug")
		return blogGateway.GetBlogPost(c, slug)
	})
	handleRoute(GET, "/api/releases", releaseGateway.GetMusicReleases)
	handleRoute(GET, "/api/tour", tourGateway.GetTourDates)
	handleRoute(GET, "/api/tracks", trackGateway.GetTracks)

	// contact
	handleRoute(POST, "/api/contact", contactGateway.Submit)

	// scripts and static files
	e.GET("/assets/scripts/:name", func(c echo.Context) error {
		name := c.Param("name")
		return assetGateway.GetScript(c, name)
	})

	if config.StaticDir != "" {
		e.Static("/static", config.StaticDir)
		e.Static("/images", path.Join(config.StaticDir, "images"))
		e.File("/placeholder.svg", path.Join(config.StaticDir, "placeholder.svg"))
	}

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var httpErr *echo.HTTPError
		isPage := !strings.HasPrefix(c.Request().URL.Path, apiPrefix)
		if isPage && errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound && !c.Response().Committed {
			if renderErr := pageGateway.NotFound(c); renderErr == nil {
				return
			}
		}

		e.DefaultHTTPErrorHandler(err, c)
	}

	return app
}

// Handler exposes the routes without a listener
func (a *App) Handler() http.Handler {
	return a.echo
}

func (a *App) Start() error {
	err := a.echo.Start(a.port)
	if err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "Couldn't start echo server")
	}

	return nil
}

func (a *App) Stop() error {
	err := a.echo.Close()
	if err != nil {
		return errors.Wrap(err, "Failed to stop echo server")
	}

	for _, closer := range a.closers {
		if err := closer(); err != nil {
			log.WithError(err).Warn("Failed to release a connection on shutdown")
		}
	}

	return nil
}

func makeContentSource(contentConfig config.Content) contentsource.Source {
	switch t := contentConfig.(type) {
	case nil:
		log.Info("No content source configured, serving built-in content")
		return nil

	case config.Contentful:
		return contentsource.NewContentfulSource(t, nil)

	case config.DynamoContent:
		return contentsource.NewDynamoSource(dynamolib.NewDynamoDB(t.Dynamo))

	default:
		panic("Unexpected content config type")
	}
}

func makeFileStore(cloudStorageConfig config.CloudStorage) (*storagepath.Generator, filestore.FileStore) {
	if cloudStorageConfig == nil {
		return nil, nil
	}

	fileStore, err := filestore.NewFromConfig(cloudStorageConfig)
	if err != nil {
		panic(errors.Wrap(err, "Failed to create cloud storage file store"))
	}

	pathGenerator := &storagepath.Generator{
		Host:   cloudStorageConfig.GetStorageHost(),
		Bucket: cloudStorageConfig.GetBucket(),
	}

	return pathGenerator, fileStore
}

func makeProfile(profilePath string) profile.Profile {
	siteProfile, err := profile.Load(profilePath)
	if err != nil {
		panic(errors.Wrap(err, "Failed to load site profile"))
	}

	return siteProfile
}

func (a *App) makeContactUsecase(config Config) contactusecase.Usecase {
	relay := contactrelay.NewFormRelay(config.ContactEndpoint, nil)

	var limiter ratelimit.Limiter
	if config.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(context.Background(), config.RedisURL)
		if err != nil {
			panic(errors.Wrap(err, "Failed to connect to redis"))
		}

		a.closers = append(a.closers, client.Close)
		limiter = ratelimit.NewRedisLimiter(client, contactLimitPrefix, ratelimit.DefaultLimit, ratelimit.DefaultWindow)
	}

	var publisher rabbitmq.Publisher
	if config.RabbitMQURL != "" {
		queuePublisher, err := rabbitmq.NewQueuePublisher(config.RabbitMQURL, config.RabbitMQQueueName)
		if err != nil {
			panic(errors.Wrap(err, "Failed to create rabbitMQ publisher"))
		}

		a.closers = append(a.closers, queuePublisher.Close)
		publisher = queuePublisher
	}

	return contactusecase.NewUsecase(relay, limiter, publisher, config.Clock)
}

func makeCorsMiddleware(config Config) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: config.CORSAllowedOrigins,
		AllowHeaders: []string{echo.HeaderContentType},
	})
}
