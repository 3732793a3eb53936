package main

import (
	"strings"

	"github.com/veedubyou/castel-site/src/server/application"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/config/dev"
	"github.com/veedubyou/castel-site/src/shared/config/envvar"
	"github.com/veedubyou/castel-site/src/shared/config/local"
	"github.com/veedubyou/castel-site/src/shared/config/prod"
	"github.com/veedubyou/castel-site/src/shared/lib/env"
)

const (
	defaultPort          = "5000"
	defaultQueueName     = "castel-site-contact"
	defaultStaticDir     = "web/static"
	dynamoContentBackend = "dynamo"
)

func appConfig(withLocalServices bool) application.Config {
	port := ":" + envvar.GetOrDefault(envvar.PORT, defaultPort)
	contactEndpoint, _ := envvar.Get(envvar.CONTACT_FORM_ENDPOINT)
	profilePath, _ := envvar.Get(envvar.SITE_PROFILE)

	switch env.Get() {
	case env.Production:
		commaSeparatedOrigins := envvar.MustGet(envvar.ALLOWED_FE_ORIGINS)
		allowedOrigins := strings.Split(commaSeparatedOrigins, ",")

		rabbitMQURL, _ := envvar.Get(envvar.RABBITMQ_URL)
		redisURL, _ := envvar.Get(envvar.REDIS_URL)

		return application.Config{
			ContentConfig:      contentConfig(),
			CloudStorage:       prodCloudStorage(),
			RabbitMQURL:        rabbitMQURL,
			RabbitMQQueueName:  envvar.GetOrDefault(envvar.RABBITMQ_QUEUE_NAME, defaultQueueName),
			RedisURL:           redisURL,
			ContactEndpoint:    contactEndpoint,
			ProfilePath:        profilePath,
			StaticDir:          envvar.GetOrDefault(envvar.STATIC_DIR, defaultStaticDir),
			CORSAllowedOrigins: allowedOrigins,
			Port:               port,
			Log:                true,
		}

	case env.Development:
		appConfig := application.Config{
			ContentConfig:      contentConfig(),
			ContactEndpoint:    contactEndpoint,
			ProfilePath:        profilePath,
			StaticDir:          envvar.GetOrDefault(envvar.STATIC_DIR, local.StaticDir()),
			CORSAllowedOrigins: []string{"*"},
			Port:               port,
			Log:                true,
		}

		if withLocalServices {
			appConfig.CloudStorage = dev.CloudStorageConfig
			appConfig.RabbitMQURL = dev.RabbitMQHost
			appConfig.RabbitMQQueueName = dev.RabbitMQQueueName
			appConfig.RedisURL = dev.RedisURL
		}

		return appConfig

	default:
		panic("Unexpected environment")
	}
}

// contentConfig picks the content backend. Contentful is used when its
// credentials are present, DynamoDB when asked for, and nothing otherwise
func contentConfig() config.Content {
	if backend, ok := envvar.Get(envvar.CONTENT_BACKEND); ok && backend == dynamoContentBackend {
		return config.DynamoContent{Dynamo: dynamoConfig()}
	}

	spaceID, hasSpace := envvar.Get(envvar.CONTENTFUL_SPACE_ID)
	accessToken, hasToken := envvar.Get(envvar.CONTENTFUL_ACCESS_TOKEN)
	if !hasSpace || !hasToken {
		return nil
	}

	environment, _ := envvar.Get(envvar.CONTENTFUL_ENVIRONMENT)

	return config.Contentful{
		SpaceID:     spaceID,
		AccessToken: accessToken,
		Environment: environment,
	}
}

func dynamoConfig() config.Dynamo {
	switch env.Get() {
	case env.Production:
		return config.ProdDynamo{
			AccessKeyID:     envvar.MustGet(envvar.AWS_ACCESS_KEY_ID),
			SecretAccessKey: envvar.MustGet(envvar.AWS_SECRET_ACCESS_KEY),
			Region:          prod.DynamoDBRegion,
		}

	case env.Development:
		return dev.DynamoConfig

	default:
		panic("Unexpected environment")
	}
}

func prodCloudStorage() config.CloudStorage {
	secretKey, ok := envvar.Get(envvar.GOOGLE_CLOUD_KEY)
	if !ok {
		return nil
	}

	return config.ProdCloudStorage{
		StorageHost: prod.GOOGLE_STORAGE_HOST,
		SecretKey:   secretKey,
		BucketName:  envvar.MustGet(envvar.GOOGLE_CLOUD_STORAGE_BUCKET_NAME),
	}
}
