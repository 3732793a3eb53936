package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/config/dev"
	"github.com/veedubyou/castel-site/src/shared/config/envvar"
	"github.com/veedubyou/castel-site/src/shared/config/prod"
	"github.com/veedubyou/castel-site/src/shared/lib/env"
	"github.com/veedubyou/castel-site/src/worker/application"
)

const defaultQueueName = "castel-site-contact"

func main() {
	var appConfig application.Config

	switch env.Get() {
	case env.Production:
		appConfig = application.Config{
			CloudStorageConfig: config.ProdCloudStorage{
				StorageHost: prod.GOOGLE_STORAGE_HOST,
				SecretKey:   envvar.MustGet(envvar.GOOGLE_CLOUD_KEY),
				BucketName:  envvar.MustGet(envvar.GOOGLE_CLOUD_STORAGE_BUCKET_NAME),
			},
			RabbitMQURL:       envvar.MustGet(envvar.RABBITMQ_URL),
			RabbitMQQueueName: envvar.GetOrDefault(envvar.RABBITMQ_QUEUE_NAME, defaultQueueName),
		}

	case env.Development:
		appConfig = application.Config{
			CloudStorageConfig: dev.CloudStorageConfig,
			RabbitMQURL:        dev.RabbitMQHost,
			RabbitMQQueueName:  dev.RabbitMQQueueName,
		}

	default:
		panic("Unexpected environment")
	}

	app, err := application.NewApp(appConfig)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("Stopping worker")
		app.Stop()
	}()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}
}
