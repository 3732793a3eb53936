package application

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/filestore"
	"github.com/veedubyou/castel-site/src/shared/lib/storagepath"
	"github.com/veedubyou/castel-site/src/worker/internal/archive"
	"github.com/veedubyou/castel-site/src/worker/internal/queue"
)

type Config struct {
	RabbitMQURL        string
	RabbitMQQueueName  string
	CloudStorageConfig config.CloudStorage
}

type App struct {
	conn   *amqp091.Connection
	worker *queue.QueueWorker
}

func NewApp(config Config) (*App, error) {
	fileStore, err := filestore.NewFromConfig(config.CloudStorageConfig)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create file store")
	}

	archiver := archive.NewArchiver(fileStore, storagepath.Generator{
		Host:   config.CloudStorageConfig.GetStorageHost(),
		Bucket: config.CloudStorageConfig.GetBucket(),
	})

	conn, err := amqp091.Dial(config.RabbitMQURL)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to dial RabbitMQ")
	}

	worker, err := queue.NewQueueWorkerFromConnection(conn, config.RabbitMQQueueName, archiver)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to create queue worker")
	}

	return &App{
		conn:   conn,
		worker: worker,
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	if err := a.worker.Start(ctx); err != nil {
		return errors.Wrap(err, "Failed to start worker")
	}

	return nil
}

func (a *App) Stop() {
	a.worker.Stop()
	_ = a.conn.Close()
}
