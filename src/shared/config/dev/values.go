package dev

import "github.com/veedubyou/castel-site/src/shared/config"

// DynamoDB
const (
	DynamoAccessKeyID     = "local"
	DynamoSecretAccessKey = "local"
	DynamoDBHost          = "http://localhost:8000"
	DynamoDBRegion        = "localhost"
)

var DynamoConfig = config.LocalDynamo{
	AccessKeyID:     DynamoAccessKeyID,
	SecretAccessKey: DynamoSecretAccessKey,
	Region:          DynamoDBRegion,
	Host:            DynamoDBHost,
}

// Cloud storage, served by fake-gcs-server
const (
	CloudStorageHost     = "http://localhost:4443/storage/v1"
	CloudStorageEndpoint = "http://localhost:4443/storage/v1/"
	CloudStorageBucket   = "castel-site-dev"
)

var CloudStorageConfig = config.LocalCloudStorage{
	StorageHost:  CloudStorageHost,
	HostEndpoint: CloudStorageEndpoint,
	BucketName:   CloudStorageBucket,
}

// RabbitMQ
const (
	RabbitMQHost      = "amqp://localhost:5672"
	RabbitMQQueueName = "castel-site-contact-dev"
)

// Redis
const (
	RedisURL = "redis://localhost:6379/0"
)
