package envvar

import (
	"fmt"
	"os"
)

const (
	PORT                             = "PORT"
	ALLOWED_FE_ORIGINS               = "ALLOWED_FE_ORIGINS"
	CONTENTFUL_SPACE_ID              = "CONTENTFUL_SPACE_ID"
	CONTENTFUL_ACCESS_TOKEN          = "CONTENTFUL_ACCESS_TOKEN"
	CONTENTFUL_ENVIRONMENT           = "CONTENTFUL_ENVIRONMENT"
	CONTENT_BACKEND                  = "CONTENT_BACKEND"
	AWS_ACCESS_KEY_ID                = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY            = "AWS_SECRET_ACCESS_KEY"
	RABBITMQ_URL                     = "RABBITMQ_URL"
	RABBITMQ_QUEUE_NAME              = "RABBITMQ_QUEUE_NAME"
	REDIS_URL                        = "REDIS_URL"
	GOOGLE_CLOUD_KEY                 = "GOOGLE_CLOUD_KEY"
	GOOGLE_CLOUD_STORAGE_BUCKET_NAME = "GOOGLE_CLOUD_STORAGE_BUCKET_NAME"
	CONTACT_FORM_ENDPOINT            = "CONTACT_FORM_ENDPOINT"
	SITE_PROFILE                     = "SITE_PROFILE"
	STATIC_DIR                       = "STATIC_DIR"
)

func MustGet(key string) string {
	val, isSet := os.LookupEnv(key)
	if !isSet {
		panic(fmt.Sprintf("No env variable found for key %s", key))
	}

	if val == "" {
		panic(fmt.Sprintf("Env variable is empty for key %s", key))
	}

	return val
}

// Get is the lenient version of MustGet for optional integrations.
// An empty value counts as unset
func Get(key string) (string, bool) {
	val, isSet := os.LookupEnv(key)
	if !isSet || val == "" {
		return "", false
	}

	return val, true
}

func GetOrDefault(key string, fallback string) string {
	if val, ok := Get(key); ok {
		return val
	}

	return fallback
}
