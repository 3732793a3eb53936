package filestore

import (
	"context"
	"io"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/domains"
	"github.com/veedubyou/castel-site/src/shared/config"
	"github.com/veedubyou/castel-site/src/shared/lib/errors/mark"
	"google.golang.org/api/option"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

var NotFoundMark = domains.New("file_not_found")
var BadURLMark = domains.New("bad_file_url")
var StorageErrorMark = domains.New("file_storage_error")

//counterfeiter:generate . FileStore
type FileStore interface {
	ReadFile(ctx context.Context, fileURL string) ([]byte, error)
	WriteFile(ctx context.Context, fileURL string, contents []byte, contentType string) error
}

var _ FileStore = GoogleFileStore{}

// GoogleFileStore addresses objects by URL, {host}/{bucket}/{object},
// the same shape storagepath.Generator produces
type GoogleFileStore struct {
	host   string
	client *storage.Client
}

func NewGoogleFileStore(host string, options ...option.ClientOption) (GoogleFileStore, error) {
	client, err := storage.NewClient(context.Background(), options...)
	if err != nil {
		return GoogleFileStore{}, errors.Wrap(err, "Failed to create cloud storage client")
	}

	return GoogleFileStore{
		host:   strings.TrimSuffix(host, "/"),
		client: client,
	}, nil
}

func NewFromConfig(cloudStorageConfig config.CloudStorage) (GoogleFileStore, error) {
	if cloudStorageConfig == nil {
		return GoogleFileStore{}, errors.New("No cloud storage configured")
	}

	return NewGoogleFileStore(cloudStorageConfig.GetStorageHost(), cloudStorageConfig.ClientOptions()...)
}

func (g GoogleFileStore) ReadFile(ctx context.Context, fileURL string) ([]byte, error) {
	bucket, object, err := g.splitURL(fileURL)
	if err != nil {
		return nil, err
	}

	reader, err := g.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, mark.Wrap(err, NotFoundMark, "Object doesn't exist")
		}
		return nil, mark.Wrap(err, StorageErrorMark, "Failed to open object for reading")
	}
	defer reader.Close()

	contents, err := io.ReadAll(reader)
	if err != nil {
		return nil, mark.Wrap(err, StorageErrorMark, "Failed to read object")
	}

	return contents, nil
}

func (g GoogleFileStore) WriteFile(ctx context.Context, fileURL string, contents []byte, contentType string) error {
	bucket, object, err := g.splitURL(fileURL)
	if err != nil {
		return err
	}

	writer := g.client.Bucket(bucket).Object(object).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(contents); err != nil {
		_ = writer.Close()
		return mark.Wrap(err, StorageErrorMark, "Failed to write object")
	}

	if err := writer.Close(); err != nil {
		return mark.Wrap(err, StorageErrorMark, "Failed to finalize object")
	}

	return nil
}

func (g GoogleFileStore) splitURL(fileURL string) (string, string, error) {
	if !strings.HasPrefix(fileURL, g.host+"/") {
		err := errors.Newf("URL %s is not under storage host %s", fileURL, g.host)
		return "", "", mark.Wrap(err, BadURLMark, "File URL doesn't belong to this store")
	}

	path := strings.TrimPrefix(fileURL, g.host+"/")
	bucket, object, found := strings.Cut(path, "/")
	if !found || bucket == "" || object == "" {
		err := errors.Newf("URL %s has no bucket or object", fileURL)
		return "", "", mark.Wrap(err, BadURLMark, "File URL is incomplete")
	}

	object, err := url.PathUnescape(object)
	if err != nil {
		return "", "", mark.Wrap(err, BadURLMark, "File URL has a malformed object name")
	}

	return bucket, object, nil
}
