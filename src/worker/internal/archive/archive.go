// Package archive keeps a copy of every relayed contact submission in cloud
// storage, one JSON object per submission filed under the day it arrived
package archive

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/domains"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/castel-site/src/shared/contact/entity"
	"github.com/veedubyou/castel-site/src/shared/filestore"
	"github.com/veedubyou/castel-site/src/shared/lib/errors/mark"
	"github.com/veedubyou/castel-site/src/shared/lib/storagepath"
)

const (
	SubmissionsFolder = "submissions"
	dayLayout         = "2006-01-02"
)

var UnknownMessageMark = domains.New("unknown_message")
var BadMessageMark = domains.New("bad_message")

type Archiver struct {
	fileStore     filestore.FileStore
	pathGenerator storagepath.Generator
}

func NewArchiver(fileStore filestore.FileStore, pathGenerator storagepath.Generator) Archiver {
	return Archiver{
		fileStore:     fileStore,
		pathGenerator: pathGenerator,
	}
}

func (a Archiver) HandleMessage(ctx context.Context, message amqp091.Delivery) error {
	switch message.Type {
	case contactentity.SubmittedMessageType:
		return a.archiveSubmission(ctx, message.Body)

	default:
		err := errors.Newf("No handler for message type %q", message.Type)
		return mark.Wrap(err, UnknownMessageMark, "Unknown message type")
	}
}

// SubmissionURL is where a submission is archived
func (a Archiver) SubmissionURL(message contactentity.SubmittedMessage) (string, error) {
	if message.ID == "" {
		return "", mark.Message(BadMessageMark, "Submission is missing its ID")
	}

	submittedAt, err := time.Parse(time.RFC3339, message.SubmittedAt)
	if err != nil {
		return "", mark.Wrap(err, BadMessageMark, "Submission time doesn't parse")
	}

	return a.pathGenerator.GeneratePath(
		SubmissionsFolder,
		submittedAt.UTC().Format(dayLayout),
		message.ID+".json",
	), nil
}

func (a Archiver) archiveSubmission(ctx context.Context, body []byte) error {
	message := contactentity.SubmittedMessage{}
	if err := json.Unmarshal(body, &message); err != nil {
		return mark.Wrap(err, BadMessageMark, "Failed to unmarshal submission")
	}

	fileURL, err := a.SubmissionURL(message)
	if err != nil {
		return err
	}

	contents, err := json.MarshalIndent(message, "", "  ")
	if err != nil {
		return errors.Wrap(err, "Failed to marshal submission")
	}

	if err := a.fileStore.WriteFile(ctx, fileURL, contents, "application/json"); err != nil {
		return errors.Wrapf(err, "Failed to archive submission %s", message.ID)
	}

	return nil
}
