package archive_test

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/castel-site/src/shared/contact/entity"
	"github.com/veedubyou/castel-site/src/shared/filestore/filestorefakes"
	"github.com/veedubyou/castel-site/src/shared/lib/storagepath"
	"github.com/veedubyou/castel-site/src/worker/internal/archive"
)

var _ = Describe("Archiver", func() {
	var (
		fileStore *filestorefakes.FakeFileStore
		archiver  archive.Archiver
		submitted contactentity.SubmittedMessage
	)

	BeforeEach(func() {
		fileStore = &filestorefakes.FakeFileStore{}
		archiver = archive.NewArchiver(fileStore, storagepath.Generator{
			Host:   "https://storage.example.com",
			Bucket: "castel-archive",
		})

		submitted = contactentity.SubmittedMessage{
			ID:          "7d9f3c1e",
			SubmittedAt: "2024-07-18T23:30:00-02:00",
			Submission: contactentity.Submission{
				Name:    "Ana",
				Email:   "ana@example.com",
				Subject: "Booking",
				Message: "Are you free in August?",
			},
		}
	})

	message := func(messageType string, body any) amqp091.Delivery {
		payload, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())

		return amqp091.Delivery{Type: messageType, Body: payload}
	}

	It("files a submission under the UTC day it arrived", func() {
		err := archiver.HandleMessage(context.Background(), message(contactentity.SubmittedMessageType, submitted))
		Expect(err).NotTo(HaveOccurred())

		Expect(fileStore.WriteFileCallCount()).To(Equal(1))
		_, fileURL, contents, contentType := fileStore.WriteFileArgsForCall(0)

		Expect(fileURL).To(Equal("https://storage.example.com/castel-archive/submissions/2024-07-19/7d9f3c1e.json"))
		Expect(contentType).To(Equal("application/json"))

		archived := contactentity.SubmittedMessage{}
		Expect(json.Unmarshal(contents, &archived)).To(Succeed())
		Expect(archived).To(Equal(submitted))
	})

	It("rejects message types it doesn't know", func() {
		err := archiver.HandleMessage(context.Background(), message("start_job", submitted))

		Expect(markers.Is(err, archive.UnknownMessageMark)).To(BeTrue())
		Expect(fileStore.WriteFileCallCount()).To(Equal(0))
	})

	It("rejects submissions without an ID", func() {
		submitted.ID = ""
		err := archiver.HandleMessage(context.Background(), message(contactentity.SubmittedMessageType, submitted))

		Expect(markers.Is(err, archive.BadMessageMark)).To(BeTrue())
	})

	It("rejects submissions with an unreadable time", func() {
		submitted.SubmittedAt = "yesterday"
		err := archiver.HandleMessage(context.Background(), message(contactentity.SubmittedMessageType, submitted))

		Expect(markers.Is(err, archive.BadMessageMark)).To(BeTrue())
	})

	It("rejects bodies that aren't JSON", func() {
		err := archiver.HandleMessage(context.Background(), amqp091.Delivery{
			Type: contactentity.SubmittedMessageType,
			Body: []byte("not json"),
		})

		Expect(markers.Is(err, archive.BadMessageMark)).To(BeTrue())
	})

	It("fails when storage fails", func() {
		fileStore.WriteFileReturns(errors.New("bucket unavailable"))

		err := archiver.HandleMessage(context.Background(), message(contactentity.SubmittedMessageType, submitted))
		Expect(err).To(HaveOccurred())
	})
})
