package queue_test

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/castel-site/src/worker/internal/queue"
	"github.com/veedubyou/castel-site/src/worker/internal/queue/queuefakes"
)

type ackRecorder struct {
	mutex sync.Mutex
	acked []uint64
	nacks []uint64
	// requeued counts nacks that asked for the message back
	requeued int
}

func (a *ackRecorder) Ack(tag uint64, _ bool) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.acked = append(a.acked, tag)
	return nil
}

func (a *ackRecorder) Nack(tag uint64, _ bool, requeue bool) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.nacks = append(a.nacks, tag)
	if requeue {
		a.requeued++
	}
	return nil
}

func (a *ackRecorder) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

var _ = Describe("QueueWorker", func() {
	var (
		channel  *queuefakes.FakeMessageChannel
		handler  *queuefakes.FakeMessageHandler
		acks     *ackRecorder
		messages chan amqp091.Delivery
		worker   *queue.QueueWorker
	)

	BeforeEach(func() {
		acks = &ackRecorder{}
		messages = make(chan amqp091.Delivery, 3)

		channel = &queuefakes.FakeMessageChannel{}
		channel.ConsumeReturns(messages, nil)

		handler = &queuefakes.FakeMessageHandler{}
		handler.HandleMessageCalls(func(_ context.Context, message amqp091.Delivery) error {
			if message.Type == "broken" {
				return errors.New("can't handle it")
			}
			return nil
		})

		worker = queue.NewQueueWorker(channel, "contact", handler)
	})

	delivery := func(tag uint64, messageType string) amqp091.Delivery {
		return amqp091.Delivery{
			Acknowledger: acks,
			DeliveryTag:  tag,
			Type:         messageType,
		}
	}

	It("acks handled messages and drops failed ones", func() {
		messages <- delivery(1, "contact_submitted")
		messages <- delivery(2, "broken")
		messages <- delivery(3, "contact_submitted")
		close(messages)

		Expect(worker.Start(context.Background())).To(Succeed())

		Expect(handler.HandleMessageCallCount()).To(Equal(3))
		Expect(acks.acked).To(Equal([]uint64{1, 3}))
		Expect(acks.nacks).To(Equal([]uint64{2}))
		Expect(acks.requeued).To(Equal(0))

		By("consuming the named queue without auto ack", func() {
			queueName, _, autoAck, _, _, _, _ := channel.ConsumeArgsForCall(0)
			Expect(queueName).To(Equal("contact"))
			Expect(autoAck).To(BeFalse())
		})

		By("closing the channel when the stream ends", func() {
			Expect(channel.CloseCallCount()).To(Equal(1))
		})
	})

	It("fails to start when consuming fails", func() {
		channel.ConsumeReturns(nil, errors.New("channel is closed"))

		Expect(worker.Start(context.Background())).To(HaveOccurred())
	})

	It("refuses to start once stopped", func() {
		worker.Stop()
		worker.Stop()

		Expect(worker.Start(context.Background())).To(HaveOccurred())
		Expect(channel.CloseCallCount()).To(Equal(1))
	})
})
