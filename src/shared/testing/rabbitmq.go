package testlib

import (
	"encoding/json"
	"sync"

	"github.com/onsi/ginkgo/v2"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/castel-site/src/shared/config/dev"
)

const RabbitMQQueueName = "castel-site-contact-test"

// MakeRabbitMQConnection skips the current spec when the local broker isn't running
func MakeRabbitMQConnection() *amqp091.Connection {
	conn, err := amqp091.Dial(dev.RabbitMQHost)
	if err != nil {
		ginkgo.Skip("local rabbitmq is not running")
	}

	return conn
}

func AfterSuiteRabbitMQ(conn *amqp091.Connection) {
	channel := ExpectSuccess(conn.Channel())
	ExpectSuccess(channel.QueueDelete(RabbitMQQueueName, false, false, false))
}

type ReceivedMessage struct {
	Type    string
	Message map[string]interface{}
}

type RabbitMQConsumer struct {
	channel          *amqp091.Channel
	lock             sync.Mutex
	receivedMessages []ReceivedMessage
	err              error
}

func NewRabbitMQConsumer(conn *amqp091.Connection) *RabbitMQConsumer {
	channel := ExpectSuccess(conn.Channel())
	ExpectSuccess(channel.QueueDeclare(RabbitMQQueueName, true, false, false, false, nil))

	return &RabbitMQConsumer{
		channel: channel,
	}
}

func (r *RabbitMQConsumer) AsyncStart() {
	messageStream := ExpectSuccess(r.channel.Consume(
		RabbitMQQueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	))

	go func() {
		for message := range messageStream {
			body := map[string]interface{}{}
			err := json.Unmarshal(message.Body, &body)

			r.lock.Lock()
			if err != nil {
				r.err = err
			} else {
				r.receivedMessages = append(r.receivedMessages, ReceivedMessage{
					Type:    message.Type,
					Message: body,
				})
			}
			r.lock.Unlock()
		}
	}()
}

func (r *RabbitMQConsumer) Stop() {
	_ = r.channel.Close()
}

func (r *RabbitMQConsumer) Unload() ([]ReceivedMessage, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.err != nil {
		return nil, r.err
	}

	receivedMessages := r.receivedMessages
	r.receivedMessages = nil
	return receivedMessages, nil
}
