package contactusecase

import (
	"context"
	"time"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/veedubyou/castel-site/src/server/internal/contact/errors"
	"github.com/veedubyou/castel-site/src/server/internal/contact/relay"
	"github.com/veedubyou/castel-site/src/server/internal/errors/api"
	"github.com/veedubyou/castel-site/src/server/internal/lib/clock"
	"github.com/veedubyou/castel-site/src/shared/contact/entity"
	"github.com/veedubyou/castel-site/src/shared/lib/rabbitmq"
	"github.com/veedubyou/castel-site/src/shared/ratelimit"
)

const publishTimeout = 10 * time.Second

type Usecase struct {
	relay     contactrelay.Relay
	limiter   ratelimit.Limiter
	publisher rabbitmq.Publisher
	clock     clock.Clock
}

// NewUsecase accepts a nil limiter and a nil publisher, for deployments
// without redis or rabbitmq
func NewUsecase(relay contactrelay.Relay, limiter ratelimit.Limiter, publisher rabbitmq.Publisher, clock clock.Clock) Usecase {
	return Usecase{
		relay:     relay,
		limiter:   limiter,
		publisher: publisher,
		clock:     clock,
	}
}

func (u Usecase) Submit(ctx context.Context, clientKey string, submission contactentity.Submission) (contactentity.Receipt, *api.Error) {
	submission = submission.Trimmed()

	if err := submission.Validate(); err != nil {
		err = errors.Wrap(err, "Submission is invalid")
		return contactentity.Receipt{}, api.CommitError(err,
			contacterrors.BadContactDataCode,
			"Please fill in your name, a valid email, a subject and a message")
	}

	if apiErr := u.checkLimit(ctx, clientKey); apiErr != nil {
		return contactentity.Receipt{}, apiErr
	}

	if err := u.relay.Send(ctx, submission); err != nil {
		err = errors.Wrap(err, "Failed to relay submission")
		return contactentity.Receipt{}, api.CommitError(err,
			contacterrors.RelayFailedCode,
			"Failed to send message.")
	}

	message := contactentity.SubmittedMessage{
		ID:          uuid.New().String(),
		SubmittedAt: u.clock().UTC().Format(time.RFC3339),
		Submission:  submission,
	}

	// the visitor's message is already delivered, announcing it must not hold up the response
	go u.publishSubmitted(message)

	return contactentity.Receipt{ID: message.ID}, nil
}

func (u Usecase) checkLimit(ctx context.Context, clientKey string) *api.Error {
	if u.limiter == nil {
		return nil
	}

	allowed, err := u.limiter.Allow(ctx, clientKey)
	if err != nil {
		log.WithError(err).
			WithField("client", clientKey).
			Warn("Rate limiter unavailable, letting the submission through")
		return nil
	}

	if !allowed {
		err := errors.Newf("Client %s is over the submission limit", clientKey)
		return api.CommitError(err,
			contacterrors.TooManySubmissionsCode,
			"You've sent a lot of messages recently, please try again later")
	}

	return nil
}

func (u Usecase) publishSubmitted(message contactentity.SubmittedMessage) {
	if u.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := rabbitmq.PublishJSON(ctx, u.publisher, contactentity.SubmittedMessageType, message)
	if err != nil {
		log.WithError(err).
			WithField("submission_id", message.ID).
			Error("Failed to publish contact submission")
	}
}
