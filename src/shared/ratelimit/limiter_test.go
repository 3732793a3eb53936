package ratelimit_test

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v9"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/shared/config/dev"
	"github.com/veedubyou/castel-site/src/shared/ratelimit"
)

var _ = Describe("RedisLimiter", func() {
	var (
		client  *goredis.Client
		limiter ratelimit.RedisLimiter
		prefix  string
	)

	BeforeEach(func() {
		var err error
		client, err = ratelimit.NewRedisClient(context.Background(), dev.RedisURL)
		if err != nil {
			Skip("local redis is not running")
		}

		prefix = "ratelimit-test-" + uuid.New().String()
		limiter = ratelimit.NewRedisLimiter(client, prefix, 2, time.Minute)
	})

	AfterEach(func() {
		if client == nil {
			return
		}

		keys := client.Keys(context.Background(), prefix+":*").Val()
		if len(keys) > 0 {
			client.Del(context.Background(), keys...)
		}
		Expect(client.Close()).To(Succeed())
	})

	It("allows attempts up to the limit", func() {
		Expect(limiter.Allow(context.Background(), "1.2.3.4")).To(BeTrue())
		Expect(limiter.Allow(context.Background(), "1.2.3.4")).To(BeTrue())
		Expect(limiter.Allow(context.Background(), "1.2.3.4")).To(BeFalse())
	})

	It("counts keys separately", func() {
		Expect(limiter.Allow(context.Background(), "1.2.3.4")).To(BeTrue())
		Expect(limiter.Allow(context.Background(), "1.2.3.4")).To(BeTrue())
		Expect(limiter.Allow(context.Background(), "5.6.7.8")).To(BeTrue())
	})

	It("expires the window", func() {
		Expect(limiter.Allow(context.Background(), "1.2.3.4")).To(BeTrue())
		ttl := client.TTL(context.Background(), prefix+":1.2.3.4").Val()
		Expect(ttl).To(BeNumerically(">", 0))
		Expect(ttl).To(BeNumerically("<=", time.Minute))
	})
})
