package testlib

import (
	"os"

	. "github.com/onsi/gomega"
	"github.com/veedubyou/castel-site/src/shared/lib/env"
)

func SetTestEnv() {
	err := os.Setenv(env.Key, string(env.Test))
	Expect(err).NotTo(HaveOccurred())
}
