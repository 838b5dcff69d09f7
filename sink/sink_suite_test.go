package sink_test

import (
	"os"
	"testing"

	"github.com/egdaemon/wordenum/internal/testx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSink(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sink Suite")
}

func TestMain(m *testing.M) {
	testx.Logging()
	os.Exit(m.Run())
}
