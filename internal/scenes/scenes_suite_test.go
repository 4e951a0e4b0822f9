package scenes_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestScenes(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Scenes Suite")
}
