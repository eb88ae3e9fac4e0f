package noop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type infoRecorder struct {
	lines []string
}

func (r *infoRecorder) Info(s string) { r.lines = append(r.lines, s) }

func Test_Service(t *testing.T) {
	t.Parallel()

	logger := &infoRecorder{}
	service := New("health server", logger)

	assert.Equal(t, "health server (disabled)", service.String())

	runError, err := service.Start(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, runError)
	assert.Equal(t, []string{"health server is disabled"}, logger.lines)

	err = service.Stop()
	assert.NoError(t, err)
}
