package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	to, username string
	err          error
}

func (f *fakeSender) SendWelcomeEmail(to, username string) error {
	f.to, f.username = to, username
	return f.err
}

func newTestJobService(sender WelcomeSender) *JobService {
	logger := zerolog.Nop()
	return &JobService{emails: sender, logger: &logger}
}

func welcomeTask(t *testing.T) *asynq.Task {
	t.Helper()
	task, err := NewWelcomeEmailTask(&model.User{ID: 7, Username: "jane", Email: "jane@example.com"})
	require.NoError(t, err)
	return task
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task := welcomeTask(t)

	var p WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))

	assert.Equal(t, TypeWelcomeEmail, task.Type())
	assert.Equal(t, WelcomeEmailPayload{UserID: 7, To: "jane@example.com", Username: "jane"}, p)
}

func TestHandleWelcomeEmail(t *testing.T) {
	sender := &fakeSender{}

	err := newTestJobService(sender).handleWelcomeEmail(context.Background(), welcomeTask(t))

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", sender.to)
	assert.Equal(t, "jane", sender.username)
}

func TestHandleWelcomeEmail_SendFailureIsRetried(t *testing.T) {
	sendErr := errors.New("resend unavailable")

	err := newTestJobService(&fakeSender{err: sendErr}).handleWelcomeEmail(context.Background(), welcomeTask(t))

	assert.ErrorIs(t, err, sendErr)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleWelcomeEmail_BadPayloadSkipsRetry(t *testing.T) {
	sender := &fakeSender{}
	task := asynq.NewTask(TypeWelcomeEmail, []byte("{"))

	err := newTestJobService(sender).handleWelcomeEmail(context.Background(), task)

	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, sender.to)
}
