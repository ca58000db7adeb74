package job

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/listings-api/internal/model"
	"github.com/hibiken/asynq"
)

const (
	TypeWelcomeEmail = "user:welcome_email"

	QueueEmails = "emails"
)

type WelcomeEmailPayload struct {
	UserID   int    `json:"userId"`
	To       string `json:"to"`
	Username string `json:"username"`
}

// NewWelcomeEmailTask builds the welcome email task for a newly created user.
// The task id is derived from the user id so a user is queued at most once.
func NewWelcomeEmailTask(user *model.User) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		UserID:   user.ID,
		To:       user.Email,
		Username: user.Username,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TypeWelcomeEmail,
		payload,
		asynq.TaskID(fmt.Sprintf("welcome-email:%d", user.ID)),
		asynq.Queue(QueueEmails),
		asynq.MaxRetry(5),
		asynq.Timeout(20*time.Second),
		asynq.Retention(24*time.Hour),
	), nil
}
