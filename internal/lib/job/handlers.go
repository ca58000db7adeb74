package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// WelcomeSender delivers the welcome email.
type WelcomeSender interface {
	SendWelcomeEmail(to, username string) error
}

func (j *JobService) handleWelcomeEmail(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("task", t.Type()).
		Int("user_id", p.UserID).
		Logger()
	if id, ok := asynq.GetTaskID(ctx); ok {
		log = log.With().Str("task_id", id).Logger()
	}

	if err := j.emails.SendWelcomeEmail(p.To, p.Username); err != nil {
		retried, _ := asynq.GetRetryCount(ctx)
		log.Warn().Err(err).Int("retried", retried).Msg("welcome email not sent")
		return err
	}

	log.Info().Msg("welcome email sent")

	return nil
}
