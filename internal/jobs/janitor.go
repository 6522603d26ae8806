package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"thybackend/internal/auth"
)

// Janitor runs scheduled cleanup: expired and revoked auth tokens pile up
// otherwise, one row per login.
type Janitor struct {
	sched  *cron.Cron
	tokens *auth.TokenRepo
}

func NewJanitor(tokens *auth.TokenRepo) *Janitor {
	return &Janitor{
		sched:  cron.New(),
		tokens: tokens,
	}
}

func (j *Janitor) Start() error {
	_, err := j.sched.AddFunc("@daily", j.purgeTokens)
	if err != nil {
		return err
	}
	j.sched.Start()
	return nil
}

func (j *Janitor) Stop() {
	ctx := j.sched.Stop()
	<-ctx.Done()
}

func (j *Janitor) purgeTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := j.tokens.PurgeExpired(ctx)
	if err != nil {
		zap.S().Errorw("token purge failed", "err", err)
		return
	}
	if n > 0 {
		zap.S().Infow("purged stale auth tokens", "rows", n)
	}
}
