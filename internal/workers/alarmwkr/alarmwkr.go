// Package alarmwkr periodically recomputes the alarm state of every doing
// activity and pushes an event when anything is overdue, so boards that sit
// open overnight learn about newly missed deadlines without a user mutation.
package alarmwkr

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"canvasflow.dev/backend/internal/app/appconfig"
	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/core/alarm"
	"canvasflow.dev/backend/internal/pkg/event"
	"canvasflow.dev/backend/internal/repo"
)

type WorkerDeps struct {
	fx.In

	ActivityRepo *repo.Activity
	Publisher    *event.Publisher
	Redsync      *redsync.Redsync
}

type Worker struct {
	// count counts batches worker has completed so far
	count int

	// interval describes the interval in-between different batches of sweeps
	interval time.Duration

	// deps
	WorkerDeps
}

// OverdueNotice is the per-activity payload of an alarms sweep event.
type OverdueNotice struct {
	ActivityID  int    `json:"activityId"`
	Title       string `json:"title"`
	DaysOverdue int    `json:"daysOverdue"`
}

func Start(conf *appconfig.Config, deps WorkerDeps) {
	if !conf.WorkerEnabled {
		log.Info().Msg("alarm worker is disabled")
		return
	}
	(&Worker{
		interval:   conf.WorkerInterval,
		WorkerDeps: deps,
	}).do()
}

func (w *Worker) do() context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		for {
			if err := w.sweep(ctx); err != nil {
				log.Error().Err(err).Int("count", w.count).Msg("alarm sweep failed")
			}

			w.count++
			time.Sleep(w.interval)
		}
	}()

	return cancel
}

// sweep runs one batch under a distributed mutex so that only one instance
// recomputes at a time.
func (w *Worker) sweep(ctx context.Context) error {
	mutex := w.Redsync.NewMutex("mutex:alarmwkr", redsync.WithExpiry(time.Minute))
	if err := mutex.Lock(); err != nil {
		sweepsSkipped.Inc()
		log.Debug().Err(err).Msg("alarm sweep mutex held elsewhere; skipping batch")
		return nil
	}
	defer func() {
		if _, err := mutex.Unlock(); err != nil {
			log.Warn().Err(err).Msg("failed to unlock alarm sweep mutex")
		}
	}()

	started := time.Now()
	defer func() {
		sweepDuration.Observe(time.Since(started).Seconds())
	}()

	activities, err := w.ActivityRepo.GetActivitiesByStatus(ctx, constant.StatusDoing)
	if err != nil {
		return err
	}

	now := time.Now()
	overdue := make([]*OverdueNotice, 0)
	for _, a := range activities {
		info := alarm.Compute(a, now)
		if info.IsOverdue {
			overdue = append(overdue, &OverdueNotice{
				ActivityID:  a.ActivityID,
				Title:       a.Title,
				DaysOverdue: info.DaysOverdue,
			})
		}
	}

	overdueActivities.Set(float64(len(overdue)))

	log.Info().
		Int("count", w.count).
		Int("doing", len(activities)).
		Int("overdue", len(overdue)).
		Msg("alarm sweep finished")

	if len(overdue) > 0 {
		return w.Publisher.Publish(ctx, event.SubjectAlarms, "alarms.sweep", overdue)
	}
	return nil
}

func (w *Worker) Count() int {
	return w.count
}
