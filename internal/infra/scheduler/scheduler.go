package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	walog "go.mau.fi/whatsmeow/util/log"
)

// Job is run once per firing. Its error is logged, never retried.
type Job func(ctx context.Context) error

// Daily runs a job every day at a fixed UTC time of day.
type Daily struct {
	cron   *cron.Cron
	job    Job
	hour   int
	minute int
	log    walog.Logger
}

func NewDaily(hour, minute int, job Job, logger walog.Logger) (*Daily, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("invalid time of day %02d:%02d", hour, minute)
	}

	d := &Daily{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		job:    job,
		hour:   hour,
		minute: minute,
		log:    logger,
	}
	if _, err := d.cron.AddFunc(d.Spec(), func() { d.Run(context.Background()) }); err != nil {
		return nil, fmt.Errorf("scheduling job: %w", err)
	}
	return d, nil
}

// Spec is the cron expression for the configured time.
func (d *Daily) Spec() string {
	return fmt.Sprintf("%d %d * * *", d.minute, d.hour)
}

// Run executes the job synchronously.
func (d *Daily) Run(ctx context.Context) {
	d.log.Infof("Running scheduled job (%s UTC)", d.Spec())
	if err := d.job(ctx); err != nil {
		d.log.Errorf("Scheduled job failed: %v", err)
	}
}

// Next returns the next firing time after now.
func (d *Daily) Next(now time.Time) time.Time {
	sched, err := cron.ParseStandard(d.Spec())
	if err != nil {
		return time.Time{}
	}
	return sched.Next(now.UTC())
}

func (d *Daily) Start() {
	d.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (d *Daily) Stop() {
	<-d.cron.Stop().Done()
}
