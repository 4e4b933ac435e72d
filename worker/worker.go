package worker

import (
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// IJob a scheduled job
type IJob interface {
	Start() error
	Run()
	Stop() error
}

type OnWork func() error

// BaseJob cron-driven job. Cron v3 fires each run in its own goroutine,
// so overlapping firings are skipped atomically.
type BaseJob struct {
	Cron    *cron.Cron
	OnWork  OnWork
	running atomic.Bool
}

func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

func (job *BaseJob) Stop() error {
	job.Cron.Stop()
	return nil
}

func (job *BaseJob) Run() {
	if !job.running.CompareAndSwap(false, true) {
		return
	}
	defer job.running.Store(false)

	job.OnWork()
}
