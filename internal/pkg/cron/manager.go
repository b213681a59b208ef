package cron

import (
	"fmt"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// Task 带名字的定时任务
type Task struct {
	Name string
	Spec string
	Job  cron.Job
}

type Manager struct {
	engine *cron.Cron
	tasks  []Task
}

func NewCronManager(tasks ...Task) *Manager {
	l := slogCronLogger{}
	return &Manager{
		engine: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(l),
			cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)),
		),
		tasks: tasks,
	}
}

// Start 注册全部任务后启动引擎，任一表达式非法则不启动
func (s *Manager) Start() error {
	for _, t := range s.tasks {
		if _, err := s.engine.AddJob(t.Spec, t.Job); err != nil {
			return fmt.Errorf("register cron job %s (%s): %w", t.Name, t.Spec, err)
		}
		log.Info("Cron job registered", "job", t.Name, "spec", t.Spec)
	}
	s.engine.Start()
	log.Info("Cron 定时任务引擎启动", "jobs", len(s.tasks))
	return nil
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	<-s.engine.Stop().Done()
	log.Info("Cron 定时任务引擎停止")
}

// slogCronLogger 将 robfig/cron 的日志转到 slog，调度细节降为 Debug
type slogCronLogger struct{}

func (slogCronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug("cron: "+msg, keysAndValues...)
}

func (slogCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error("cron: "+msg, append(keysAndValues, "err", err)...)
}
