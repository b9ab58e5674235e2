package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/watcher/internal/metrics"
)

type TaskName string

const (
	TaskStream TaskName = "stream"
	TaskCall   TaskName = "call"
)

type Task struct {
	Name TaskName
	Run  func(ctx context.Context) error
}

type TaskResult struct {
	Task TaskName
	Err  error
}

// Session runs independent tasks side by side. A failing task never cancels
// the others; the session is over once every task has returned.
type Session struct {
	results chan TaskResult
	wg      sync.WaitGroup
}

// Compose starts every task in its own goroutine and reports each outcome on
// Results as soon as the task returns. No ordering between tasks is implied.
func Compose(ctx context.Context, tasks ...Task) *Session {
	s := &Session{results: make(chan TaskResult, len(tasks))}

	s.wg.Add(len(tasks))
	for _, task := range tasks {
		go func(task Task) {
			defer s.wg.Done()
			err := runTask(ctx, task)
			recordResult(task.Name, err)
			s.results <- TaskResult{Task: task.Name, Err: err}
		}(task)
	}

	go func() {
		s.wg.Wait()
		close(s.results)
	}()

	return s
}

// Results is closed after the last task returned.
func (s *Session) Results() <-chan TaskResult {
	return s.results
}

// Wait blocks until every task reached a terminal state.
func (s *Session) Wait() {
	s.wg.Wait()
}

func runTask(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v", task.Name, r)
		}
	}()
	log.Debug().Str("task", string(task.Name)).Msg("Task started")
	return task.Run(ctx)
}

func recordResult(name TaskName, err error) {
	status := "ok"
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		status = "cancelled"
	default:
		status = "error"
	}
	metrics.TasksCompleted.WithLabelValues(string(name), status).Inc()
}
