/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package paymentauth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/asgardeo/paymentauth/internal/system/log"
)

// ErrSchedulerClosed is returned when a task is scheduled after the scheduler has been closed.
var ErrSchedulerClosed = errors.New("challenge scheduler is closed")

const schedulerQueueSize = 16

// ChallengeSchedulerInterface runs challenge UI tasks on a dedicated worker.
type ChallengeSchedulerInterface interface {
	// Schedule queues the task to run after delay. The task always runs exactly once; it receives
	// ctx and must check ctx.Err() when the context may have ended during the delay.
	Schedule(ctx context.Context, delay time.Duration, task func(ctx context.Context)) error
	Close()
}

type scheduledTask struct {
	ctx   context.Context
	delay time.Duration
	run   func(ctx context.Context)
}

// ChallengeScheduler runs scheduled tasks one at a time on a single goroutine.
type ChallengeScheduler struct {
	tasks  chan scheduledTask
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
	logger *log.Logger
}

// NewChallengeScheduler starts a scheduler with its worker goroutine.
func NewChallengeScheduler() *ChallengeScheduler {
	s := &ChallengeScheduler{
		tasks:  make(chan scheduledTask, schedulerQueueSize),
		done:   make(chan struct{}),
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ChallengeScheduler")),
	}
	go s.work()
	return s
}

// Schedule queues a task. It blocks only while the queue is full.
func (s *ChallengeScheduler) Schedule(ctx context.Context, delay time.Duration,
	task func(ctx context.Context)) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrSchedulerClosed
	}

	select {
	case s.tasks <- scheduledTask{ctx: ctx, delay: delay, run: task}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
func (s *ChallengeScheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		<-s.done
		return
	}
	s.closed = true
	close(s.tasks)
	s.mu.Unlock()
	<-s.done
}

func (s *ChallengeScheduler) work() {
	defer close(s.done)
	for task := range s.tasks {
		s.wait(task)
		s.run(task)
	}
}

// wait sleeps for the task delay, returning early when the task context ends.
func (s *ChallengeScheduler) wait(task scheduledTask) {
	if task.delay <= 0 {
		return
	}
	timer := time.NewTimer(task.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-task.ctx.Done():
	}
}

func (s *ChallengeScheduler) run(task scheduledTask) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Challenge task panicked", log.Any("panic", r))
		}
	}()
	task.run(task.ctx)
}
