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

package telemetry

import (
	"context"
	"fmt"
	"sync"

	"github.com/asgardeo/paymentauth/internal/system/log"
)

// EmitterInterface dispatches analytics events without blocking the caller.
type EmitterInterface interface {
	Emit(event Event)
}

// Emitter sends every event to its sink on a detached goroutine. Failures are logged and
// otherwise ignored.
type Emitter struct {
	sink   SinkInterface
	logger *log.Logger
	wg     sync.WaitGroup
}

// NewEmitter creates an Emitter for the given sink.
func NewEmitter(sink SinkInterface) *Emitter {
	if sink == nil {
		sink = NoopSink{}
	}
	return &Emitter{
		sink:   sink,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
}

// Emit dispatches the event and returns immediately.
func (e *Emitter) Emit(event Event) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.send(event); err != nil {
			e.logger.Debug("Failed to send analytics event",
				log.String(log.LoggerKeyEventName, string(event.Name)),
				log.String(log.LoggerKeyIntentID, event.IntentID), log.Error(err))
		}
	}()
}

func (e *Emitter) send(event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panicked: %v", r)
		}
	}()
	return e.sink.Send(context.Background(), event)
}

// Wait blocks until every event emitted so far has been handed to the sink.
func (e *Emitter) Wait() {
	e.wg.Wait()
}
