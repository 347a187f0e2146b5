package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fastos/internal/logger"
	"fastos/internal/models"
)

// Runner owns every transition of the system state and of service statuses.
// Boot and Shutdown each spawn one goroutine per service to simulate that
// service's delay, then funnel all completion events into a single collector
// loop; the collector is the only goroutine that mutates the registry and the
// log sink during a transition, so no locking discipline is needed across
// workers.
type Runner struct {
	reg  *Registry
	sink *LogSink
	name string

	mu       sync.Mutex
	state    models.SystemState
	bootTime time.Duration
	onSince  time.Time
}

type completion struct {
	idx int
	err error
}

func NewRunner(name string, reg *Registry, sink *LogSink) *Runner {
	return &Runner{
		reg:   reg,
		sink:  sink,
		name:  name,
		state: models.SystemOff,
	}
}

func (r *Runner) State() models.SystemState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// BootTime reports the wall time the last successful boot took, zero after a
// shutdown.
func (r *Runner) BootTime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bootTime
}

// Uptime reports how long the system has been On, zero otherwise.
func (r *Runner) Uptime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != models.SystemOn {
		return 0
	}
	return time.Since(r.onSince)
}

/**
 * Boot the system by starting all services in parallel
 * @param {context.Context} ctx - Context for cancellation of simulated waits
 * @returns {bool} Returns false when the guard rejected the call, true when
 * the boot ran (successfully or not)
 * @description
 * - No-op unless the system is Off; the rejection is explained in the log,
 *   never raised to the caller
 * - One worker per service waits that service's boot delay, so total wall
 *   time tracks the longest delay rather than the sum
 * - Started entries appear in completion order: shortest delay first, ties
 *   broken by registry order
 * - A worker panic is caught here and surfaced as a log line naming the
 *   service; any failure rolls the system back to Off after the join
 */
func (r *Runner) Boot(ctx context.Context) bool {
	r.mu.Lock()
	if r.state != models.SystemOff {
		state := r.state
		r.mu.Unlock()
		r.sink.Append(fmt.Sprintf("Boot ignored: system is %s.", state))
		logger.Warnf("Boot request ignored in state %s", state)
		return false
	}
	r.state = models.SystemBooting
	r.mu.Unlock()

	r.sink.Append(fmt.Sprintf("Booting %s...", r.name))
	logger.Infof("Boot started: %d services", r.reg.Len())

	start := time.Now()
	failures := r.transition(ctx, bootPhase)
	elapsed := time.Since(start)

	r.mu.Lock()
	if failures > 0 {
		r.state = models.SystemOff
		r.mu.Unlock()
		r.sink.Append(fmt.Sprintf("Boot failed: %d service(s) did not start.", failures))
		logger.Errorf("Boot failed: %d service(s) did not start", failures)
		return true
	}
	r.state = models.SystemOn
	r.bootTime = elapsed
	r.onSince = time.Now()
	r.mu.Unlock()

	r.sink.Append(fmt.Sprintf("Boot complete in %.2fs.", elapsed.Seconds()))
	logger.Infof("Boot complete in %s", elapsed.Round(time.Millisecond))
	RecordBoot(elapsed)
	return true
}

/**
 * Shut the system down by stopping all services in parallel
 * @param {context.Context} ctx - Context for cancellation of simulated waits
 * @returns {bool} Returns false when the guard rejected the call
 * @description
 * - No-op unless the system is On; mirror image of Boot, using each
 *   service's shutdown delay
 */
func (r *Runner) Shutdown(ctx context.Context) bool {
	r.mu.Lock()
	if r.state != models.SystemOn {
		state := r.state
		r.mu.Unlock()
		r.sink.Append(fmt.Sprintf("Shutdown ignored: system is %s.", state))
		logger.Warnf("Shutdown request ignored in state %s", state)
		return false
	}
	r.state = models.SystemShuttingDown
	r.mu.Unlock()

	r.sink.Append(fmt.Sprintf("Shutting down %s...", r.name))
	logger.Infof("Shutdown started: %d services", r.reg.Len())

	start := time.Now()
	failures := r.transition(ctx, shutdownPhase)
	elapsed := time.Since(start)

	r.mu.Lock()
	r.state = models.SystemOff
	r.bootTime = 0
	r.onSince = time.Time{}
	r.mu.Unlock()

	if failures > 0 {
		r.sink.Append(fmt.Sprintf("Shutdown finished with %d error(s).", failures))
		logger.Errorf("Shutdown finished with %d error(s)", failures)
	} else {
		r.sink.Append(fmt.Sprintf("Shutdown complete in %.2fs.", elapsed.Seconds()))
		logger.Infof("Shutdown complete in %s", elapsed.Round(time.Millisecond))
	}
	RecordShutdown(elapsed)
	return true
}

type phase struct {
	pending models.RunStatus
	done    models.RunStatus
	verb    string
	delay   func(svc *ServiceInstance) time.Duration
}

var bootPhase = phase{
	pending: models.StatusBooting,
	done:    models.StatusRunning,
	verb:    "started",
	delay:   func(svc *ServiceInstance) time.Duration { return svc.Spec.BootDelay },
}

var shutdownPhase = phase{
	pending: models.StatusShuttingDown,
	done:    models.StatusStopped,
	verb:    "stopped",
	delay:   func(svc *ServiceInstance) time.Duration { return svc.Spec.ShutdownDelay },
}

// transition runs one worker per service and collects completions, emitting
// log entries in deterministic order. Returns the number of failed services.
func (r *Runner) transition(ctx context.Context, ph phase) int {
	services := r.reg.List()
	for _, svc := range services {
		r.reg.SetStatus(svc.Name, ph.pending)
	}

	events := make(chan completion, len(services))
	for i, svc := range services {
		go r.wait(ctx, i, ph.delay(svc), events)
	}

	// Completion order is fixed up front: shortest delay first, registry
	// order on ties. The collector holds back any event that arrives ahead
	// of a still-pending earlier slot, so the emitted order never depends
	// on scheduling jitter.
	order := completionOrder(services, ph.delay)
	arrived := make([]bool, len(services))
	errs := make([]error, len(services))

	failures := 0
	next := 0
	for received := 0; received < len(services); received++ {
		ev := <-events
		arrived[ev.idx] = true
		errs[ev.idx] = ev.err

		for next < len(order) && arrived[order[next]] {
			idx := order[next]
			svc := services[idx]
			if errs[idx] != nil {
				failures++
				r.reg.SetStatus(svc.Name, models.StatusStopped)
				r.sink.Append(fmt.Sprintf("Service %s failed: %v", svc.Name, errs[idx]))
				logger.Errorf("Service [%s] failed: %v", svc.Name, errs[idx])
			} else {
				r.reg.SetStatus(svc.Name, ph.done)
				r.sink.Append(fmt.Sprintf("%s %s.", svc.Name, ph.verb))
				logger.Debugf("Service [%s] %s", svc.Name, ph.verb)
			}
			next++
		}
	}
	return failures
}

// wait simulates one service's delay. Panics are converted into failure
// events so the collector's join can never hang.
func (r *Runner) wait(ctx context.Context, idx int, delay time.Duration, events chan<- completion) {
	defer func() {
		if p := recover(); p != nil {
			events <- completion{idx: idx, err: fmt.Errorf("worker panic: %v", p)}
		}
	}()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		events <- completion{idx: idx}
	case <-ctx.Done():
		events <- completion{idx: idx, err: ctx.Err()}
	}
}

func completionOrder(services []*ServiceInstance, delay func(*ServiceInstance) time.Duration) []int {
	order := make([]int, len(services))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return delay(services[order[a]]) < delay(services[order[b]])
	})
	return order
}
