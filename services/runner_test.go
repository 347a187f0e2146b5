package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastos/internal/config"
	"fastos/internal/models"
)

func testConfig(delays ...time.Duration) *config.AppConfig {
	cfg := &config.AppConfig{}
	cfg.System.Name = "FastOS"
	cfg.System.Version = "2.1.0"
	for i, d := range delays {
		cfg.Services = append(cfg.Services, config.ServiceConfig{
			Name:          "svc-" + string(rune('a'+i)),
			BootDelay:     d,
			ShutdownDelay: d / 2,
		})
	}
	return cfg
}

func startedEntries(sink *LogSink) []string {
	var out []string
	for _, e := range sink.Snapshot() {
		if strings.HasSuffix(e.Text, " started.") {
			out = append(out, strings.TrimSuffix(e.Text, " started."))
		}
	}
	return out
}

func countEntries(sink *LogSink, substr string) int {
	n := 0
	for _, e := range sink.Snapshot() {
		if strings.Contains(e.Text, substr) {
			n++
		}
	}
	return n
}

/**
 * Boot must run the per-service waits concurrently: total wall time tracks
 * the longest delay, not the sum.
 */
func TestBootRunsServicesInParallel(t *testing.T) {
	sys := NewSystem(testConfig(
		10*time.Millisecond,
		20*time.Millisecond,
		30*time.Millisecond,
		40*time.Millisecond,
		50*time.Millisecond,
		60*time.Millisecond,
	))

	start := time.Now()
	require.True(t, sys.Runner.Boot(context.Background()))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
	assert.Less(t, elapsed, 150*time.Millisecond, "boot took sum-of-delays time, not max")

	assert.Equal(t, models.SystemOn, sys.Runner.State())
	for _, detail := range sys.Registry.Details() {
		assert.Equal(t, models.StatusRunning, detail.Status, detail.Name)
	}
}

func TestBootEmitsEntriesInCompletionOrder(t *testing.T) {
	sys := NewSystem(testConfig(
		60*time.Millisecond,
		20*time.Millisecond,
		40*time.Millisecond,
	))

	require.True(t, sys.Runner.Boot(context.Background()))

	assert.Equal(t, []string{"svc-b", "svc-c", "svc-a"}, startedEntries(sys.Sink))
}

func TestBootBreaksDelayTiesByRegistryOrder(t *testing.T) {
	sys := NewSystem(testConfig(
		20*time.Millisecond,
		20*time.Millisecond,
		10*time.Millisecond,
	))

	require.True(t, sys.Runner.Boot(context.Background()))

	assert.Equal(t, []string{"svc-c", "svc-a", "svc-b"}, startedEntries(sys.Sink))
}

func TestBootWhileOnIsIgnored(t *testing.T) {
	sys := NewSystem(testConfig(5*time.Millisecond, 5*time.Millisecond))

	require.True(t, sys.Runner.Boot(context.Background()))
	require.False(t, sys.Runner.Boot(context.Background()))

	assert.Equal(t, models.SystemOn, sys.Runner.State())
	assert.Equal(t, 1, countEntries(sys.Sink, "Boot complete"))
	assert.Equal(t, 2, countEntries(sys.Sink, " started."))
	assert.Equal(t, 1, countEntries(sys.Sink, "Boot ignored"))
}

func TestShutdownStopsEveryService(t *testing.T) {
	sys := NewSystem(testConfig(10*time.Millisecond, 20*time.Millisecond))

	require.True(t, sys.Runner.Boot(context.Background()))
	require.True(t, sys.Runner.Shutdown(context.Background()))

	assert.Equal(t, models.SystemOff, sys.Runner.State())
	for _, detail := range sys.Registry.Details() {
		assert.Equal(t, models.StatusStopped, detail.Status, detail.Name)
	}
	assert.Equal(t, 1, countEntries(sys.Sink, "Shutdown complete"))
	assert.Equal(t, 2, countEntries(sys.Sink, " stopped."))
	assert.Zero(t, sys.Runner.BootTime())
}

func TestShutdownWhileOffIsIgnored(t *testing.T) {
	sys := NewSystem(testConfig(5 * time.Millisecond))

	require.False(t, sys.Runner.Shutdown(context.Background()))

	assert.Equal(t, models.SystemOff, sys.Runner.State())
	assert.Equal(t, 1, countEntries(sys.Sink, "Shutdown ignored"))
	assert.Zero(t, countEntries(sys.Sink, "Shutdown complete"))
}

func TestBootRepeatedCycleIsIdempotent(t *testing.T) {
	sys := NewSystem(testConfig(5*time.Millisecond, 5*time.Millisecond))

	for i := 0; i < 3; i++ {
		require.True(t, sys.Runner.Boot(context.Background()))
		require.True(t, sys.Runner.Shutdown(context.Background()))
	}

	assert.Equal(t, models.SystemOff, sys.Runner.State())
	assert.Equal(t, 3, countEntries(sys.Sink, "Boot complete"))
	assert.Equal(t, 3, countEntries(sys.Sink, "Shutdown complete"))
}

/**
 * A cancelled context fails every worker; the failure is surfaced per
 * service and the system rolls back to Off instead of reaching On.
 */
func TestBootWithCancelledContextRollsBack(t *testing.T) {
	sys := NewSystem(testConfig(time.Second, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	require.True(t, sys.Runner.Boot(ctx))
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	assert.Equal(t, models.SystemOff, sys.Runner.State())
	assert.Equal(t, 2, countEntries(sys.Sink, "context canceled"))
	assert.Equal(t, 1, countEntries(sys.Sink, "Boot failed"))
	assert.Zero(t, countEntries(sys.Sink, "Boot complete"))
}

func TestBootTimeAndUptimeReporting(t *testing.T) {
	sys := NewSystem(testConfig(10 * time.Millisecond))

	assert.Zero(t, sys.Runner.BootTime())
	assert.Zero(t, sys.Runner.Uptime())

	require.True(t, sys.Runner.Boot(context.Background()))

	assert.GreaterOrEqual(t, sys.Runner.BootTime(), 10*time.Millisecond)
	assert.Greater(t, sys.Runner.Uptime(), time.Duration(0))
}
