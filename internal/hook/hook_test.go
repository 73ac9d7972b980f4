package hook_test

import (
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/LerianStudio/lib-shutdown-go/internal/hook"
	"github.com/LerianStudio/lib-shutdown-go/test/helper/testlogger"
	"github.com/LerianStudio/lib-shutdown-go/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSignals captures the channel handed to signal.Notify so tests can
// deliver signals without touching process state.
type fakeSignals struct {
	mu sync.Mutex
	ch chan<- os.Signal
}

func (f *fakeSignals) notify(ch chan<- os.Signal, _ ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ch = ch
}

func (f *fakeSignals) stop(chan os.Signal) {}

func (f *fakeSignals) send(sig os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ch <- sig
}

func newManager(t *testing.T, exitCode int) (*hook.Manager, *fakeSignals, chan int) {
	t.Helper()

	m := hook.New([]os.Signal{syscall.SIGINT, syscall.SIGTERM}, exitCode, mocks.NewLogger())

	fake := &fakeSignals{}
	m.SetNotifyFunc(fake.notify, fake.stop)

	exited := make(chan int, 1)
	m.SetExitFunc(func(code int) { exited <- code })

	return m, fake, exited
}

func TestInstall_ExactlyOnce(t *testing.T) {
	m, _, _ := newManager(t, 0)
	defer m.Shutdown()

	assert.True(t, m.Install(func() {}))
	assert.False(t, m.Install(func() {}))
	assert.False(t, m.Install(func() {}))
	assert.True(t, m.Installed())
}

func TestSignal_DrainsThenExitsWithDerivedCode(t *testing.T) {
	m, fake, exited := newManager(t, 0)

	ran := make(chan struct{})
	require.True(t, m.Install(func() { close(ran) }))

	fake.send(syscall.SIGTERM)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("drain function was not invoked")
	}

	select {
	case code := <-exited:
		assert.Equal(t, 128+int(syscall.SIGTERM), code)
	case <-time.After(time.Second):
		t.Fatal("exit function was not invoked")
	}
}

func TestSignal_ConfiguredExitCodeWins(t *testing.T) {
	m, fake, exited := newManager(t, 7)

	require.True(t, m.Install(func() {}))

	fake.send(syscall.SIGINT)

	select {
	case code := <-exited:
		assert.Equal(t, 7, code)
	case <-time.After(time.Second):
		t.Fatal("exit function was not invoked")
	}
}

func TestSignal_SecondSignalForcesExit(t *testing.T) {
	logger := testlogger.New()
	m := hook.New([]os.Signal{syscall.SIGINT}, 0, logger)

	fake := &fakeSignals{}
	m.SetNotifyFunc(fake.notify, fake.stop)

	exited := make(chan int, 1)
	m.SetExitFunc(func(code int) { exited <- code })

	block := make(chan struct{})
	require.True(t, m.Install(func() { <-block }))

	fake.send(syscall.SIGINT)
	fake.send(syscall.SIGINT)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("second signal did not force the exit")
	}

	assert.True(t, logger.Contains("exiting immediately"))

	close(block)
}

func TestShutdown_StopsListening(t *testing.T) {
	m, _, _ := newManager(t, 0)

	require.True(t, m.Install(func() {}))
	m.Shutdown()

	assert.False(t, m.Installed())

	// The guard resets on teardown, so a fresh install is permitted
	assert.True(t, m.Install(func() {}))
	m.Shutdown()
}

func TestExit_UsesConfiguredExitFunc(t *testing.T) {
	m, _, exited := newManager(t, 0)

	m.Exit(3)

	select {
	case code := <-exited:
		assert.Equal(t, 3, code)
	default:
		t.Fatal("exit function was not invoked")
	}
}
