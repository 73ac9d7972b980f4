package hook

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-shutdown-go/constant"
)

// Manager owns the single process-termination hook. Regardless of how many
// handlers are registered, at most one signal listener is ever installed.
type Manager struct {
	mu        sync.Mutex
	installed bool
	quit      chan struct{}
	signals   []os.Signal
	exitCode  int
	exitFunc  func(int)
	notify    func(chan<- os.Signal, ...os.Signal)
	unnotify  func(chan os.Signal)
	logger    log.Logger
}

// New creates a new termination hook manager. exitCode zero means the exit
// status is derived from the received signal (128+signo).
func New(signals []os.Signal, exitCode int, logger log.Logger) *Manager {
	return &Manager{
		signals:  signals,
		exitCode: exitCode,
		exitFunc: os.Exit,
		notify:   signal.Notify,
		unnotify: func(ch chan os.Signal) { signal.Stop(ch) },
		logger:   logger,
	}
}

// Install registers the termination hook bound to the given drain function.
// It is idempotent and safe for concurrent use: only the first call installs,
// and it returns true exactly for that call.
func (m *Manager) Install(run func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.installed {
		return false
	}

	m.installed = true
	m.quit = make(chan struct{})

	// Buffered so a second signal during the drain is not dropped
	ch := make(chan os.Signal, 2)
	m.notify(ch, m.signals...)

	go m.wait(ch, run, m.quit)

	m.logger.Debugf("Termination hook installed for signals %v", m.signals)

	return true
}

// Installed reports whether the termination hook has been installed.
func (m *Manager) Installed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.installed
}

// Shutdown stops the signal listener without running any handler. Intended
// for tests and for hosts that tear the client down before process exit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.installed {
		return
	}

	close(m.quit)
	m.installed = false
	m.logger.Debug("Termination hook removed")
}

// Exit terminates the process with the given code through the configured exit
// function. Callers are expected to drain the registry first.
func (m *Manager) Exit(code int) {
	m.mu.Lock()
	exitFunc := m.exitFunc
	m.mu.Unlock()

	exitFunc(code)
}

// SetExitFunc overrides how the process exits after the drain (useful for testing)
func (m *Manager) SetExitFunc(fn func(int)) {
	if fn == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.exitFunc = fn
}

// SetNotifyFunc overrides signal subscription (useful for testing)
func (m *Manager) SetNotifyFunc(notify func(chan<- os.Signal, ...os.Signal), unnotify func(chan os.Signal)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notify = notify
	m.unnotify = unnotify
}

func (m *Manager) wait(ch chan os.Signal, run func(), quit chan struct{}) {
	select {
	case sig := <-ch:
		m.logger.Infof("Received signal %s, draining shutdown handlers", sig)

		done := make(chan struct{})

		go func() {
			run()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("Shutdown handlers drained")
		case second := <-ch:
			m.logger.Errorf("Received second signal %s during drain, exiting immediately", second)
		}

		m.exit(sig)

	case <-quit:
		m.mu.Lock()
		m.unnotify(ch)
		m.mu.Unlock()
	}
}

func (m *Manager) exit(sig os.Signal) {
	m.mu.Lock()
	code := m.exitCode
	exitFunc := m.exitFunc
	m.mu.Unlock()

	if code == 0 {
		if s, ok := sig.(syscall.Signal); ok {
			code = constant.SignalExitCodeBase + int(s)
		}
	}

	exitFunc(code)
}
