package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"superlauncher/internal/logger"
)

// Component is anything that needs an orderly stop: the config store
// flush, the icon cache, the config watcher.
type Component struct {
	Name string
	Stop func()
}

// Manager runs registered components in reverse order on quit or on an
// interrupt signal, with a per-component timeout so one stuck stop
// cannot hang exit.
type Manager struct {
	components []Component
	log        logger.Logger
	mu         sync.Mutex
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	return &Manager{
		log:  log,
		done: make(chan struct{}),
	}
}

func (m *Manager) Register(name string, stop func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, Component{Name: name, Stop: stop})
}

// Listen triggers the shutdown sequence on SIGINT/SIGTERM. onDone runs
// after all components stopped; the application uses it to quit the
// GUI loop.
func (m *Manager) Listen(onDone func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
		if onDone != nil {
			onDone()
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return // already shut down
	default:
		close(m.done)
	}

	m.log.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			c.Stop()
		}()

		select {
		case <-finished:
			m.log.Debug("ShutdownManager", "component stopped", map[string]interface{}{
				"component": c.Name,
			})
		case <-time.After(5 * time.Second):
			m.log.Warning("ShutdownManager", "component stop timeout", map[string]interface{}{
				"component": c.Name,
			})
		}
	}

	m.log.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
