package toast

import (
	"fmt"
	"sync"
	"time"
)

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
)

const (
	DefaultDuration   = 3 * time.Second
	DefaultMaxEntries = 50
)

type Toast struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Options struct {
	MaxEntries      int
	DefaultDuration time.Duration
}

// Notifier es la cola de avisos de la aplicación. Se crea al arrancar,
// se inyecta donde se necesite y se cierra al apagar.
type Notifier struct {
	mu      sync.Mutex
	seq     uint64
	entries []Toast
	timers  map[string]*time.Timer
	closed  bool

	maxEntries      int
	defaultDuration time.Duration
	now             func() time.Time
}

func New(opts Options) *Notifier {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = DefaultDuration
	}
	return &Notifier{
		timers:          map[string]*time.Timer{},
		maxEntries:      opts.MaxEntries,
		defaultDuration: opts.DefaultDuration,
		now:             time.Now,
	}
}

// Add agrega un aviso y agenda su borrado después de d (default si d <= 0).
// Si la cola supera el máximo, descarta primero el no-error más viejo.
func (n *Notifier) Add(typ Type, message string, d time.Duration) Toast {
	if d <= 0 {
		d = n.defaultDuration
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.seq++
	t := Toast{
		ID:        fmt.Sprintf("toast-%d", n.seq),
		Type:      typ,
		Message:   message,
		CreatedAt: n.now(),
	}
	if n.closed {
		return t
	}

	n.entries = append(n.entries, t)
	id := t.ID
	n.timers[id] = time.AfterFunc(d, func() { n.Remove(id) })

	for len(n.entries) > n.maxEntries {
		n.evictLocked()
	}
	return t
}

func (n *Notifier) Success(message string) Toast { return n.Add(TypeSuccess, message, 0) }
func (n *Notifier) Error(message string) Toast   { return n.Add(TypeError, message, 0) }
func (n *Notifier) Info(message string) Toast    { return n.Add(TypeInfo, message, 0) }
func (n *Notifier) Warning(message string) Toast { return n.Add(TypeWarning, message, 0) }

// Remove borra el aviso ya mismo. Devuelve false si no existía.
func (n *Notifier) Remove(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, t := range n.entries {
		if t.ID == id {
			n.removeAtLocked(i)
			return true
		}
	}
	return false
}

// List devuelve una copia en orden de llegada.
func (n *Notifier) List() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Toast, len(n.entries))
	copy(out, n.entries)
	return out
}

// Close detiene los timers pendientes y vacía la cola.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, tm := range n.timers {
		tm.Stop()
		delete(n.timers, id)
	}
	n.entries = nil
	n.closed = true
}

func (n *Notifier) evictLocked() {
	for i, t := range n.entries {
		if t.Type != TypeError {
			n.removeAtLocked(i)
			return
		}
	}
	n.removeAtLocked(0)
}

func (n *Notifier) removeAtLocked(i int) {
	id := n.entries[i].ID
	if tm, ok := n.timers[id]; ok {
		tm.Stop()
		delete(n.timers, id)
	}
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
}
