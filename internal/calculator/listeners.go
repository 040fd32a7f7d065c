package calculator

import (
	"sync"

	"gitlab.com/zlyzol/settlemath/internal/models"
)

const listenerBuffer = 16

// Listener receives every calculation recorded after it subscribed.
type Listener struct {
	C chan models.Calculation
}

// listeners is a thread safe set of subscribers.
type listeners struct {
	sync.Mutex
	items []*Listener
}

func (l *listeners) push(w *Listener) {
	l.Lock()
	defer l.Unlock()
	l.items = append(l.items, w)
}

func (l *listeners) remove(w *Listener) {
	l.Lock()
	defer l.Unlock()
	for i := 0; i < len(l.items); i++ {
		if l.items[i] == w {
			close(w.C)
			l.items[i] = l.items[len(l.items)-1]
			l.items[len(l.items)-1] = nil
			l.items = l.items[:len(l.items)-1]
			return
		}
	}
}

// publish never blocks, a listener with a full buffer misses the record.
func (l *listeners) publish(calc models.Calculation) (dropped int) {
	l.Lock()
	defer l.Unlock()
	for _, w := range l.items {
		select {
		case w.C <- calc:
		default:
			dropped++
		}
	}
	return dropped
}

func (l *listeners) len() int {
	l.Lock()
	defer l.Unlock()
	return len(l.items)
}
