package config

import (
	"sync"

	"github.com/google/go-cmp/cmp"
)

type KeyListener struct {
	Key      string
	Listener func(any)
}

var (
	listeners []KeyListener
	mu        sync.Mutex
)

// RegisterKeyListener use in init method don't dynamic update
func RegisterKeyListener(l KeyListener) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, l)
}

// snapshot records the current value of every listened key.
func snapshot(get func(string) any) []any {
	mu.Lock()
	defer mu.Unlock()
	values := make([]any, 0, len(listeners))
	for _, l := range listeners {
		values = append(values, get(l.Key))
	}
	return values
}

// notify fires listeners whose key changed since the snapshot.
func notify(get func(string) any, before []any) {
	mu.Lock()
	ls := make([]KeyListener, len(listeners))
	copy(ls, listeners)
	mu.Unlock()

	for i, l := range ls {
		val := get(l.Key)
		if i < len(before) && cmp.Equal(val, before[i]) {
			continue
		}
		if l.Listener != nil {
			l.Listener(val)
		}
	}
}
