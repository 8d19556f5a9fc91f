package datasource

import "sync"

// EndListeners tracks the listeners registered with a RecordIterator's OnEnd, and fires them
// exactly once. It is embedded by the RecordIterators in this module.
type EndListeners struct {
	lock      sync.Mutex
	listeners []func()
	fired     bool
}

// OnEnd registers a listener which fires when the iterator runs out of Records.
// Listeners registered after the end fire immediately.
func (el *EndListeners) OnEnd(onEnd func()) {
	el.lock.Lock()
	if el.fired {
		el.lock.Unlock()
		onEnd()
		return
	}
	el.listeners = append(el.listeners, onEnd)
	el.lock.Unlock()
}

// FireEnd calls every registered listener, once
func (el *EndListeners) FireEnd() {
	el.lock.Lock()
	listeners := el.listeners
	el.listeners = nil
	el.fired = true
	el.lock.Unlock()
	for _, l := range listeners {
		l()
	}
}
