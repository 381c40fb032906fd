// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие демо. Полезная нагрузка зависит от типа:
// Markers заполняется для MarkersSpawned, Cycle — для CycleCompleted.
type Event struct {
	Type    EventType
	Markers int
	Cycle   int
}

// Listener получает события, на которые подписан
type Listener interface {
	OnEvent(e Event)
}

// Dispatcher раздаёт события подписчикам в порядке подписки
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe подписывает listener сразу на несколько типов событий
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Dispatch вызывается синхронно, из того же кадра, что и источник события
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
