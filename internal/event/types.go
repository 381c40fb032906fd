// internal/event/types.go
package event

const (
	MarkersSpawned EventType = "MarkersSpawned" // Маркеры созданы, см. Event.Markers
	CycleCompleted EventType = "CycleCompleted" // Фаза обернулась, см. Event.Cycle
	Paused         EventType = "Paused"
	Resumed        EventType = "Resumed"
)
