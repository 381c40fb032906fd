// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-circuit-pulse/internal/component"
	"go-circuit-pulse/internal/types"
)

type ECS struct {
	GameTime    float64 // секунды с запуска, только растёт
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Renderables map[types.EntityID]*component.Renderable
	Markers     map[types.EntityID]*component.Marker
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Markers:     make(map[types.EntityID]*component.Marker),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// MarkerIDs возвращает маркеры в порядке создания
func (ecs *ECS) MarkerIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Markers))
	for id := range ecs.Markers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear удаляет все сущности, часы продолжают идти
func (ecs *ECS) Clear() {
	clear(ecs.Positions)
	clear(ecs.Renderables)
	clear(ecs.Markers)
}
