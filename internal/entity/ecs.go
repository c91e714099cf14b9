// internal/entity/ecs.go
package entity

import (
	"go-image-border/internal/component"
	"go-image-border/internal/types"
)

type ECS struct {
	NextID    types.EntityID
	Positions map[types.EntityID]*component.Position
	Nodes     map[types.EntityID]*component.Node
	Sprites   map[types.EntityID]*component.Sprite
	Graphics  map[types.EntityID]*component.Graphics
	Roots     []types.EntityID // Узлы верхнего уровня в порядке отрисовки
}

func NewECS() *ECS {
	return &ECS{
		NextID:    1,
		Positions: make(map[types.EntityID]*component.Position),
		Nodes:     make(map[types.EntityID]*component.Node),
		Sprites:   make(map[types.EntityID]*component.Sprite),
		Graphics:  make(map[types.EntityID]*component.Graphics),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// NewNode создаёт узел с позицией (0, 0) и центрированным якорем.
// Если parent == types.NoEntity, узел становится корневым.
func (ecs *ECS) NewNode(name string, parent types.EntityID) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{}
	ecs.Nodes[id] = &component.Node{Name: name, AnchorX: 0.5, AnchorY: 0.5}
	if parent == types.NoEntity {
		ecs.Roots = append(ecs.Roots, id)
	} else {
		ecs.AddChild(parent, id)
	}
	return id
}

// AddChild добавляет child последним ребёнком parent.
// Если child уже где-то висел, он сначала отцепляется.
func (ecs *ECS) AddChild(parent, child types.EntityID) {
	p, ok := ecs.Nodes[parent]
	if !ok {
		return
	}
	c, ok := ecs.Nodes[child]
	if !ok {
		return
	}
	ecs.detach(child)
	c.Parent = parent
	p.Children = append(p.Children, child)
}

// Children возвращает копию списка детей узла.
func (ecs *ECS) Children(id types.EntityID) []types.EntityID {
	n, ok := ecs.Nodes[id]
	if !ok {
		return nil
	}
	out := make([]types.EntityID, len(n.Children))
	copy(out, n.Children)
	return out
}

// FindChild ищет прямого ребёнка по имени.
func (ecs *ECS) FindChild(id types.EntityID, name string) (types.EntityID, bool) {
	n, ok := ecs.Nodes[id]
	if !ok {
		return types.NoEntity, false
	}
	for _, child := range n.Children {
		if cn, ok := ecs.Nodes[child]; ok && cn.Name == name {
			return child, true
		}
	}
	return types.NoEntity, false
}

// RemoveAllChildren уничтожает всех потомков узла вместе с их компонентами.
func (ecs *ECS) RemoveAllChildren(id types.EntityID) {
	n, ok := ecs.Nodes[id]
	if !ok {
		return
	}
	children := n.Children
	n.Children = nil
	for _, child := range children {
		if cn, ok := ecs.Nodes[child]; ok {
			cn.Parent = types.NoEntity
		}
		ecs.destroy(child)
	}
}

// DestroyEntity удаляет узел из дерева и уничтожает его вместе с потомками.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	ecs.detach(id)
	ecs.destroy(id)
}

func (ecs *ECS) destroy(id types.EntityID) {
	if n, ok := ecs.Nodes[id]; ok {
		for _, child := range n.Children {
			ecs.destroy(child)
		}
	}
	delete(ecs.Positions, id)
	delete(ecs.Nodes, id)
	delete(ecs.Sprites, id)
	delete(ecs.Graphics, id)
}

// detach убирает id из списка детей родителя (или из корней).
func (ecs *ECS) detach(id types.EntityID) {
	n, ok := ecs.Nodes[id]
	if !ok {
		return
	}
	if n.Parent == types.NoEntity {
		ecs.Roots = remove(ecs.Roots, id)
		return
	}
	if p, ok := ecs.Nodes[n.Parent]; ok {
		p.Children = remove(p.Children, id)
	}
	n.Parent = types.NoEntity
}

// WorldPosition складывает позиции узла и всех его предков.
func (ecs *ECS) WorldPosition(id types.EntityID) (float64, float64) {
	var x, y float64
	for id != types.NoEntity {
		if pos, ok := ecs.Positions[id]; ok {
			x += pos.X
			y += pos.Y
		}
		n, ok := ecs.Nodes[id]
		if !ok {
			break
		}
		id = n.Parent
	}
	return x, y
}

// Walk обходит дерево в глубину в порядке отрисовки: родитель раньше детей,
// дети в порядке добавления.
func (ecs *ECS) Walk(fn func(id types.EntityID)) {
	for _, root := range ecs.Roots {
		ecs.walk(root, fn)
	}
}

func (ecs *ECS) walk(id types.EntityID, fn func(id types.EntityID)) {
	n, ok := ecs.Nodes[id]
	if !ok {
		return
	}
	fn(id)
	for _, child := range n.Children {
		ecs.walk(child, fn)
	}
}

func remove(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
