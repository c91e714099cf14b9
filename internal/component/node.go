// internal/component/node.go
package component

import "go-image-border/internal/types"

// Position — локальная позиция узла относительно родителя
type Position struct {
	X, Y float64
}

// Node — узел дерева сцены.
// Порядок Children задаёт порядок отрисовки: первый ребёнок рисуется первым.
type Node struct {
	Name     string
	Parent   types.EntityID
	Children []types.EntityID
	Width    float64 // Размер содержимого
	Height   float64
	AnchorX  float64 // 0.5, 0.5 — содержимое центрировано на позиции
	AnchorY  float64
}
