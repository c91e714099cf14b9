// internal/types/types.go
package types

// EntityID — идентификатор сущности в сцене. Ноль означает «нет сущности».
type EntityID uint64

// NoEntity — пустой идентификатор (например, родитель корневого узла).
const NoEntity EntityID = 0
