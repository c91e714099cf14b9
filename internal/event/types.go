// internal/event/types.go
package event

const (
	ImageBorderRebuilt  EventType = "ImageBorderRebuilt"  // Компонент пересобрал своих детей
	DefinitionsReloaded EventType = "DefinitionsReloaded" // Файл определений перечитан
)
