// internal/ui/lifecycle.go
package ui

// Lifecycle вызывает Start у компонентов ровно один раз, когда хост их
// активирует (обычно в начале кадра).
type Lifecycle struct {
	pending []*ImageBorder
	active  []*ImageBorder
}

// Add ставит компонент в очередь на активацию
func (l *Lifecycle) Add(b *ImageBorder) {
	l.pending = append(l.pending, b)
}

// Activate запускает все ожидающие компоненты и возвращает их число.
func (l *Lifecycle) Activate() int {
	n := len(l.pending)
	for _, b := range l.pending {
		b.Start()
		l.active = append(l.active, b)
	}
	l.pending = nil
	return n
}

// Active возвращает уже запущенные компоненты в порядке запуска
func (l *Lifecycle) Active() []*ImageBorder {
	return l.active
}

// Pending — сколько компонентов ждут активации
func (l *Lifecycle) Pending() int {
	return len(l.pending)
}

// Remove убирает компонент из обоих списков. Узлы сцены не трогает.
func (l *Lifecycle) Remove(b *ImageBorder) {
	l.pending = without(l.pending, b)
	l.active = without(l.active, b)
}

func without(list []*ImageBorder, b *ImageBorder) []*ImageBorder {
	out := list[:0]
	for _, v := range list {
		if v != b {
			out = append(out, v)
		}
	}
	return out
}
