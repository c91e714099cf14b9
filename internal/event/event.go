// internal/event/event.go
package event

// EventType — имя события сцены
type EventType string

// Event — то, что получают подписчики. Data зависит от Type (см. types.go).
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc — обычная функция в роли Listener
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription — квитанция подписки, по ней и отписываются.
// Так работает и для ListenerFunc, которые нельзя сравнить.
type Subscription struct {
	Type EventType
	id   uint64
}

type subscriber struct {
	id       uint64
	listener Listener
}

// Dispatcher раздаёт события пересборок и перезагрузок. Всё синхронно:
// подписчики вызываются внутри Dispatch, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    uint64
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe добавляет подписчика на eventType
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return Subscription{Type: eventType, id: d.nextID}
}

// Unsubscribe снимает подписку. Повторный вызов ничего не делает.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	subs := d.listeners[sub.Type]
	for i, s := range subs {
		if s.id == sub.id {
			d.listeners[sub.Type] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch вызывает подписчиков event.Type. У nil-диспетчера (компонент без
// WithDispatcher) ничего не происходит.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}

// Len — сколько подписчиков у eventType
func (d *Dispatcher) Len(eventType EventType) int {
	if d == nil {
		return 0
	}
	return len(d.listeners[eventType])
}
