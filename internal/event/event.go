// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // снимок состояния редактора
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher — синхронный диспетчер: Dispatch возвращается только после того,
// как все подписчики отработали.
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    int
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe registers listener for eventType and returns an id for Unsubscribe.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) int {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: d.nextID, listener: listener})
	return d.nextID
}

// SubscribeAll registers listener for every editor event type.
func (d *Dispatcher) SubscribeAll(listener Listener) []int {
	ids := make([]int, 0, len(EditorEvents))
	for _, t := range EditorEvents {
		ids = append(ids, d.Subscribe(t, listener))
	}
	return ids
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, id int) {
	subs, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
}
