// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Tick uint64      // tick of the run that produced the event
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher — диспетчер событий. Доставка синхронная, в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]subscription
	all       []subscription
	nextID    int
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие. Возвращает функцию отписки.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) func() {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() {
		d.listeners[eventType] = without(d.listeners[eventType], id)
	}
}

// SubscribeAll — подписка на все события
func (d *Dispatcher) SubscribeAll(listener Listener) func() {
	d.nextID++
	id := d.nextID
	d.all = append(d.all, subscription{id: id, listener: listener})
	return func() {
		d.all = without(d.all, id)
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
	for _, s := range d.all {
		s.listener.OnEvent(event)
	}
}

func without(subs []subscription, id int) []subscription {
	out := subs[:0:0]
	for _, s := range subs {
		if s.id != id {
			out = append(out, s)
		}
	}
	return out
}
