// internal/event/event.go
package event

//go:generate go tool mockgen -destination=./mocks/listener_mock.go -package=mocks . Listener

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Tick uint64
	Data interface{} // полезная нагрузка, см. types.go
}

// Listener - интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription - жетон подписки, по нему подписчик снимается.
type Subscription struct {
	eventType EventType
	id        uint64
}

type subscriber struct {
	id       uint64
	listener Listener
}

// Dispatcher - диспетчер событий. Вызывается синхронно из шага симуляции:
// подписчики выполняются в порядке подписки.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    uint64
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe - подписка на событие. Один и тот же listener можно подписать
// несколько раз, каждая подписка получает свой жетон.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return Subscription{eventType: eventType, id: d.nextID}
}

// Unsubscribe - отписка по жетону. Listener не сравнивается, поэтому
// ListenerFunc отписывается так же, как любой другой подписчик.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	if d == nil {
		return
	}
	listeners := d.listeners[sub.eventType]
	for i, s := range listeners {
		if s.id == sub.id {
			d.listeners[sub.eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, s := range listeners {
			s.listener.OnEvent(event)
		}
	}
}
