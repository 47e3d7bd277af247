package realtime

import "sync"

// DefaultBuffer - размер буфера канала подписчика по умолчанию
const DefaultBuffer = 64

// Broadcaster рассылает события всем подписчикам, не блокируясь на медленных
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[chan T]struct{}
	buffer int
	closed bool
}

func NewBroadcaster[T any](buffer int) *Broadcaster[T] {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Broadcaster[T]{
		subs:   make(map[chan T]struct{}),
		buffer: buffer,
	}
}

// Subscribe - новый подписчик. После Close возвращает уже закрытый канал
func (b *Broadcaster[T]) Subscribe() chan T {
	ch := make(chan T, b.buffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (b *Broadcaster[T]) Unsubscribe(ch chan T) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish - отправка события всем. Отстающий подписчик пропускает событие
func (b *Broadcaster[T]) Publish(event T) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
	b.mu.Unlock()
}

// PublishEvict - отправка, которая не теряет событие: у отстающего подписчика
// из буфера выбрасывается самое старое событие
func (b *Broadcaster[T]) PublishEvict(event T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		for sent := false; !sent; {
			select {
			case ch <- event:
				sent = true
			default:
				// Буфер полон: освобождаем место. Подписчик мог успеть прочитать сам
				select {
				case <-ch:
				default:
				}
			}
		}
	}
}

// Len - число подписчиков
func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close закрывает все каналы подписчиков
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}
