package entity

// Identifiable is implemented by entities that can sit in a pending queue.
type Identifiable interface {
	EntityID() string
}

// PendingQueue is the list of items awaiting an approve/reject decision.
type PendingQueue[T Identifiable] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewPendingQueue wraps a freshly fetched pending list.
func NewPendingQueue[T Identifiable](items []T) *PendingQueue[T] {
	if items == nil {
		items = []T{}
	}

	return &PendingQueue[T]{Items: items, Count: len(items)}
}

// Contains reports whether id is waiting for a decision.
func (q *PendingQueue[T]) Contains(id string) bool {
	for _, item := range q.Items {
		if item.EntityID() == id {
			return true
		}
	}

	return false
}

// Remove drops exactly the item with id and decrements Count by one.
func (q *PendingQueue[T]) Remove(id string) bool {
	for i, item := range q.Items {
		if item.EntityID() != id {
			continue
		}

		q.Items = append(q.Items[:i:i], q.Items[i+1:]...)
		q.Count--

		return true
	}

	return false
}
