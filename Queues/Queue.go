package Queues

// Queue is a FIFO container. Pop on an empty Queue returns an *EmptyQueueError
// and Peek returns the zero value.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a growable ring. Not safe for concurrent use.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing array to the number of queued items.
	Shrink()
	//Clear drops every item, keeping the backing array.
	Clear()
	//Size is the number of queued items.
	Size() uint
}

// EmptyQueueError is returned by Pop when there is nothing to pop.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
