package queue

import "container/heap"

// TopK returns up to k items from values, selected by the highest by(v)
// score, in descending-score order. It keeps a size-bounded min-heap
// (Order=false pops the smallest first) so it never holds more than k
// items at once, the same bounded-selection strategy the teacher's
// PriorityQueue was built for in nearest-neighbor search.
func TopK[T any](values []T, k int, by func(T) float64) []T {
	if k <= 0 || len(values) == 0 {
		return nil
	}

	pq := &PriorityQueue{Order: false}
	heap.Init(pq)
	for _, v := range values {
		score := by(v)
		if pq.Len() < k {
			heap.Push(pq, &PriorityQueueItem{Payload: v, Priority: score})
			continue
		}
		if score > pq.Items[0].Priority {
			heap.Pop(pq)
			heap.Push(pq, &PriorityQueueItem{Payload: v, Priority: score})
		}
	}

	out := make([]T, pq.Len())
	for i := len(out) - 1; i >= 0; i-- {
		item := heap.Pop(pq).(*PriorityQueueItem)
		out[i] = item.Payload.(T)
	}
	return out
}
