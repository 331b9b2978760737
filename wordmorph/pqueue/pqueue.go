// Package pqueue provides an indexed binary min-heap over dense integer
// identifiers. The heap does not store priorities: ordering is entirely
// defined by a caller-supplied comparator, which typically closes over
// external state such as a slice of tentative distances. When that state
// changes for an identifier, Fix restores the heap ordering in O(log n)
// thanks to positional tracking of every identifier.
package pqueue

// Queue is an indexed priority queue over identifiers in [0, capacity).
type Queue struct {
	less func(a, b int) bool
	heap []int // heap[i] is the id at heap position i
	pos  []int // pos[id] is the heap position of id, or -1 if absent
}

// New returns an empty queue for identifiers in [0, capacity), ordered by
// the given comparator: Pop always returns the id that less ranks first.
func New(capacity int, less func(a, b int) bool) *Queue {
	q := &Queue{
		less: less,
		heap: make([]int, 0, capacity),
		pos:  make([]int, capacity),
	}
	for id := range q.pos {
		q.pos[id] = -1
	}
	return q
}

// Size returns the number of identifiers in the queue.
func (q *Queue) Size() int {
	return len(q.heap)
}

// Empty returns true if the queue contains no identifier.
func (q *Queue) Empty() bool {
	return len(q.heap) == 0
}

// Contains returns true if id is currently in the queue.
func (q *Queue) Contains(id int) bool {
	return 0 <= id && id < len(q.pos) && q.pos[id] != -1
}

// Push adds id to the queue. Pushing an id that is already in the queue is
// equivalent to calling Fix on it. The id must be in [0, capacity);
// otherwise, the function will panic.
func (q *Queue) Push(id int) {
	if q.pos[id] != -1 {
		q.Fix(id)
		return
	}
	q.heap = append(q.heap, id)
	q.pos[id] = len(q.heap) - 1
	q.up(len(q.heap) - 1)
}

// Pop removes and returns the id that the comparator ranks first. It returns
// false if the queue is empty.
func (q *Queue) Pop() (int, bool) {
	if len(q.heap) == 0 {
		return -1, false
	}
	top := q.heap[0]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.heap = q.heap[:last]
	q.pos[top] = -1
	if last > 0 {
		q.down(0)
	}
	return top, true
}

// Fix restores the heap ordering after id's externally tracked priority has
// changed. Calling Fix on an id that is not in the queue is a no-op.
func (q *Queue) Fix(id int) {
	if !q.Contains(id) {
		return
	}
	i := q.pos[id]
	if !q.up(i) {
		q.down(i)
	}
}

func (q *Queue) up(i int) bool {
	moved := false
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.heap[i], q.heap[parent]) {
			break
		}
		q.swap(i, parent)
		i = parent
		moved = true
	}
	return moved
}

func (q *Queue) down(i int) {
	n := len(q.heap)
	for {
		child := 2*i + 1
		if child >= n {
			return
		}
		if r := child + 1; r < n && q.less(q.heap[r], q.heap[child]) {
			child = r
		}
		if !q.less(q.heap[child], q.heap[i]) {
			return
		}
		q.swap(i, child)
		i = child
	}
}

func (q *Queue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}
