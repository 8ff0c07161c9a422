package cpu

// maxInstrOps bounds the number of micro-operations a single instruction may
// queue. The longest defined instructions need five; one more slot absorbs a
// page-cross stall injected mid-flight.
const maxInstrOps = 6

// opQueue is a fixed-capacity deque of pending micro-operations. The CPU
// drains it from the front, one entry per cycle, and micro-operations may
// push a stall back onto the front to model an extra hardware cycle.
type opQueue struct {
	ops  [maxInstrOps + 2]microOp
	head int
	size int
}

func (q *opQueue) len() int {
	return q.size
}

func (q *opQueue) reset() {
	for i := range q.ops {
		q.ops[i] = nil
	}
	q.head = 0
	q.size = 0
}

func (q *opQueue) pushBack(op microOp) {
	q.ops[(q.head+q.size)%len(q.ops)] = op
	q.size++
}

func (q *opQueue) pushFront(op microOp) {
	q.head = (q.head + len(q.ops) - 1) % len(q.ops)
	q.ops[q.head] = op
	q.size++
}

func (q *opQueue) popFront() (microOp, bool) {
	if q.size == 0 {
		return nil, false
	}
	op := q.ops[q.head]
	q.ops[q.head] = nil
	q.head = (q.head + 1) % len(q.ops)
	q.size--
	return op, true
}
