package Dicts

// Entry describes one completed public operation: its name, its argument
// when it took one (nil otherwise), and the element comparisons it spent.
type Entry[T any] struct {
	Op   string
	Arg  *T
	Cmps uint
}

// Recorder receives one Entry worth of data after each completed public
// operation on a tree it is attached to via RBTree.Trace. Implementations
// mustn't mutate the tree from inside Record.
type Recorder[T any] interface {
	Record(op string, arg *T, comparisons uint)
}

// OpLog is the provided Recorder: it accumulates entries in call order
// until drained. The zero value is ready to use.
type OpLog[T any] struct {
	entries []Entry[T]
}

func (u *OpLog[T]) Record(op string, arg *T, comparisons uint) {
	u.entries = append(u.entries, Entry[T]{op, arg, comparisons})
}

// Drain returns the accumulated entries in call order and resets the log.
func (u *OpLog[T]) Drain() []Entry[T] {
	e := u.entries
	u.entries = nil
	return e
}
