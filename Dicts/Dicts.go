package Dicts

// Dict is a dictionary over a totally ordered set of unique elements.
// Receivers that have A bool as A second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty dictionary returns (x T, false); the value of x is then undefined
// and shouldn't be used.
// Neighbor queries (Predecessor, Successor and their Has variants) are
// defined for any element of the ordered domain, whether or not it is
// currently stored.
// If an implementation didn't specify anything special, the implemented
// receivers follow the behaviors defined here and run iteratively.
type Dict[T any] interface {
	//Insert v into the Dict. Returns true iff v wasn't present before.
	Insert(v T) bool
	//Remove v from the Dict. Returns true iff v was present.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the dictionary.
	Minimum() (T, bool)
	//Maximum element of the dictionary.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//HasPredecessor returns whether some element is less than v.
	HasPredecessor(v T) bool
	//HasSuccessor returns whether some element is greater than v.
	HasSuccessor(v T) bool
	//Empty returns whether the dictionary holds no elements.
	Empty() bool
	//Size of the dictionary.
	Size() uint
	//InOrder returns A closure function f acting like an iterator. f
	//gives the elements in ascending order. Calling f is like calling
	//"Next()" of iterators: val, valid=f(). val is meaningful only if
	//valid is true; valid can't turn true after it first became false.
	//The dictionary must not be modified during the iteration of f,
	//otherwise f can give stale or wrong results. There will be no panic
	//if such cases happen, so design the algorithm with this in mind;
	//use a fail-fast cursor when modification has to be detected.
	InOrder() func() (T, bool)
	//Corrupt returns whether the dictionary has corrupt structures, when
	//the values or links at some node violate the properties of that
	//specific implementation. This is to be distinguished from whether
	//the structure is balanced or not.
	Corrupt() bool
}
