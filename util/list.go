package util

//*******************************************
// list
//*******************************************

// Growable slice with value semantics for reads and pointer semantics for appends.
type List[T any] []T

func NewList[T any](cap int) List[T] {
	return make([]T, 0, cap)
}

func (self *List[T]) Add(value T) {
	*self = append(*self, value)
}
func (self List[T]) Get(index int) T {
	return self[index]
}
func (self List[T]) Set(index int, value T) {
	self[index] = value
}
func (self List[T]) Length() int {
	return len(self)
}

// Removes the item at index, keeps the order of the remaining items.
func (self *List[T]) Remove(index int) {
	*self = append((*self)[:index], (*self)[index+1:]...)
}
func (self List[T]) Last() T {
	return self[len(self)-1]
}

//*******************************************
// array
//*******************************************

// Fixed size slice.
type Array[T any] []T

func NewArray[T any](size int) Array[T] {
	return make([]T, size)
}

func (self Array[T]) Get(index int) T {
	return self[index]
}
func (self Array[T]) Set(index int, value T) {
	self[index] = value
}
func (self Array[T]) Length() int {
	return len(self)
}

// Creates an array of size filled with value.
func Fill[T any](size int, value T) Array[T] {
	arr := NewArray[T](size)
	for i := range arr {
		arr[i] = value
	}
	return arr
}
