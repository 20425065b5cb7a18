package ndarray

// cursor is the traversal state shared by NDIter and ConstNDIter:
// a non-owning array pointer and a flat position in [0, size].
type cursor[T any, I Index] struct {
	arr *Array[T, I]
	pos int
}

func (c cursor[T, I]) equal(o cursor[T, I]) bool {
	return c.arr == o.arr && c.pos == o.pos
}

func (c cursor[T, I]) index() I {
	return Unflat(c.arr.shape, c.pos)
}

func (c cursor[T, I]) done() bool {
	return c.arr == nil || c.pos >= c.arr.size
}

// NDIter is a forward iterator over an array that can report the
// coordinate of the element it points at.
//
// NDIter is forward-only: there is no Prev or Advance, although the
// storage would allow it.
type NDIter[T any, I Index] struct {
	c cursor[T, I]
}

// Ptr returns a pointer to the current element.
func (it NDIter[T, I]) Ptr() *T {
	return &it.c.arr.data[it.c.pos]
}

// Value returns the current element.
func (it NDIter[T, I]) Value() T {
	return it.c.arr.data[it.c.pos]
}

// Index returns the coordinate of the current element.
// It must not be called at the end position.
func (it NDIter[T, I]) Index() I {
	return it.c.index()
}

// Next advances to the following element.
func (it *NDIter[T, I]) Next() {
	it.c.pos++
}

// Done reports whether the iterator is at the end position.
func (it NDIter[T, I]) Done() bool {
	return it.c.done()
}

// Equal reports whether both iterators refer to the same array and position.
func (it NDIter[T, I]) Equal(o NDIter[T, I]) bool {
	return it.c.equal(o.c)
}

// ConstNDIter is the read-only counterpart of NDIter.
type ConstNDIter[T any, I Index] struct {
	c cursor[T, I]
}

// Value returns the current element.
func (it ConstNDIter[T, I]) Value() T {
	return it.c.arr.data[it.c.pos]
}

// Index returns the coordinate of the current element.
// It must not be called at the end position.
func (it ConstNDIter[T, I]) Index() I {
	return it.c.index()
}

// Next advances to the following element.
func (it *ConstNDIter[T, I]) Next() {
	it.c.pos++
}

// Done reports whether the iterator is at the end position.
func (it ConstNDIter[T, I]) Done() bool {
	return it.c.done()
}

// Equal reports whether both iterators refer to the same array and position.
func (it ConstNDIter[T, I]) Equal(o ConstNDIter[T, I]) bool {
	return it.c.equal(o.c)
}

// NDBegin returns an ND iterator at the first element.
func (a *Array[T, I]) NDBegin() NDIter[T, I] {
	return NDIter[T, I]{c: cursor[T, I]{arr: a, pos: 0}}
}

// NDEnd returns an ND iterator at the end position.
func (a *Array[T, I]) NDEnd() NDIter[T, I] {
	return NDIter[T, I]{c: cursor[T, I]{arr: a, pos: a.size}}
}

// NDCBegin returns a read-only ND iterator at the first element.
func (a *Array[T, I]) NDCBegin() ConstNDIter[T, I] {
	return ConstNDIter[T, I]{c: cursor[T, I]{arr: a, pos: 0}}
}

// NDCEnd returns a read-only ND iterator at the end position.
func (a *Array[T, I]) NDCEnd() ConstNDIter[T, I] {
	return ConstNDIter[T, I]{c: cursor[T, I]{arr: a, pos: a.size}}
}
