package vmath

import "fmt"

// Buffer is the single contiguous allocation behind an owning vector or
// matrix. Views created over an owner reference the same Buffer, so a write
// through any of them is visible through all of them.
//
// A Buffer stays valid until its owner calls Release. After that every
// access through the owner or through any view over it panics.
type Buffer[T Element] struct {
	data     []T
	released bool
	views    int
}

func newBuffer[T Element](n int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, n)}
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// IsReleased reports whether the owner has released this buffer.
func (b *Buffer[T]) IsReleased() bool {
	return b.released
}

// Views returns how many views have been created over this buffer.
func (b *Buffer[T]) Views() int {
	return b.views
}

// window returns the live sub-slice [off, off+n). The capacity is clipped
// so an append on the result can never write into neighbouring elements.
func (b *Buffer[T]) window(off, n int) []T {
	if b.released {
		panic(fmt.Sprintf("vmath: access to released %d-element buffer (window %d+%d)", len(b.data), off, n))
	}
	return b.data[off : off+n : off+n]
}

func (b *Buffer[T]) release() {
	if b.released {
		return
	}
	if globalDebug && b.views > 0 {
		debugWarnf("releasing %d-element buffer with %d view(s) created over it", len(b.data), b.views)
	}
	b.released = true
}

// slot is the storage handle embedded in every vector and matrix: a buffer
// plus the offset of this value's window inside it.
type slot[T Element] struct {
	buf  *Buffer[T]
	off  int
	view bool
}

func owningSlot[T Element](n int) slot[T] {
	return slot[T]{buf: newBuffer[T](n)}
}

func viewSlot[T Element](buf *Buffer[T], off int) slot[T] {
	buf.views++
	return slot[T]{buf: buf, off: off, view: true}
}

// Buffer returns the buffer this value reads and writes. For a view it is
// the owner's buffer.
func (s *slot[T]) Buffer() *Buffer[T] {
	return s.buf
}

// IsView reports whether this value is a window into another value's
// buffer rather than the owner of its own.
func (s *slot[T]) IsView() bool {
	return s.view
}

// Offset returns the index of this value's first element inside Buffer.
func (s *slot[T]) Offset() int {
	return s.off
}

// Release marks the owned buffer dead. Any later access through the owner
// or through views over it panics. Release on a view does nothing: views
// never own memory and go away with their owner.
func (s *slot[T]) Release() {
	if s.view {
		return
	}
	s.buf.release()
}

// Viewable is anything a vector view can be created over: every vector and
// matrix type.
type Viewable[T Element] interface {
	Buffer() *Buffer[T]
	Elements() []T
	viewBase() (buf *Buffer[T], off, n int)
}

// checkView validates a view window against its parent. An out-of-range
// window is a programming error.
func checkView[T Element](buf *Buffer[T], parentLen, offset, n int, kind string) {
	if offset < 0 || offset+n > parentLen {
		panic(fmt.Sprintf("vmath: %s view at offset %d exceeds parent length %d", kind, offset, parentLen))
	}
	if globalDebug {
		debugCheckReleased(buf, "create "+kind+" view")
	}
}

// NewVec2View returns a 2-component view over parent starting at offset
// (relative to parent's own window).
func NewVec2View[T Element](parent Viewable[T], offset int) *Vec2[T] {
	buf, off, n := parent.viewBase()
	checkView(buf, n, offset, 2, "vec2"+suffix[T]())
	return newVec2View(buf, off+offset)
}

// NewVec3View returns a 3-component view over parent starting at offset.
func NewVec3View[T Element](parent Viewable[T], offset int) *Vec3[T] {
	buf, off, n := parent.viewBase()
	checkView(buf, n, offset, 3, "vec3"+suffix[T]())
	return newVec3View(buf, off+offset)
}

// NewVec4View returns a 4-component view over parent starting at offset.
func NewVec4View[T Element](parent Viewable[T], offset int) *Vec4[T] {
	buf, off, n := parent.viewBase()
	checkView(buf, n, offset, 4, "vec4"+suffix[T]())
	return newVec4View(buf, off+offset)
}
