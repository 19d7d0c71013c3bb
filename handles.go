package textseg

import "sync"

// Handle identifies an iterator owned by the package on behalf of a
// foreign caller that cannot hold Go pointers. Handles are created by
// [NewIteratorHandle], driven by [HandleNext], and released by
// [DestroyHandle]. Using a handle after destroying it is a caller
// fault and panics.
type Handle uint64

var handleRegistry = struct {
	sync.Mutex
	next  Handle
	items map[Handle]*BreakIterator
}{
	items: map[Handle]*BreakIterator{},
}

// NewIteratorHandle segments buf with seg in the given encoding and
// registers the resulting iterator under a fresh handle. The buffer is
// not copied; it must stay alive and unmodified until the handle is
// destroyed.
func NewIteratorHandle(seg *Segmenter, buf []byte, enc Encoding) Result[Handle] {
	if seg == nil {
		return Fail[Handle](ErrInvalidConfiguration)
	}
	it, err := seg.Segment(buf, enc)
	if err != nil {
		return Fail[Handle](err)
	}

	r := &handleRegistry
	r.Lock()
	defer r.Unlock()
	r.next++
	r.items[r.next] = it
	return Ok(r.next)
}

// HandleNext advances the iterator behind h and returns the next
// boundary offset, or [Done] once exhausted.
func HandleNext(h Handle) int32 {
	r := &handleRegistry
	r.Lock()
	it, ok := r.items[h]
	r.Unlock()
	if !ok {
		panic("textseg: HandleNext on destroyed or unknown handle")
	}
	return it.Next()
}

// DestroyHandle releases the iterator behind h. Destroying a handle
// twice panics.
func DestroyHandle(h Handle) {
	r := &handleRegistry
	r.Lock()
	defer r.Unlock()
	if _, ok := r.items[h]; !ok {
		panic("textseg: DestroyHandle on destroyed or unknown handle")
	}
	delete(r.items, h)
}
