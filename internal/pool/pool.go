// Package pool resolves the NN runtime's opaque memory-pool handles into
// raw addressable buffers. Pool bookkeeping (mapping shared memory, hidl
// plumbing) happens in the hosting driver; this package only carves tensor
// buffers out of already-mapped blocks.
package pool

import (
	"fmt"

	"github.com/SheriZhang/android-nn-driver/internal/tensor"
)

// RunTimePool is one shared-memory block of an inference request, from
// which tensor buffers are carved by offset.
type RunTimePool struct {
	buffer []byte
}

// New wraps an already-mapped memory block as a pool.
func New(buffer []byte) RunTimePool {
	return RunTimePool{buffer: buffer}
}

// Size returns the pool's byte size.
func (p RunTimePool) Size() int {
	return len(p.buffer)
}

// DataLocation addresses a byte range inside one pool of a request.
type DataLocation struct {
	PoolIndex uint32
	Offset    uint32
	Length    uint32
}

// MemoryFromPool resolves location into the raw bytes it addresses. The
// range is bounds-checked against the pool rather than trusted: a bad pool
// index or a range past the end of the block is an error, never a
// mis-sliced buffer.
func MemoryFromPool(location DataLocation, pools []RunTimePool) ([]byte, error) {
	if int(location.PoolIndex) >= len(pools) {
		return nil, fmt.Errorf("pool index %d out of range: request has %d pool(s)",
			location.PoolIndex, len(pools))
	}

	buffer := pools[location.PoolIndex].buffer
	end := uint64(location.Offset) + uint64(location.Length)
	if end > uint64(len(buffer)) {
		return nil, fmt.Errorf("location [%d:%d) exceeds pool %d size %d",
			location.Offset, end, location.PoolIndex, len(buffer))
	}

	return buffer[location.Offset:end:end], nil
}

// ViewFromPool resolves location and wraps the memory as a typed tensor
// view described by info. The view borrows the pool's memory; the pool
// owns its lifetime.
func ViewFromPool(info tensor.Info, location DataLocation, pools []RunTimePool) (*tensor.View, error) {
	memory, err := MemoryFromPool(location, pools)
	if err != nil {
		return nil, err
	}
	return tensor.NewView(info, memory)
}
