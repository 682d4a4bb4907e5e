// SPDX-License-Identifier: EPL-2.0

// Package seekbuf provides an in-memory io.ReadWriteSeeker for codecs that
// need to move around their input or patch headers after writing.
package seekbuf

import (
	"errors"
	"fmt"
	"io"
)

// ErrNegativeOffset is returned by Seek for positions before the start.
var ErrNegativeOffset = errors.New("seek to negative offset")

// Buffer is a byte slice with a cursor. The zero value is an empty buffer
// ready for use.
type Buffer struct {
	data []byte
	off  int64
}

// New returns a Buffer reading from data. The buffer takes ownership of data.
func New(data []byte) *Buffer {
	return &Buffer{data: data}
}

// FromReader loads everything r yields into a Buffer.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return New(data), nil
}

// Bytes returns the buffer contents.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the size of the buffer contents.
func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.off >= int64(len(b.data)) {
		return 0, io.EOF
	}

	n := copy(p, b.data[b.off:])
	b.off += int64(n)

	return n, nil
}

// Write stores p at the cursor, growing the buffer when needed. Writing past
// the end after a Seek fills the gap with zeros.
func (b *Buffer) Write(p []byte) (int, error) {
	end := b.off + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(b.data))))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}

	copy(b.data[b.off:end], p)
	b.off = end

	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64

	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.off + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if abs < 0 {
		return 0, ErrNegativeOffset
	}

	b.off = abs

	return abs, nil
}
