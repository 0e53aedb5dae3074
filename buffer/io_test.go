// File: buffer/io_test.go
// Author: momentics <momentics@gmail.com>

package buffer_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/buffer"
	"github.com/momentics/hioload-buf/fake"
)

func TestReadFromZeroMaxIsNoop(t *testing.T) {
	h := fake.NewHandle()
	h.Feed([]byte("pending"))

	b := buffer.New()
	defer b.Release()
	res := b.ReadFrom(h, 0)

	assert.True(t, res.OK())
	assert.Equal(t, 0, res.N)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, h.ReadCalls(), "no syscall for a zero-length read")
}

func TestReadFromCommitsExactlyBytesRead(t *testing.T) {
	h := fake.NewHandle()
	h.Feed([]byte("hello vectored world"))

	b := buffer.New()
	defer b.Release()
	res := b.ReadFrom(h, 1024)

	require.True(t, res.OK())
	assert.Equal(t, 20, res.N)
	assert.Equal(t, 20, b.Len())
	assert.Equal(t, "hello vectored world", b.String())
}

func TestReadFromPartialFillTruncatesTrailingView(t *testing.T) {
	h := fake.NewHandle()
	h.Feed(bytes.Repeat([]byte("x"), 50))
	h.ReadLimit = 50

	b := buffer.New()
	defer b.Release()
	// Reservation spans tail room plus a fresh slice; only part of it is
	// filled. The unwritten remainder must never surface.
	b.AddString("seed")
	res := b.ReadFrom(h, 64*1024)

	require.True(t, res.OK())
	assert.Equal(t, 50, res.N)
	assert.Equal(t, 54, b.Len())
	assert.Equal(t, "seed"+string(bytes.Repeat([]byte("x"), 50)), b.String())
}

func TestReadFromWouldBlockLeavesStreamUntouched(t *testing.T) {
	h := fake.NewHandle() // nothing queued

	b := buffer.NewString("stable")
	defer b.Release()
	res := b.ReadFrom(h, 4096)

	assert.True(t, res.WouldBlock())
	assert.Equal(t, "stable", b.String())
}

func TestReadFromErrorLeavesStreamUntouched(t *testing.T) {
	ioErr := errors.New("connection reset")
	h := fake.NewHandle()
	h.Feed([]byte("never seen"))
	h.FailNextRead(ioErr)

	b := buffer.New()
	defer b.Release()
	res := b.ReadFrom(h, 4096)

	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, ioErr)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestReadFromNoDataCommitsNothing(t *testing.T) {
	h := fake.NewHandle()
	h.Feed([]byte("x"))

	b := buffer.New()
	defer b.Release()
	require.Equal(t, 1, b.ReadFrom(h, 16).N)

	res := b.ReadFrom(h, 16)
	assert.True(t, res.WouldBlock(), "drained fake reports would-block; stream unchanged")
	assert.Equal(t, 1, b.Len())
}

func TestWriteToDrainsExactlyBytesWritten(t *testing.T) {
	h := fake.NewHandle()

	b := buffer.NewString("0123456789")
	defer b.Release()
	res := b.WriteTo(h)

	require.True(t, res.OK())
	assert.Equal(t, 10, res.N)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "0123456789", string(h.Written()))
}

func TestWriteToPartialWrite(t *testing.T) {
	h := fake.NewHandle()
	h.WriteLimit = 3

	b := fragmented(t, "abcde", "fghij")
	defer b.Release()

	res := b.WriteTo(h)
	require.True(t, res.OK())
	assert.Equal(t, 3, res.N)
	assert.Equal(t, 7, b.Len())
	assert.Equal(t, "defghij", b.String())

	// Next call resumes exactly where the partial write stopped.
	res = b.WriteTo(h)
	require.True(t, res.OK())
	assert.Equal(t, "abcdef", string(h.Written()))
}

func TestWriteToErrorDrainsNothing(t *testing.T) {
	ioErr := errors.New("broken pipe")
	h := fake.NewHandle()
	h.FailNextWrite(ioErr)

	b := buffer.NewString("keep me")
	defer b.Release()
	res := b.WriteTo(h)

	assert.ErrorIs(t, res.Err, ioErr)
	assert.Equal(t, "keep me", b.String())
}

func TestWriteToBoundsViewsPerCall(t *testing.T) {
	b := buffer.New()
	defer b.Release()
	var want bytes.Buffer
	for i := 0; i < 20; i++ {
		part := []byte{byte('a' + i)}
		want.Write(part)
		b.AddFragment(buffer.NewFragment(part, nil))
	}

	h := fake.NewHandle()
	res := b.WriteTo(h)
	require.True(t, res.OK())
	assert.Equal(t, 16, res.N, "a single call offers a bounded number of views")
	assert.Equal(t, 4, b.Len())

	res = b.WriteTo(h)
	require.True(t, res.OK())
	assert.Equal(t, want.String(), string(h.Written()))
	assert.Equal(t, 0, b.Len())
}

func TestEchoThroughBuffer(t *testing.T) {
	h := fake.NewHandle()
	payload := bytes.Repeat([]byte("the quick brown fox "), 1000)
	h.Feed(payload)
	h.ReadLimit = 1500
	h.WriteLimit = 700

	b := buffer.New()
	defer b.Release()
	for {
		res := b.ReadFrom(h, 4096)
		if res.WouldBlock() {
			break
		}
		require.True(t, res.OK())
		for b.Len() > 0 {
			w := b.WriteTo(h)
			require.True(t, w.OK())
		}
	}
	assert.Equal(t, payload, h.Written())
}
