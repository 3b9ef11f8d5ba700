package pipeline

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FromSliceToSlice(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, []int{1, 2, 3}, ToSlice(ctx, FromSlice(ctx, []int{1, 2, 3})))
	assert.Equal(t, []int{}, ToSlice(ctx, FromSlice(ctx, []int{})))
}

func Test_Lines(t *testing.T) {
	ctx := context.Background()
	lines, errFn := Lines(ctx, DefaultBufferSize, strings.NewReader("1\n\n  2.5 \r\n-3\n"))
	assert.Equal(t, []string{"1", "2.5", "-3"}, ToSlice(ctx, lines))
	require.NoError(t, errFn())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func Test_LinesReadError(t *testing.T) {
	ctx := context.Background()
	lines, errFn := Lines(ctx, DefaultBufferSize, failingReader{})
	assert.Empty(t, ToSlice(ctx, lines))
	assert.EqualError(t, errFn(), "boom")
}

func Test_LinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// unbuffered and never read, so the only way out is the cancelled context
	_, errFn := Lines(ctx, 0, strings.NewReader("1\n2\n3\n"))
	assert.ErrorIs(t, errFn(), context.Canceled)
}

func Test_LinesTooLong(t *testing.T) {
	ctx := context.Background()
	input := "1\n" + strings.Repeat("9", bufio.MaxScanTokenSize+1) + "\n2\n"
	lines, errFn := Lines(ctx, DefaultBufferSize, strings.NewReader(input))
	assert.Equal(t, []string{"1"}, ToSlice(ctx, lines))
	assert.ErrorIs(t, errFn(), bufio.ErrTooLong)
}

func Test_LinesBuffer(t *testing.T) {
	ctx := context.Background()
	lines, errFn := Lines(ctx, 3, strings.NewReader("a\nb\nc\nd\n"))
	assert.Equal(t, 3, cap(lines))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ToSlice(ctx, lines))
	require.NoError(t, errFn())

	unbuffered, _ := Lines(ctx, -1, strings.NewReader(""))
	assert.Equal(t, 0, cap(unbuffered))
}

func Test_ParallelMapBuffer(t *testing.T) {
	ctx := context.Background()
	out := ParallelMap(ctx, 2, 5, FromSlice(ctx, []int{1, 2}), func(v int) int { return -v })
	assert.Equal(t, 5, cap(out))
	assert.Equal(t, []int{-1, -2}, ToSlice(ctx, out))
}

func Test_Map(t *testing.T) {
	ctx := context.Background()
	doubled := Map(ctx, FromSlice(ctx, []int{1, 2, 3}), func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, ToSlice(ctx, doubled))
}

func Test_ParallelMapKeepsOrder(t *testing.T) {
	ctx := context.Background()

	input := make([]int, 100)
	want := make([]int, 100)
	for i := range input {
		input[i] = i
		want[i] = i * i
	}

	squared := ParallelMap(ctx, 8, DefaultBufferSize, FromSlice(ctx, input), func(v int) int {
		// later items finish first
		time.Sleep(time.Duration(100-v) * time.Microsecond)
		return v * v
	})
	assert.Equal(t, want, ToSlice(ctx, squared))
}

func Test_ParallelMapZeroWorkers(t *testing.T) {
	ctx := context.Background()
	out := ParallelMap(ctx, 0, 0, FromSlice(ctx, []string{"a", "b"}), strings.ToUpper)
	assert.Equal(t, []string{"A", "B"}, ToSlice(ctx, out))
}

func Test_Take(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, []int{1, 2}, ToSlice(ctx, Take(ctx, 2, FromSlice(ctx, []int{1, 2, 3}))))
	assert.Equal(t, []int{1, 2, 3}, ToSlice(ctx, Take(ctx, 5, FromSlice(ctx, []int{1, 2, 3}))))
	assert.Equal(t, []int{}, ToSlice(ctx, Take(ctx, 0, FromSlice(ctx, []int{1, 2, 3}))))
}

func Test_OrDoneCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	never := make(chan int)
	out := OrDone(ctx, never)
	cancel()

	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream was not closed after cancel")
	}
}
