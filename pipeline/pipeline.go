package pipeline

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"

	"github.com/sourcegraph/conc/stream"
)

// DefaultBufferSize is the channel capacity of stages that take no explicit
// buffer.
const DefaultBufferSize = 8

func FromSlice[T any](ctx context.Context, items []T) <-chan T {
	outputStream := make(chan T, DefaultBufferSize)
	go func() {
		defer close(outputStream)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case outputStream <- item:
			}
		}
	}()

	return outputStream
}

// Lines emits the non-blank lines of r with surrounding space trimmed on a
// channel holding up to buffer lines. The returned function reports the read
// error, if any, once the stream is closed.
func Lines(ctx context.Context, buffer int, r io.Reader) (<-chan string, func() error) {
	outputStream := make(chan string, max(buffer, 0))
	var scanErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(outputStream)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case <-ctx.Done():
				scanErr = ctx.Err()
				return
			case outputStream <- line:
			}
		}
		scanErr = scanner.Err()
	}()

	return outputStream, func() error {
		<-done
		return scanErr
	}
}

func Map[T, U any](ctx context.Context, inputStream <-chan T, f func(T) U) <-chan U {
	outputStream := make(chan U, DefaultBufferSize)
	go func() {
		defer close(outputStream)
		for item := range OrDone(ctx, inputStream) {
			select {
			case <-ctx.Done():
				return
			case outputStream <- f(item):
			}
		}
	}()

	return outputStream
}

// ParallelMap applies f on up to workers goroutines, one per CPU when workers
// is not positive. Results come out in input order on a channel holding up to
// buffer items.
func ParallelMap[T, U any](ctx context.Context, workers, buffer int, inputStream <-chan T, f func(T) U) <-chan U {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	outputStream := make(chan U, max(buffer, 0))
	go func() {
		defer close(outputStream)

		s := stream.New().WithMaxGoroutines(workers)
		for item := range OrDone(ctx, inputStream) {
			s.Go(func() stream.Callback {
				result := f(item)
				return func() {
					select {
					case <-ctx.Done():
					case outputStream <- result:
					}
				}
			})
		}
		s.Wait()
	}()

	return outputStream
}

func Take[T any](ctx context.Context, n uint, inputStream <-chan T) <-chan T {
	outputStream := make(chan T, DefaultBufferSize)
	go func() {
		defer close(outputStream)

		if n == 0 {
			return
		}

		i := uint(0)
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-inputStream:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case outputStream <- item:
				}
				i++
				if n <= i {
					return
				}
			}
		}
	}()

	return outputStream
}

func ToSlice[T any](ctx context.Context, inputStream <-chan T) []T {
	output := make([]T, 0)
	for item := range OrDone(ctx, inputStream) {
		output = append(output, item)
	}

	return output
}

func OrDone[T any](ctx context.Context, inputStream <-chan T) <-chan T {
	outputStream := make(chan T, DefaultBufferSize)
	go func() {
		defer close(outputStream)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-inputStream:
				if !ok {
					return
				}

				select {
				case <-ctx.Done():
				case outputStream <- v:
				}
			}
		}
	}()

	return outputStream
}
