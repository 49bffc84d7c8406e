/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package future provides a one-shot value shared between a producer and any number of waiting
// consumers.
package future

import (
	"context"
	"sync"
)

// Value is a single-write future: the producer resolves it exactly once with Set, consumers block
// on Await until the value is available. Awaiting an already-resolved Value never blocks, so it
// also serves as a completion milestone.
type Value struct {
	done chan struct{}
	once sync.Once

	// Written once before done is closed, read only after.
	value interface{}
	err   error
}

// NewValue creates an unresolved Value.
func NewValue() *Value {
	return &Value{
		done: make(chan struct{}),
	}
}

// Set resolves the future with a value or an error and wakes every waiting Await. It returns false
// when the future was already resolved; the later write is discarded.
func (v *Value) Set(value interface{}, err error) bool {
	set := false
	v.once.Do(func() {
		v.value = value
		v.err = err
		set = true
		close(v.done)
	})
	return set
}

// Await blocks until the future is resolved or ctx is cancelled. On cancellation it returns the
// context error.
func (v *Value) Await(ctx context.Context) (interface{}, error) {
	select {
	case <-v.done:
		return v.value, v.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Ready reports whether the future has been resolved.
func (v *Value) Ready() bool {
	select {
	case <-v.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the future is resolved.
func (v *Value) Done() <-chan struct{} {
	return v.done
}
