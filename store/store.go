package store

import (
	"sync"
)

// Each resource domain gets one process-wide store: the cached copy of
// the last-fetched data, a loading flag and the last error message. All
// reads and writes from the presentation layer go through the store's
// own actions; nothing mutates store state from outside.
//
// base is the piece every store shares. The fetch sequence counter makes
// the most recently *issued* fetch win: when two fetches overlap, the
// older one's result is discarded at commit time no matter which
// response arrived last.
type base struct {
	mu        sync.Mutex
	isLoading bool
	errMsg    string
	fetchSeq  uint64
}

// beginFetch marks the store loading and clears any prior error before
// the request is issued, and returns this fetch's sequence number.
func (b *base) beginFetch() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fetchSeq++
	b.isLoading = true
	b.errMsg = ""
	return b.fetchSeq
}

// settleFetch commits a finished fetch. Results from a superseded fetch
// are dropped silently; the newer in-flight fetch owns the loading flag.
// On failure the previously loaded data is left untouched and only the
// error message is recorded. commit runs under the store lock.
func (b *base) settleFetch(seq uint64, err error, commit func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.fetchSeq {
		return nil
	}
	b.isLoading = false
	if err != nil {
		b.errMsg = err.Error()
		return err
	}
	b.errMsg = ""
	if commit != nil {
		commit()
	}
	return nil
}

// recordErr notes a mutation failure without touching the loading flag.
func (b *base) recordErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errMsg = err.Error()
}

// IsLoading reports whether a fetch is in flight.
func (b *base) IsLoading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isLoading
}

// Err returns the last recorded error message, empty when the last
// operation succeeded.
func (b *base) Err() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}
