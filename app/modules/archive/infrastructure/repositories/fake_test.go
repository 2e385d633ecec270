package archivedb

import (
	"context"
	"errors"

	"github.com/nats-io/nats.go/jetstream"
)

// FakeStore is a programmable Store with a call trace.
type FakeStore struct {
	trace []string

	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string) error
}

func (f *FakeStore) record(step string) { f.trace = append(f.trace, step) }

// Trace returns the sequence of calls made to the fake.
func (f *FakeStore) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	f.record("Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, key)
	}
	return "", false, nil
}

func (f *FakeStore) Set(ctx context.Context, key, value string) error {
	f.record("Set")
	if f.SetFunc != nil {
		return f.SetFunc(ctx, key, value)
	}
	return nil
}

// FakeKeyValue implements the parts of jetstream.KeyValue the NATS store uses.
type FakeKeyValue struct {
	jetstream.KeyValue
	trace []string

	GetFunc func(ctx context.Context, key string) (jetstream.KeyValueEntry, error)
	PutFunc func(ctx context.Context, key string, value []byte) (uint64, error)
}

func (f *FakeKeyValue) Get(ctx context.Context, key string) (jetstream.KeyValueEntry, error) {
	f.trace = append(f.trace, "Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, key)
	}
	return nil, jetstream.ErrKeyNotFound
}

func (f *FakeKeyValue) Put(ctx context.Context, key string, value []byte) (uint64, error) {
	f.trace = append(f.trace, "Put")
	if f.PutFunc != nil {
		return f.PutFunc(ctx, key, value)
	}
	return 1, nil
}

// fakeEntry carries only a value.
type fakeEntry struct {
	jetstream.KeyValueEntry
	value []byte
}

func (e fakeEntry) Value() []byte { return e.value }

var errBoom = errors.New("boom")
