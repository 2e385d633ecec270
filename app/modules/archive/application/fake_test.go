package archiveservice

import (
	"context"
	"sync"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	archivedb "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
)

// FakeRepository provides a programmable stub for archivedb.Repository.
type FakeRepository struct {
	trace []string

	LoadFunc    func(ctx context.Context) ([]archivetypes.ArchivedRound, error)
	ReplaceFunc func(ctx context.Context, rounds []archivetypes.ArchivedRound) error

	// Stored is what Load returns when LoadFunc is nil; Replace updates it.
	Stored []archivetypes.ArchivedRound
}

// NewFakeRepository initializes a new FakeRepository with an empty trace.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRepository) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeRepository) Load(ctx context.Context) ([]archivetypes.ArchivedRound, error) {
	f.record("Load")
	if f.LoadFunc != nil {
		return f.LoadFunc(ctx)
	}
	out := make([]archivetypes.ArchivedRound, len(f.Stored))
	copy(out, f.Stored)
	return out, nil
}

func (f *FakeRepository) Replace(ctx context.Context, rounds []archivetypes.ArchivedRound) error {
	f.record("Replace")
	if f.ReplaceFunc != nil {
		return f.ReplaceFunc(ctx, rounds)
	}
	f.Stored = append([]archivetypes.ArchivedRound(nil), rounds...)
	return nil
}

var _ archivedb.Repository = (*FakeRepository)(nil)

// FakePublisher records published messages.
type FakePublisher struct {
	mu          sync.Mutex
	PublishFunc func(topic string, msgs ...*message.Message) error
	Published   map[string][]*message.Message
}

func (f *FakePublisher) Publish(topic string, msgs ...*message.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Published == nil {
		f.Published = map[string][]*message.Message{}
	}
	if f.PublishFunc != nil {
		if err := f.PublishFunc(topic, msgs...); err != nil {
			return err
		}
	}
	f.Published[topic] = append(f.Published[topic], msgs...)
	return nil
}

func (f *FakePublisher) Close() error { return nil }

var _ message.Publisher = (*FakePublisher)(nil)
