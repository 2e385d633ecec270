package roundservice

import (
	"context"

	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	roundtypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/round/domain/types"
)

// FakeArchive provides a programmable stub for the Archive interface.
type FakeArchive struct {
	trace []string

	SaveFunc   func(ctx context.Context, round *roundtypes.Round) (archiveservice.SaveOutcome, error)
	ListFunc   func(ctx context.Context) ([]archivetypes.ArchivedRound, error)
	DeleteFunc func(ctx context.Context, current []archivetypes.ArchivedRound, index int) ([]archivetypes.ArchivedRound, error)
}

// NewFakeArchive initializes a new FakeArchive with an empty trace.
func NewFakeArchive() *FakeArchive {
	return &FakeArchive{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeArchive) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeArchive) record(step string) { f.trace = append(f.trace, step) }

func (f *FakeArchive) Save(ctx context.Context, round *roundtypes.Round) (archiveservice.SaveOutcome, error) {
	f.record("Save")
	if f.SaveFunc != nil {
		return f.SaveFunc(ctx, round)
	}
	round.MarkSaved()
	return archiveservice.Saved, nil
}

func (f *FakeArchive) List(ctx context.Context) ([]archivetypes.ArchivedRound, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return []archivetypes.ArchivedRound{}, nil
}

func (f *FakeArchive) Delete(ctx context.Context, current []archivetypes.ArchivedRound, index int) ([]archivetypes.ArchivedRound, error) {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, current, index)
	}
	next := append([]archivetypes.ArchivedRound(nil), current[:index]...)
	return append(next, current[index+1:]...), nil
}
