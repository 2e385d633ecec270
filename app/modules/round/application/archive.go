package roundservice

import (
	"context"
	"errors"

	archiveservice "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/application"
	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
)

// CanSave reports whether the finished round can still be archived.
func (s *Session) CanSave() bool {
	return s.view == ViewSummary && s.round != nil && !s.round.IsSaved()
}

// Save archives the finished round. Storage failures come back as an error
// notice and the round stays unsaved so the user can try again.
func (s *Session) Save(ctx context.Context) (Notice, error) {
	if err := s.requireView(ViewSummary); err != nil {
		return Notice{}, err
	}

	outcome, err := s.archive.Save(ctx, s.round)
	if err != nil {
		return errorNotice(msgSaveFailed, err), nil
	}
	if outcome == archiveservice.AlreadySaved {
		return infoNotice(msgGameAlreadySaved), nil
	}
	return infoNotice(msgGameSaved), nil
}

// ShowSavedGames opens the saved games list, always reading it fresh from
// storage. An unreadable archive shows as an empty list plus an error notice.
func (s *Session) ShowSavedGames(ctx context.Context) (Notice, error) {
	if s.view != ViewSetup && s.view != ViewSavedGames {
		return Notice{}, ErrWrongView
	}

	s.view = ViewSavedGames
	return s.reload(ctx), nil
}

func (s *Session) reload(ctx context.Context) Notice {
	rounds, err := s.archive.List(ctx)
	if rounds == nil {
		rounds = []archivetypes.ArchivedRound{}
	}
	s.saved = rounds
	if err != nil {
		return errorNotice(msgLoadFailed, err)
	}
	return Notice{}
}

// DeleteSavedGame removes the saved game at index. When the write fails the
// list is reloaded from storage so the screen matches what is persisted.
func (s *Session) DeleteSavedGame(ctx context.Context, index int) (Notice, error) {
	if err := s.requireView(ViewSavedGames); err != nil {
		return Notice{}, err
	}

	next, err := s.archive.Delete(ctx, s.saved, index)
	if err != nil {
		if errors.Is(err, archiveservice.ErrIndexOutOfRange) {
			return errorNotice(msgDeleteFailed, err), nil
		}
		notice := errorNotice(msgDeleteFailed, err)
		s.reload(ctx)
		return notice, nil
	}
	s.saved = next
	return infoNotice(msgGameDeleted), nil
}

// CloseSavedGames returns to setup.
func (s *Session) CloseSavedGames() error {
	if err := s.requireView(ViewSavedGames); err != nil {
		return err
	}
	s.view = ViewSetup
	return nil
}

// SavedGames returns the list last loaded by ShowSavedGames.
func (s *Session) SavedGames() []archivetypes.ArchivedRound {
	out := make([]archivetypes.ArchivedRound, len(s.saved))
	copy(out, s.saved)
	return out
}
