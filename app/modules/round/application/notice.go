package roundservice

import "fmt"

// NoticeLevel is the severity of a user-facing message.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a one-off message for the user, such as the outcome of a save.
// The zero Notice means there is nothing to show.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool { return n.Message == "" }

func infoNotice(msg string) Notice { return Notice{Level: NoticeInfo, Message: msg} }

func errorNotice(title string, err error) Notice {
	return Notice{Level: NoticeError, Message: fmt.Sprintf("%s: %v", title, err)}
}

const (
	msgGameSaved        = "Game saved!"
	msgGameAlreadySaved = "Game already saved"
	msgGameDeleted      = "Game deleted"
	msgSaveFailed       = "Saving failed"
	msgLoadFailed       = "Error loading saved games"
	msgDeleteFailed     = "Error deleting game"
)
