package archiveservice

import (
	"fmt"
	"strings"
	"time"

	archivetypes "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/domain/types"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ParseSince turns a --since value into a cutoff. It accepts 2006-01-02 or
// English phrases such as "yesterday" or "3 days ago"; phrases resolve to the
// start of the matched day in now's location.
func ParseSince(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, ErrUnrecognizedDate
	}

	if t, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return t, nil
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	r, err := w.Parse(strings.ToLower(input), now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnrecognizedDate, input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, input)
	}

	y, m, d := r.Time.In(now.Location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
}

// FilterSince keeps the records dated at or after since, preserving order.
func FilterSince(rounds []archivetypes.ArchivedRound, since time.Time) []archivetypes.ArchivedRound {
	out := make([]archivetypes.ArchivedRound, 0, len(rounds))
	for _, r := range rounds {
		if !r.Date.Before(since) {
			out = append(out, r)
		}
	}
	return out
}
