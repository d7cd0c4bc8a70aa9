package logic

import (
	"errors"
	"time"

	"github.com/playdecks/insight/internal/types"
)

var (
	ErrInvalidWindow = errors.New("days must be a positive number")
	ErrInvalidLimit  = errors.New("limit must be a positive number")
)

const dateLayout = "2006-01-02"

// window resolves a trailing day count into the half-open range [from, to).
func window(now time.Time, days int) (from, to time.Time, err error) {
	if days <= 0 {
		return time.Time{}, time.Time{}, ErrInvalidWindow
	}
	to = now
	from = now.AddDate(0, 0, -days)
	return from, to, nil
}

func windowMeta(days int, from, to time.Time) types.Window {
	return types.Window{Days: days, From: from.Format(dateLayout), To: to.Format(dateLayout)}
}
