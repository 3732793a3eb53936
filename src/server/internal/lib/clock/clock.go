package clock

import "time"

const DateLayout = "2006-01-02"

// Clock is injected wherever "today" matters so tests can pin it
type Clock func() time.Time

func System() Clock {
	return time.Now
}

func Fixed(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

// Today is the current UTC date in the CMS date format
func (c Clock) Today() string {
	return c().UTC().Format(DateLayout)
}
