package web

import (
	"net/http"
	"strconv"
	"time"
)

func formInt64(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PostFormValue(name), 10, 64)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// formOptionalInt64 returns nil for an empty field, matching the
// nullable foreign keys on the edit forms.
func formOptionalInt64(r *http.Request, name string) *int64 {
	v := r.PostFormValue(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func formOptionalDate(r *http.Request, name string) *time.Time {
	v := r.PostFormValue(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

// formOptionalDateTime reads a datetime-local input, with or without
// seconds.
func formOptionalDateTime(r *http.Request, name string) *time.Time {
	v := r.PostFormValue(name)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", v)
	if err != nil {
		t, err = time.Parse("2006-01-02T15:04", v)
		if err != nil {
			return nil
		}
	}
	return &t
}
