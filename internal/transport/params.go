package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

// URLID parses a numeric chi route parameter.
func URLID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
