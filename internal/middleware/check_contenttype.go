package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hmondejar/notekit/internal/pkg/message"
	"github.com/hmondejar/notekit/internal/pkg/web"
)

// CheckContentType rejects body-carrying requests whose Content-Type is not
// JSON. Requests without a body pass through.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 {
			contentType := r.Header.Get(web.HeaderContentType)
			if !strings.HasPrefix(contentType, web.MimeJSON) {
				web.Fail(w, http.StatusNotAcceptable, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
