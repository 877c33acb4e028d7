package middleware

import (
	"fmt"
	"net/http"

	"github.com/ferdiebergado/autokit/internal/pkg/message"
	"github.com/ferdiebergado/autokit/internal/pkg/web"
)

// CheckContentType rejects bodied requests that do not declare a JSON payload.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			contentType := r.Header.Get(web.HeaderContentType)
			if contentType != web.MimeJSON {
				web.Fail(w, http.StatusNotAcceptable, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
