package middleware

import (
	"net/http"
	"strings"

	"safari-booking/pkg/utils"
)

// RequireJSON rejects POST, PUT and PATCH requests whose body is not JSON.
// Requests without a body are let through so handlers can report the
// missing fields themselves.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasBodyMethod(r.Method) && r.ContentLength != 0 {
			contentType := strings.TrimSpace(strings.SplitN(r.Header.Get("Content-Type"), ";", 2)[0])
			if contentType != "" && contentType != "application/json" {
				utils.ResponseError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", nil)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func hasBodyMethod(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}
