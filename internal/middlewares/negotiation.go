package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/munnerz/goautoneg"

	"github.com/sbilibin2017/currency-converter-api/internal/models"
)

// JSONContentType is the only representation the API produces.
const JSONContentType = "application/json; charset=utf-8"

const maxBodyBytes = 1 << 20

// ContentNegotiationMiddleware restricts the API to JSON.
// It rejects Accept headers that exclude application/json with 406, bodies with
// a non-JSON Content-Type with 415 and unparseable JSON bodies with 400.
// GET and HEAD bodies are ignored. A body without Content-Type is read as JSON.
// Responses that leave Content-Type unset are tagged as JSON.
func ContentNegotiationMiddleware() func(http.Handler) http.Handler {
	allowJSON := chimiddleware.AllowContentType("application/json")

	return func(next http.Handler) http.Handler {
		validateBody := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			_ = r.Body.Close()
			if err != nil || (len(body) > 0 && !json.Valid(body)) {
				WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{
					Error:   "Invalid request",
					Message: "Request body is not valid JSON",
				})
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			next.ServeHTTP(&jsonResponseWriter{ResponseWriter: w}, r)
		})
		checkMediaType := allowJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if mw, ok := w.(*mediaTypeWriter); ok {
				w = mw.ResponseWriter
			}
			validateBody.ServeHTTP(w, r)
		}))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !acceptsJSON(r.Header.Get("Accept")) {
				WriteJSON(w, http.StatusNotAcceptable, models.ErrorResponse{
					Error:   "Not acceptable",
					Message: "Only application/json responses are supported",
				})
				return
			}

			switch {
			case !hasBody(r):
				next.ServeHTTP(&jsonResponseWriter{ResponseWriter: w}, r)
			case r.Header.Get("Content-Type") == "":
				validateBody.ServeHTTP(w, r)
			default:
				checkMediaType.ServeHTTP(&mediaTypeWriter{ResponseWriter: w}, r)
			}
		})
	}
}

func hasBody(r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return false
	}
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}

// acceptsJSON reports whether the most specific Accept clause matching
// application/json has a non-zero quality.
func acceptsJSON(accept string) bool {
	if strings.TrimSpace(accept) == "" {
		return true
	}

	best, q := -1, 0.0
	for _, clause := range goautoneg.ParseAccept(accept) {
		var specificity int
		switch {
		case clause.Type == "application" && clause.SubType == "json":
			specificity = 2
		case clause.Type == "application" && clause.SubType == "*":
			specificity = 1
		case clause.Type == "*" && clause.SubType == "*":
			specificity = 0
		default:
			continue
		}
		if specificity > best {
			best, q = specificity, clause.Q
		}
	}
	return best >= 0 && q > 0
}

// mediaTypeWriter turns the bare 415 from chi's content-type check into an
// ErrorResponse body.
type mediaTypeWriter struct {
	http.ResponseWriter
	rejected bool
}

func (w *mediaTypeWriter) WriteHeader(code int) {
	if code == http.StatusUnsupportedMediaType && !w.rejected {
		w.rejected = true
		WriteJSON(w.ResponseWriter, code, models.ErrorResponse{
			Error:   "Unsupported media type",
			Message: "Request bodies must be application/json",
		})
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *mediaTypeWriter) Write(b []byte) (int, error) {
	if w.rejected {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *mediaTypeWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// jsonResponseWriter sets the JSON content type if the handler did not.
type jsonResponseWriter struct {
	http.ResponseWriter
	tagged bool
}

func (w *jsonResponseWriter) tag() {
	if w.tagged {
		return
	}
	w.tagged = true
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", JSONContentType)
	}
}

func (w *jsonResponseWriter) WriteHeader(code int) {
	w.tag()
	w.ResponseWriter.WriteHeader(code)
}

func (w *jsonResponseWriter) Write(b []byte) (int, error) {
	w.tag()
	return w.ResponseWriter.Write(b)
}

func (w *jsonResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
