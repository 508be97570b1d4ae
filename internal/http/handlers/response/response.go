package response

import (
	"encoding/json"
	"net/http"
	"strings"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, "internal error", http.StatusInternalServerError)
}

func RenderInvalidRequest(rw http.ResponseWriter) {
	RenderError(rw, "invalid request data", http.StatusBadRequest)
}

// RenderInvalidPasswordResetToken is used for unknown and expired tokens alike.
func RenderInvalidPasswordResetToken(rw http.ResponseWriter) {
	RenderError(rw, "invalid or expired token", http.StatusNotFound)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func RenderMessage(rw http.ResponseWriter, msg string, status int) {
	Render(rw, messageResponse{Message: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}

// AcceptsHTML reports whether the request comes from a browser expecting a page.
func AcceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// RenderMessageOrRedirect redirects browser clients to location, other clients get msg as JSON.
func RenderMessageOrRedirect(rw http.ResponseWriter, r *http.Request, msg string, location string) {
	if AcceptsHTML(r) && location != "" {
		http.Redirect(rw, r, location, http.StatusSeeOther)
		return
	}
	RenderMessage(rw, msg, http.StatusOK)
}

const maxFormMemory = 1 << 20

// IsForm reports whether the request body is an HTML form.
func IsForm(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") ||
		isMultipart(r)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// ParseForm parses urlencoded and multipart bodies into r.PostForm.
func ParseForm(r *http.Request) error {
	if isMultipart(r) {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}
