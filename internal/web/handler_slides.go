package web

import (
	"bytes"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"slidegen/internal/session"
)

const maxUploadSize = 20 * 1024 * 1024 // 20 MB

// allowedImageTypes is the set of MIME types accepted for uploaded images.
// net/http.DetectContentType handles JPEG, PNG, and GIF via magic-byte
// sniffing. WebP is detected separately because the WHATWG sniff spec (and
// therefore the stdlib) does not include a WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

// allowedImageMIME returns the detected MIME type and true if the data is an
// accepted image format, or ("", false) otherwise. The file picker's accept
// filter is advisory only; the bytes decide.
func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

// stateData adapts a session view for template rendering.
type stateData struct {
	session.View
}

func (d stateData) IsLoading() bool { return d.Status == session.StatusLoading }
func (d stateData) IsError() bool   { return d.Status == session.StatusError }

// PreviewSrc marks the preview data URL safe for an img src attribute;
// html/template otherwise rewrites data: URLs to #ZgotmplZ.
func (d stateData) PreviewSrc() template.URL { return template.URL(d.PreviewURL) }

// ShowSuccess guards against a success status with no content; such a view
// renders as idle.
func (d stateData) ShowSuccess() bool {
	return d.Status == session.StatusSuccess && d.Content != nil
}

func (d stateData) IsIdle() bool {
	return !d.IsLoading() && !d.IsError() && !d.ShowSuccess()
}

func (s *Server) currentState() stateData {
	return stateData{View: s.session.Snapshot()}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	err := s.renderPage(w, s.currentState(), "base.html", "index.html", "partials/state.html")
	if err != nil {
		s.logger.Error("render index failed", "error", err)
	}
}

// handleUploadImage runs image intake: it validates the file, hands it to the
// session (which resets prior state and issues the content request), waits
// for the request to resolve, and renders the resulting state.
func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		// No file selected is a no-op; session state is untouched.
		http.Error(w, "image file required", http.StatusBadRequest)
		return
	}
	defer closeWithLog(file, "upload file", s.logger)

	imageData, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		s.logger.Error("read upload failed", "error", err)
		return
	}

	mimeType, ok := allowedImageMIME(imageData)
	if !ok {
		http.Error(w, "unsupported image format", http.StatusBadRequest)
		return
	}

	storageKey := ""
	if s.imageStore != nil {
		key, err := s.imageStore.Save(r.Context(), mimeType, bytes.NewReader(imageData))
		if err != nil {
			// History keeps working without the thumbnail.
			s.logger.Error("failed to save upload", "error", err)
		} else {
			storageKey = key
		}
	}

	done := s.session.SubmitImage(r.Context(), imageData, mimeType, storageKey)
	<-done

	s.renderState(w)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.renderState(w)
}

func (s *Server) handleCopy(w http.ResponseWriter, r *http.Request) {
	// Failures land in the session state and render as the error view.
	if err := s.session.CopyToClipboard(r.Context()); err != nil {
		s.logger.Error("copy to clipboard failed", "error", err)
	}
	s.renderState(w)
}

func (s *Server) renderState(w http.ResponseWriter) {
	if err := s.renderPartial(w, "partials/state.html", "state", s.currentState()); err != nil {
		s.logger.Error("render state failed", "error", err)
	}
}

// closeWithLog closes c and logs any error, using label to identify the resource.
func closeWithLog(c io.Closer, label string, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Error("failed to close resource", "label", label, "error", err)
	}
}
