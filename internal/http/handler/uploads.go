package handler

import (
	"net/http"

	"wave/internal/media"
)

const maxUploadBytes = 32 << 20 // 32 MiB

type UploadHandler struct {
	Uploader media.Uploader
}

// UploadFile streams the multipart "file" part to external object
// storage and returns its public URL. Nothing is kept locally.
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	url, err := h.Uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
