package handlers

import (
	"net/http"
	"runtime"
)

type healthResponse struct {
	Status     string `json:"status"`
	AllocMemMb uint64 `json:"alloc_mem_mb"`
	NumGC      uint32 `json:"num_gc"`
}

// Health reports liveness plus basic Go runtime figures.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	h.respond(w, http.StatusOK, healthResponse{
		Status:     "ok",
		AllocMemMb: m.Alloc / 1024 / 1024,
		NumGC:      m.NumGC,
	})
}
