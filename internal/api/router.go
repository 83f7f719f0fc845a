// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every endpoint onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Questions
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("POST /questions", h.createQuestion)
	mux.HandleFunc("PUT /questions", h.updateQuestion)
	mux.HandleFunc("DELETE /questions", h.deleteQuestion)

	// Statistics
	mux.HandleFunc("GET /stats", h.getStats)

	// Inference
	mux.HandleFunc("POST /ocr", h.recognizeQuestion)
	mux.HandleFunc("GET /ocr", h.ocrStatus)
	mux.HandleFunc("POST /explain", h.explainQuestion)
	mux.HandleFunc("GET /explain", h.explainStatus)
	mux.HandleFunc("POST /practice", h.generatePractice)
	mux.HandleFunc("POST /analysis", h.analyzeMistakes)
}
