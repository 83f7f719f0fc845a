package api

import (
	"net/http"

	"github.com/mistakebook/backend/internal/domain/question"
	"github.com/mistakebook/backend/internal/store"
)

// getStats returns aggregate learning statistics.
// @Summary      Get statistics
// @Description  Recomputes status counts and the overall accuracy rate from a full scan of the collection.
// @Tags         Statistics
// @Produce      json
// @Success      200  {object}  Response{data=question.Summary}
// @Failure      500  {object}  Response
// @Router       /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	questions, err := h.store.ListQuestions(ctx, store.QuestionFilter{})
	if h.handleStoreError(w, err, "questions") {
		return
	}

	respondData(w, http.StatusOK, question.Aggregate(questions))
}
