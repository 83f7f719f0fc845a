package api

import (
	"net/http"
	"time"

	"github.com/mistakebook/backend/internal/domain/question"
	"github.com/mistakebook/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateQuestionRequest struct {
	Subject       string `json:"subject" validate:"required" example:"math"`
	QuestionText  string `json:"question_text" validate:"required" example:"1+1=?"`
	ImageURL      string `json:"image_url,omitempty"`
	UserAnswer    string `json:"user_answer,omitempty" example:"3"`
	CorrectAnswer string `json:"correct_answer,omitempty" example:"2"`
	Explanation   string `json:"explanation,omitempty"`
	Difficulty    string `json:"difficulty,omitempty" example:"easy"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=pending reviewing mastered" example:"pending"`
	PracticeCount int    `json:"practice_count,omitempty" validate:"gte=0"`
	CorrectCount  int    `json:"correct_count,omitempty" validate:"gte=0,ltefield=PracticeCount"`
}

// UpdateQuestionRequest is a partial update: nil fields are left unchanged.
type UpdateQuestionRequest struct {
	ID            string  `json:"id" validate:"required"`
	Subject       *string `json:"subject,omitempty" validate:"omitempty,min=1"`
	QuestionText  *string `json:"question_text,omitempty" validate:"omitempty,min=1"`
	ImageURL      *string `json:"image_url,omitempty"`
	UserAnswer    *string `json:"user_answer,omitempty"`
	CorrectAnswer *string `json:"correct_answer,omitempty"`
	Explanation   *string `json:"explanation,omitempty"`
	Difficulty    *string `json:"difficulty,omitempty"`
	Status        *string `json:"status,omitempty" validate:"omitempty,oneof=pending reviewing mastered"`
	PracticeCount *int    `json:"practice_count,omitempty" validate:"omitempty,gte=0"`
	CorrectCount  *int    `json:"correct_count,omitempty" validate:"omitempty,gte=0"`
}

type QuestionResponse struct {
	ID            string `json:"id" example:"q1w2e3r4t5y6u7i8"`
	Subject       string `json:"subject" example:"math"`
	QuestionText  string `json:"question_text" example:"1+1=?"`
	ImageURL      string `json:"image_url,omitempty"`
	UserAnswer    string `json:"user_answer,omitempty" example:"3"`
	CorrectAnswer string `json:"correct_answer,omitempty" example:"2"`
	Explanation   string `json:"explanation,omitempty"`
	Difficulty    string `json:"difficulty" example:"medium"`
	Status        string `json:"status" example:"pending"`
	PracticeCount int    `json:"practice_count" example:"0"`
	CorrectCount  int    `json:"correct_count" example:"0"`
	CreatedAt     string `json:"created_at" example:"2024-06-01T09:30:00Z"`
	UpdatedAt     string `json:"updated_at" example:"2024-06-01T09:30:00Z"`
}

func toQuestionResponse(q *question.Question) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		Subject:       q.Subject,
		QuestionText:  q.QuestionText,
		ImageURL:      q.ImageURL,
		UserAnswer:    q.UserAnswer,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Difficulty:    string(q.Difficulty),
		Status:        string(q.Status),
		PracticeCount: q.PracticeCount,
		CorrectCount:  q.CorrectCount,
		CreatedAt:     q.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     q.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions lists all questions, optionally filtered.
// @Summary      List questions
// @Description  Returns all questions, newest first, optionally narrowed by exact-match status and/or subject.
// @Tags         Questions
// @Produce      json
// @Param        status   query     string  false  "Filter by status (pending, reviewing, mastered)"
// @Param        subject  query     string  false  "Filter by subject"
// @Success      200      {object}  Response{data=[]QuestionResponse}
// @Failure      500      {object}  Response
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := store.QuestionFilter{
		Status:  r.URL.Query().Get("status"),
		Subject: r.URL.Query().Get("subject"),
	}

	questions, err := h.store.ListQuestions(ctx, filter)
	if h.handleStoreError(w, err, "questions") {
		return
	}

	response := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		response[i] = toQuestionResponse(q)
	}

	respondData(w, http.StatusOK, response)
}

// createQuestion stores a new question.
// @Summary      Create a question
// @Description  Creates a question record. Subject and question_text are required; status defaults to pending and difficulty to medium.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateQuestionRequest  true  "Question to create"
// @Success      201   {object}  Response{data=QuestionResponse}
// @Failure      400   {object}  Response
// @Failure      500   {object}  Response
// @Router       /questions [post]
func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := question.New(question.NewParams{
		Subject:       req.Subject,
		QuestionText:  req.QuestionText,
		ImageURL:      req.ImageURL,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		Difficulty:    req.Difficulty,
		Status:        req.Status,
		PracticeCount: req.PracticeCount,
		CorrectCount:  req.CorrectCount,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.SaveQuestion(ctx, q); err != nil {
		h.logger.Error("failed to save question", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save question")
		return
	}

	respondData(w, http.StatusCreated, toQuestionResponse(q))
}

// updateQuestion applies a partial update to an existing question.
// @Summary      Update a question
// @Description  Applies only the fields present in the body; unspecified fields are left unchanged. The update is all-or-nothing.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateQuestionRequest  true  "Fields to update (id required)"
// @Success      200   {object}  Response{data=QuestionResponse}
// @Failure      400   {object}  Response
// @Failure      404   {object}  Response
// @Failure      500   {object}  Response
// @Router       /questions [put]
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.store.GetQuestion(ctx, req.ID)
	if h.handleStoreError(w, err, "question") {
		return
	}

	patch := question.Patch{
		Subject:       req.Subject,
		QuestionText:  req.QuestionText,
		ImageURL:      req.ImageURL,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		Difficulty:    req.Difficulty,
		Status:        req.Status,
		PracticeCount: req.PracticeCount,
		CorrectCount:  req.CorrectCount,
	}
	if err := q.Apply(patch); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.store.UpdateQuestion(ctx, q), "question") {
		return
	}

	respondData(w, http.StatusOK, toQuestionResponse(q))
}

// deleteQuestion removes a question permanently.
// @Summary      Delete a question
// @Description  Deletes the question with the given id. Deleting an unknown id is an error, not a no-op.
// @Tags         Questions
// @Produce      json
// @Param        id   query     string  true  "Question ID"
// @Success      200  {object}  Response
// @Failure      400  {object}  Response
// @Failure      404  {object}  Response
// @Failure      500  {object}  Response
// @Router       /questions [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	if h.handleStoreError(w, h.store.DeleteQuestion(ctx, id), "question") {
		return
	}

	respondMessage(w, http.StatusOK, "question deleted")
}
