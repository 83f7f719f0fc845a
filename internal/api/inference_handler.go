package api

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mistakebook/backend/internal/domain/question"
	"github.com/mistakebook/backend/internal/store"
)

// maxUploadSize caps OCR uploads at 10MB.
const maxUploadSize = 10 << 20

// ── Request / Response types ────────────────────────────────────────────────

type OCRResponse struct {
	QuestionText string `json:"questionText"`
	ImageURL     string `json:"imageUrl"`
}

type ExplainRequest struct {
	QuestionText  string `json:"questionText" validate:"required" example:"1+1=?"`
	UserAnswer    string `json:"userAnswer,omitempty" example:"3"`
	CorrectAnswer string `json:"correctAnswer,omitempty" example:"2"`
}

type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

type PracticeRequest struct {
	Subject    string `json:"subject" validate:"required" example:"math"`
	Difficulty string `json:"difficulty,omitempty" example:"easy"`
	Topic      string `json:"topic,omitempty" example:"addition"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// recognizeQuestion transcribes an uploaded homework photo.
// @Summary      Recognize a question image
// @Description  Accepts a multipart image upload (max 10MB) and returns the transcribed question text plus a data URI of the upload.
// @Tags         Inference
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Question photo"
// @Success      200   {object}  Response{data=OCRResponse}
// @Failure      400   {object}  Response
// @Failure      500   {object}  Response
// @Router       /ocr [post]
func (h *Handler) recognizeQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1<<20) // slack for multipart framing
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusBadRequest, "image must be 10MB or smaller")
			return
		}
		respondError(w, http.StatusBadRequest, "an image file is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "an image file is required")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		respondError(w, http.StatusBadRequest, "only image files are supported")
		return
	}

	if header.Size > maxUploadSize {
		respondError(w, http.StatusBadRequest, "image must be 10MB or smaller")
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	questionText, err := h.inference.Recognize(ctx, image, mimeType)
	if err != nil {
		h.logger.Error("recognition failed", "error", err)
		respondError(w, http.StatusInternalServerError, "recognition failed, please try again")
		return
	}

	imageURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	respondData(w, http.StatusOK, OCRResponse{
		QuestionText: questionText,
		ImageURL:     imageURL,
	})
}

// ocrStatus reports OCR service liveness.
// @Summary      OCR service status
// @Tags         Inference
// @Produce      json
// @Success      200  {object}  Response
// @Router       /ocr [get]
func (h *Handler) ocrStatus(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "OCR service is running")
}

// explainQuestion generates a child-friendly explanation for a question.
// @Summary      Explain a question
// @Description  Generates a step-by-step explanation. userAnswer and correctAnswer are optional context.
// @Tags         Inference
// @Accept       json
// @Produce      json
// @Param        body  body      ExplainRequest  true  "Question to explain"
// @Success      200   {object}  Response{data=ExplainResponse}
// @Failure      400   {object}  Response
// @Failure      500   {object}  Response
// @Router       /explain [post]
func (h *Handler) explainQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExplainRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	explanation, err := h.inference.Explain(ctx, req.QuestionText, req.UserAnswer, req.CorrectAnswer)
	if err != nil {
		h.logger.Error("explanation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to generate explanation, please try again")
		return
	}

	respondData(w, http.StatusOK, ExplainResponse{Explanation: explanation})
}

// explainStatus reports explanation service liveness.
// @Summary      Explanation service status
// @Tags         Inference
// @Produce      json
// @Success      200  {object}  Response
// @Router       /explain [get]
func (h *Handler) explainStatus(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "explanation service is running")
}

// generatePractice produces a fresh practice problem.
// @Summary      Generate a practice question
// @Description  Generates a practice problem for the given subject. Unrecognized difficulty defaults to medium.
// @Tags         Inference
// @Accept       json
// @Produce      json
// @Param        body  body      PracticeRequest  true  "Practice constraints"
// @Success      200   {object}  Response{data=inference.PracticeQuestion}
// @Failure      400   {object}  Response
// @Failure      500   {object}  Response
// @Router       /practice [post]
func (h *Handler) generatePractice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PracticeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	difficulty := string(question.ParseDifficulty(req.Difficulty))

	pq, err := h.inference.GeneratePractice(ctx, req.Subject, difficulty, req.Topic)
	if err != nil {
		h.logger.Error("practice generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to generate practice question, please try again")
		return
	}

	respondData(w, http.StatusOK, pq)
}

// analyzeMistakes looks for patterns across the stored mistakes.
// @Summary      Analyze mistake patterns
// @Description  Reads the full collection and returns weak topics with study suggestions. An empty collection yields empty lists.
// @Tags         Inference
// @Produce      json
// @Success      200  {object}  Response{data=inference.Analysis}
// @Failure      500  {object}  Response
// @Router       /analysis [post]
func (h *Handler) analyzeMistakes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	questions, err := h.store.ListQuestions(ctx, store.QuestionFilter{})
	if h.handleStoreError(w, err, "questions") {
		return
	}

	analysis, err := h.inference.AnalyzeMistakes(ctx, questions)
	if err != nil {
		h.logger.Error("mistake analysis failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to analyze mistakes, please try again")
		return
	}

	respondData(w, http.StatusOK, analysis)
}
