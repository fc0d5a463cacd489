package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionResponse struct {
	OK          bool   `json:"ok" example:"true"`
	QuestionID  string `json:"qid" example:"v1_q0042"`
	Prompt      string `json:"prompt" example:"7 + 5 = ?"`
	BankVersion int    `json:"version" example:"1"`
}

// answerText accepts either a JSON string or a JSON number.
type answerText string

func (a *answerText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = answerText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*a = answerText(n.String())
		return nil
	}
	return errors.New("answer must be a string or a number")
}

type SubmitAnswerRequest struct {
	QuestionID string     `json:"qid" example:"v1_q0042"`
	Answer     answerText `json:"answer" swaggertype:"string" example:"12"`
}

type SubmitAnswerResponse struct {
	OK            bool `json:"ok" example:"true"`
	Correct       bool `json:"correct" example:"false"`
	CorrectAnswer int  `json:"correct_answer" example:"12"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getQuestion serves the next adaptive question.
// @Summary      Serve a question
// @Description  Picks the next question for the session's child and marks it in flight. Reaching the daily limit is reported with ok=false and kind=daily_limit.
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  QuestionResponse
// @Failure      400  {object}  ErrorResponse  "no child selected or unknown child"
// @Failure      500  {object}  ErrorResponse
// @Router       /api/question [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	q, err := h.quiz.ServeQuestion(r.Context(), handle.Session)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, QuestionResponse{
		OK:          true,
		QuestionID:  q.ID,
		Prompt:      q.Prompt,
		BankVersion: q.BankVersion,
	})
}

// submitAnswer grades the answer to the in-flight question.
// @Summary      Submit an answer
// @Description  Grades the answer for the session's in-flight question. Blank or non-numeric answers count as wrong.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Answer"
// @Success      200   {object}  SubmitAnswerResponse
// @Failure      400   {object}  ErrorResponse  "out of sync, unknown question or no child"
// @Failure      500   {object}  ErrorResponse
// @Router       /api/answer [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.quiz.SubmitAnswer(r.Context(), handle.Session, req.QuestionID, string(req.Answer))
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		OK:            true,
		Correct:       res.Correct,
		CorrectAnswer: res.CorrectAnswer,
	})
}
