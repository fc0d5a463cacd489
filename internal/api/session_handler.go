package api

import (
	"net/http"

	"github.com/mathquiz/backend/internal/domain/stats"
)

// ── Request / Response types ────────────────────────────────────────────────

type HomeResponse struct {
	Children         []string `json:"children" example:"alleia,althafandra"`
	DailyLimit       int      `json:"daily_limit" example:"400"`
	RewardPerCorrect int      `json:"reward_per_correct" example:"50"`
}

type QuizStatusResponse struct {
	Child            string      `json:"child" example:"alleia"`
	AnsweredToday    int         `json:"answered_today" example:"12"`
	CorrectToday     int         `json:"correct_count" example:"10"`
	EarnedToday      int         `json:"earned" example:"500"`
	RemainingToday   int         `json:"remaining_today" example:"388"`
	Level            stats.Level `json:"level" example:"beginner"`
	DailyLimit       int         `json:"daily_limit" example:"400"`
	RewardPerCorrect int         `json:"reward_per_correct" example:"50"`
}

type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSession(w, r); !ok {
		return
	}
	http.Redirect(w, r, "/start", http.StatusTemporaryRedirect)
}

// GET /start
func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.resolveSession(w, r)
	if !ok {
		return
	}
	if handle.Session.ChildName() != "" {
		http.Redirect(w, r, "/quiz", http.StatusTemporaryRedirect)
		return
	}
	http.Redirect(w, r, "/home", http.StatusTemporaryRedirect)
}

// home lists the recognized children.
// @Summary      Child selection
// @Description  Lists the children that can be selected, with the daily rules.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  HomeResponse
// @Router       /home [get]
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSession(w, r); !ok {
		return
	}
	cfg := h.quiz.Config()
	respondJSON(w, http.StatusOK, HomeResponse{
		Children:         h.sessions.Roster().Names(),
		DailyLimit:       cfg.DailyLimit,
		RewardPerCorrect: cfg.RewardPerCorrect,
	})
}

// selectChild binds a child to the session.
// @Summary      Select a child
// @Description  Binds the child to the session and redirects to /quiz, or back to /home when the name is not recognized.
// @Tags         Session
// @Param        child  path  string  true  "Child name"
// @Success      303
// @Router       /home/{child} [get]
func (h *Handler) selectChild(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	_, bound, err := h.sessions.BindChild(r.Context(), handle.Session, r.PathValue("child"))
	if h.handleServiceError(w, err) {
		return
	}
	if !bound {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/quiz", http.StatusSeeOther)
}

// quizStatus reports today's progress for the bound child.
// @Summary      Quiz status
// @Description  Today's counters and weekly level for the session's child. Redirects to /home when no child is selected.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  QuizStatusResponse
// @Success      307
// @Failure      500  {object}  ErrorResponse
// @Router       /quiz [get]
func (h *Handler) quizStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	handle, ok := h.resolveSession(w, r)
	if !ok {
		return
	}

	child := handle.Session.ChildName()
	if _, known := h.sessions.Roster().Lookup(child); !known {
		http.Redirect(w, r, "/home", http.StatusTemporaryRedirect)
		return
	}

	today, err := h.stats.DailyRecap(ctx, child, []string{h.stats.Today()})
	if h.handleServiceError(w, err) {
		return
	}
	weekly, err := h.stats.RecentRecap(ctx, child, 7)
	if h.handleServiceError(w, err) {
		return
	}
	remaining, err := h.quiz.DailyRemaining(ctx, child)
	if h.handleServiceError(w, err) {
		return
	}

	cfg := h.quiz.Config()
	respondJSON(w, http.StatusOK, QuizStatusResponse{
		Child:            child,
		AnsweredToday:    today.Totals.Answered,
		CorrectToday:     today.Totals.Correct,
		EarnedToday:      today.Totals.Earned,
		RemainingToday:   remaining,
		Level:            stats.LevelFor(weekly),
		DailyLimit:       cfg.DailyLimit,
		RewardPerCorrect: cfg.RewardPerCorrect,
	})
}

// logout unbinds the child from the session.
// @Summary      Log out
// @Description  Clears the selected child and in-flight question. The session and its counters are kept.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  OKResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.resolveSession(w, r)
	if !ok {
		return
	}
	if h.handleServiceError(w, h.sessions.Logout(r.Context(), handle.Session)) {
		return
	}
	respondJSON(w, http.StatusOK, OKResponse{OK: true})
}
