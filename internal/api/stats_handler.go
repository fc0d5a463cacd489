package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/mathquiz/backend/internal/domain/session"
	"github.com/mathquiz/backend/internal/domain/stats"
)

const (
	recapWindowDays = 7
	maxRecapDays    = 366
)

// ── Request / Response types ────────────────────────────────────────────────

type TodayResponse struct {
	Day string `json:"day" example:"2024-03-09"`
	stats.Counts
	AccuracyPct int `json:"accuracy_pct" example:"83"`
}

type WeeklyResponse struct {
	Range       []string               `json:"range"`
	GeneratedAt time.Time              `json:"generated_at"`
	Children    map[string]stats.Recap `json:"children"`
	Levels      map[string]stats.Level `json:"levels"`
}

type StatsResponse struct {
	OK     bool           `json:"ok" example:"true"`
	Child  *string        `json:"child"`
	Today  TodayResponse  `json:"today"`
	Recap7 WeeklyResponse `json:"recap7"`
}

type RecapResponse struct {
	OK bool `json:"ok" example:"true"`
	stats.Recap
}

type ExportDay struct {
	Day string `json:"day" example:"2024-03-09"`
	stats.Counts
}

type ExportResponse struct {
	ExportedAt time.Time              `json:"exported_at"`
	Children   map[string][]ExportDay `json:"children"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// apiStats reports the session's day and a weekly recap for every child.
// @Summary      Session and weekly stats
// @Description  Today's counters from the session row plus a 7-day recap and level per recognized child.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/stats [get]
func (h *Handler) apiStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	handle, ok := h.resolveSession(w, r)
	if !ok {
		return
	}
	sess := handle.Session

	weekly := WeeklyResponse{
		Range:       h.stats.RecentDays(recapWindowDays),
		GeneratedAt: time.Now().UTC(),
		Children:    make(map[string]stats.Recap),
		Levels:      make(map[string]stats.Level),
	}
	for _, name := range h.sessions.Roster().Names() {
		recap, err := h.stats.DailyRecap(ctx, name, weekly.Range)
		if h.handleServiceError(w, err) {
			return
		}
		weekly.Children[name] = recap
		weekly.Levels[name] = stats.LevelFor(recap)
	}

	respondJSON(w, http.StatusOK, StatsResponse{
		OK:    true,
		Child: sess.Child,
		Today: TodayResponse{
			Day: sess.Day,
			Counts: stats.Counts{
				Served:   sess.Served,
				Answered: sess.Answered,
				Correct:  sess.Correct,
				Earned:   sess.Earned,
			},
			AccuracyPct: stats.Accuracy(sess.Correct, sess.Answered),
		},
		Recap7: weekly,
	})
}

// recap reports a child's counters over explicit days.
// @Summary      Recap over days
// @Description  Per-day counters and totals for a child over a comma-separated, ordered list of YYYY-MM-DD keys. Days without activity report zeros.
// @Tags         Stats
// @Produce      json
// @Param        child  query     string  true  "Child name"
// @Param        days   query     string  true  "Comma-separated day keys"
// @Success      200    {object}  RecapResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /api/recap [get]
func (h *Handler) recap(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSession(w, r); !ok {
		return
	}

	c, known := h.sessions.Roster().Lookup(r.URL.Query().Get("child"))
	if !known {
		respondError(w, http.StatusBadRequest, "unknown child")
		return
	}

	days, ok := parseDays(r.URL.Query().Get("days"))
	if !ok {
		respondError(w, http.StatusBadRequest, "days must be comma-separated YYYY-MM-DD keys")
		return
	}

	rec, err := h.stats.DailyRecap(r.Context(), c.Name, days)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, RecapResponse{OK: true, Recap: rec})
}

// parseDays splits a comma-separated list of day keys, keeping order.
func parseDays(raw string) ([]string, bool) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, true
	}
	parts := strings.Split(raw, ",")
	if len(parts) > maxRecapDays {
		return nil, false
	}
	days := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if _, err := time.Parse(session.DayLayout, p); err != nil {
			return nil, false
		}
		days = append(days, p)
	}
	return days, true
}

// export dumps every daily aggregate.
// @Summary      Export daily aggregates
// @Description  Every (child, day) aggregate, grouped by child and ordered by day.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  ExportResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/export [get]
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveSession(w, r); !ok {
		return
	}

	rows, err := h.stats.Export(r.Context())
	if h.handleServiceError(w, err) {
		return
	}

	resp := ExportResponse{
		ExportedAt: time.Now().UTC(),
		Children:   make(map[string][]ExportDay),
	}
	for _, row := range rows {
		resp.Children[row.Child] = append(resp.Children[row.Child], ExportDay{Day: row.Day, Counts: row.Counts})
	}

	w.Header().Set("Content-Disposition", `attachment; filename="math_stats.json"`)
	respondJSON(w, http.StatusOK, resp)
}

// wsStats streams a child's weekly recap over a websocket.
// @Summary      Live recap stream
// @Description  Upgrades to a websocket and pushes {"type":"recap","data":...} whenever the child's counters change.
// @Tags         Stats
// @Param        child  query  string  true  "Child name"
// @Success      101
// @Failure      400  {object}  ErrorResponse
// @Router       /ws/stats [get]
func (h *Handler) wsStats(w http.ResponseWriter, r *http.Request) {
	c, known := h.sessions.Roster().Lookup(r.URL.Query().Get("child"))
	if !known {
		respondError(w, http.StatusBadRequest, "unknown child")
		return
	}
	h.live.Subscribe(w, r, c.Name)
}
