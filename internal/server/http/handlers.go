package internalhttp

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mkravets/eventcal/internal/app"
	"github.com/mkravets/eventcal/internal/storage"
	log "github.com/sirupsen/logrus"
)

type handlers struct {
	app *app.App
}

// eventPayload accepts both the wire snake_case keys and the camelCase
// variants some clients send for the time fields.
type eventPayload struct {
	Title          string `json:"title"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	StartTimeCamel string `json:"startTime"`
	EndTimeCamel   string `json:"endTime"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Color          string `json:"color"`
	EventID        string `json:"event_id"`
}

func (p eventPayload) toEvent() storage.Event {
	startTime := p.StartTime
	if startTime == "" {
		startTime = p.StartTimeCamel
	}
	endTime := p.EndTime
	if endTime == "" {
		endTime = p.EndTimeCamel
	}
	color := p.Color
	if color == "" {
		color = "#1a73e8"
	}
	return storage.Event{
		Title:       p.Title,
		Date:        p.Date,
		StartTime:   startTime,
		EndTime:     endTime,
		Description: p.Description,
		Location:    p.Location,
		Color:       color,
	}
}

func (h handlers) listEvents(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		startDate, endDate = "0000-01-01", "9999-12-31"
	}

	events, err := h.app.GetEventsRange(r.Context(), startDate, endDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h handlers) createEvent(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var payload eventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	e := payload.toEvent()
	if err := storage.ValidateEvent(e); err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("warn_overlap") == "true" {
		overlaps, err := h.app.HasOverlap(r.Context(), e.Date, e.StartTime, e.EndTime, "")
		if err != nil {
			writeError(w, err)
			return
		}
		if overlaps {
			writeJSON(w, http.StatusConflict, errorBody("event overlaps with existing event"))
			return
		}
	}

	created, err := h.app.CreateEvent(r.Context(), e)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h handlers) getEvent(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	e, err := h.app.GetEvent(r.Context(), pathParams["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h handlers) updateEvent(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	var payload eventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	id := pathParams["id"]
	e := payload.toEvent()
	if err := storage.ValidateEvent(e); err != nil {
		writeError(w, err)
		return
	}

	if r.URL.Query().Get("warn_overlap") == "true" {
		overlaps, err := h.app.HasOverlap(r.Context(), e.Date, e.StartTime, e.EndTime, id)
		if err != nil {
			writeError(w, err)
			return
		}
		if overlaps {
			writeJSON(w, http.StatusConflict, errorBody("event overlaps with existing event"))
			return
		}
	}

	updated, err := h.app.UpdateEvent(r.Context(), id, e)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h handlers) deleteEvent(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	if err := h.app.RemoveEvent(r.Context(), pathParams["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "event deleted successfully"})
}

func (h handlers) eventsByDate(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	events, err := h.app.GetEventsForDate(r.Context(), pathParams["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h handlers) checkConflicts(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var payload eventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return
	}

	e := payload.toEvent()
	if err := storage.ValidateEvent(e); err != nil {
		writeError(w, err)
		return
	}

	hasConflict, err := h.app.HasOverlap(r.Context(), e.Date, e.StartTime, e.EndTime, payload.EventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"has_conflict": hasConflict})
}

func (h handlers) getStats(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	stats, err := h.app.GetStats(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h handlers) health(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to write response: %v", err)
	}
}

func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFoundEvent):
		writeJSON(w, http.StatusNotFound, errorBody("event not found"))
	case errors.Is(err, storage.ErrMissingField),
		errors.Is(err, storage.ErrIncorrectDate),
		errors.Is(err, storage.ErrIncorrectEventTime):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, storage.ErrDuplicateEventID):
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	default:
		log.Errorf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal server error"))
	}
}
