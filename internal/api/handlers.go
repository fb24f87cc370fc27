package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/DhruvGohel46/Product-Sales-Mangment-sub000/internal/models"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listReminders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.mgr.List())
}

func (s *Server) buckets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.mgr.Categorize())
}

func (s *Server) createReminder(w http.ResponseWriter, r *http.Request) {
	var in models.ReminderInput
	if err := decode(r, &in); err != nil {
		writeError(w, err)
		return
	}
	created, err := s.mgr.Create(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) getReminder(w http.ResponseWriter, r *http.Request) {
	rem, err := s.mgr.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

func (s *Server) updateReminder(w http.ResponseWriter, r *http.Request) {
	var patch models.ReminderPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	rem, err := s.mgr.Update(mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

func (s *Server) deleteReminder(w http.ResponseWriter, r *http.Request) {
	if err := s.mgr.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) completeReminder(w http.ResponseWriter, r *http.Request) {
	rem, err := s.mgr.Complete(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

// snoozeRequest picks one of: minutes from now, an absolute instant, or the
// "tomorrow" preset. An empty body snoozes for the default duration.
type snoozeRequest struct {
	Minutes int        `json:"minutes,omitempty"`
	Until   *time.Time `json:"until,omitempty"`
	Preset  string     `json:"preset,omitempty"`
}

func (s *Server) snoozeReminder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req snoozeRequest
	if err := decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, err)
		return
	}

	var (
		rem models.Reminder
		err error
	)
	switch {
	case req.Preset == "tomorrow":
		rem, err = s.mgr.SnoozeTomorrow(id)
	case req.Preset != "":
		err = errors.New("unknown snooze preset: " + req.Preset)
	case req.Until != nil:
		rem, err = s.mgr.SnoozeUntil(id, *req.Until)
	default:
		rem, err = s.mgr.Snooze(id, time.Duration(req.Minutes)*time.Minute)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

type recurRequest struct {
	RepeatType models.RepeatType `json:"repeatType"`
}

func (s *Server) recurReminder(w http.ResponseWriter, r *http.Request) {
	var req recurRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rem, err := s.mgr.ConvertToRecurring(mux.Vars(r)["id"], req.RepeatType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rem)
}

func (s *Server) listSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.mgr.Suggestions())
}

func (s *Server) acceptSuggestion(w http.ResponseWriter, r *http.Request) {
	rem, err := s.mgr.AcceptSuggestion(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rem)
}

func (s *Server) dismissSuggestion(w http.ResponseWriter, r *http.Request) {
	if err := s.mgr.DismissSuggestion(mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
