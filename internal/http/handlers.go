package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cashbook/internal/core"
	"cashbook/internal/export"
	"cashbook/internal/ledger"
)

// transactionRequest is the JSON body for create and update. Amount is the
// positive magnitude as entered; the type decides the sign.
type transactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type listResponse struct {
	Transactions []core.Transaction `json:"transactions"`
	Summary      core.Summary       `json:"summary"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleList(w, r)
	case http.MethodPost:
		s.handleCreate(w, r)
	case http.MethodDelete:
		s.handleClearAll(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleList returns the active view plus the totals shown next to it.
// The summary follows the filter policy, not the displayed subset.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	kind := core.FilterAll
	if v := strings.TrimSpace(r.URL.Query().Get("filter")); v != "" {
		k, err := core.ParseFilterKind(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		kind = k
	}

	txs := s.store.List()
	now := s.now()

	view := core.Filter(txs, kind, now)
	core.SortByDateDesc(view)

	writeJSON(w, http.StatusOK, listResponse{
		Transactions: view,
		Summary:      core.SummaryFor(txs, kind, now),
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.parseFields(w, r)
	if !ok {
		return
	}

	tx, err := s.store.Create(r.Context(), fields)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(r.Context()); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/transactions/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "transaction id missing")
		return
	}

	switch r.Method {
	case http.MethodPut:
		fields, ok := s.parseFields(w, r)
		if !ok {
			return
		}
		tx, err := s.store.Update(r.Context(), id, fields)
		if err != nil {
			s.writeStoreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tx)
	case http.MethodDelete:
		if err := s.store.Delete(r.Context(), id); err != nil {
			s.writeStoreError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	kind := core.FilterAll
	if v := strings.TrimSpace(r.URL.Query().Get("filter")); v != "" {
		k, err := core.ParseFilterKind(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		kind = k
	}

	writeJSON(w, http.StatusOK, core.SummaryFor(s.store.List(), kind, s.now()))
}

func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		text, err := s.notes.Load(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Notes load error", "error", err)
			writeError(w, http.StatusInternalServerError, "could not load notes")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"notes": text})
	case http.MethodPut:
		var body struct {
			Notes string `json:"notes"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.notes.Save(r.Context(), body.Notes); err != nil {
			slog.ErrorContext(r.Context(), "Notes save error", "error", err)
			writeError(w, http.StatusInternalServerError, "could not save notes")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		if err := s.notes.Clear(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Notes clear error", "error", err)
			writeError(w, http.StatusInternalServerError, "could not clear notes")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.Header().Set("Allow", "GET, PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	start, err := parseDate(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start date")
		return
	}
	end, err := parseDate(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end date")
		return
	}
	if start.After(end.Time) {
		writeError(w, http.StatusBadRequest, "start date cannot be after end date")
		return
	}

	var buf bytes.Buffer
	writer := export.CSVWriter{}
	count, err := writer.Write(&buf, s.store.List(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "CSV export error", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	if count == 0 {
		writeError(w, http.StatusNotFound, "no transactions found in the selected date range")
		return
	}

	name := "cashbook_export_" + start.Format(time.DateOnly) + "_to_" + end.Format(time.DateOnly) + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(buf.Bytes())

	slog.InfoContext(r.Context(), "Exported transactions",
		"count", count,
		"start", start.Format(time.DateOnly),
		"end", end.Format(time.DateOnly))
}

// parseFields decodes and validates the request body, writing the error
// response itself when the input is unusable.
func (s *Server) parseFields(w http.ResponseWriter, r *http.Request) (ledger.Fields, bool) {
	var body transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return ledger.Fields{}, false
	}

	amount, err := core.ParseAmount(body.Amount)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return ledger.Fields{}, false
	}
	date, err := parseDate(body.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid date")
		return ledger.Fields{}, false
	}

	return ledger.Fields{
		Description: body.Description,
		Amount:      amount,
		Type:        core.TransactionType(body.Type),
		Date:        date,
		Time:        strings.TrimSpace(body.Time),
	}, true
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrEmptyDescription),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidType):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ledger.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrPersistence):
		// The in-memory collection kept the edit; only the write failed.
		slog.ErrorContext(r.Context(), "Persistence error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to persist changes")
	default:
		slog.ErrorContext(r.Context(), "Store error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// parseDate parses a date string in YYYY-MM-DD format.
func parseDate(dateStr string) (core.Date, error) {
	parsedTime, err := time.Parse(time.DateOnly, strings.TrimSpace(dateStr))
	if err != nil {
		return core.Date{}, err
	}
	return core.Date{Time: parsedTime}, nil
}
