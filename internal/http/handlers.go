package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pocketbook/internal/core"
	"pocketbook/internal/form"
	applog "pocketbook/internal/log"
)

// saveWarning is the user-facing notice for a failed persist. The mutation
// already happened in memory, so the response still carries the updated
// collection; only the stored copy may lag behind.
const saveWarning = "Your change is visible but could not be saved to storage"

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	account := core.AccountID(strings.TrimSpace(r.URL.Query().Get("account")))
	if account != "" {
		if _, ok := core.AccountByID(account); !ok {
			writeJSONError(w, http.StatusBadRequest, "unknown account")
			return
		}
	}

	txs := s.store.Load(r.Context())
	visible := txs
	if account != "" {
		visible = nil
		for _, t := range txs {
			if t.Account == account {
				visible = append(visible, t)
			}
		}
	}
	balance := core.Balance(txs, account)

	writeJSON(w, http.StatusOK, map[string]any{
		"transactions":  viewsOf(visible),
		"balance":       balance.String(),
		"balance_cents": balance.Cents,
	})
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		slog.ErrorContext(r.Context(), "Parse request body error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	f := form.NewAdd(core.AccountID(parser.Get("account")))
	f.SetKind(core.TransactionKind(parser.Get("kind")))
	f.Merchant = parser.Get("merchant")
	f.Amount = parser.Get("amount")
	f.CategoryID = parser.Get("category")

	txs, t, err := f.Submit(r.Context(), s.store)
	if err != nil {
		s.respondMutation(w, r, http.StatusCreated, txs, t, err, applog.OpAdd)
		return
	}

	fields := applog.NewFields().
		WithTransaction(t.ID, t.Merchant, t.Amount.Cents, string(t.Account)).
		WithOperation(applog.OpAdd).
		WithComponent(applog.ComponentHTTP)
	slog.InfoContext(r.Context(), "Transaction created", fields.ToSlice()...)

	s.respondMutation(w, r, http.StatusCreated, txs, t, nil, applog.OpAdd)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		slog.ErrorContext(r.Context(), "Parse request body error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	id := parser.GetInt64("id")
	if id == 0 {
		writeJSONError(w, http.StatusBadRequest, "missing transaction id")
		return
	}

	var existing *core.Transaction
	for _, t := range s.store.Load(r.Context()) {
		if t.ID == id {
			tt := t
			existing = &tt
			break
		}
	}
	if existing == nil {
		writeJSONError(w, http.StatusNotFound, "transaction not found")
		return
	}

	f := form.NewEdit(*existing)
	if v := parser.Get("kind"); v != "" {
		f.SetKind(core.TransactionKind(v))
	}
	if v := parser.Get("merchant"); v != "" {
		f.Merchant = v
	}
	if v := parser.Get("amount"); v != "" {
		f.Amount = v
	}
	if v := parser.Get("category"); v != "" {
		f.CategoryID = v
	}
	if v := parser.Get("account"); v != "" {
		f.Account = core.AccountID(v)
	}

	txs, t, err := f.Submit(r.Context(), s.store)
	if err == nil {
		fields := applog.NewFields().
			WithTransaction(t.ID, t.Merchant, t.Amount.Cents, string(t.Account)).
			WithOperation(applog.OpUpdate).
			WithComponent(applog.ComponentHTTP)
		slog.InfoContext(r.Context(), "Transaction updated", fields.ToSlice()...)
	}
	s.respondMutation(w, r, http.StatusOK, txs, t, err, applog.OpUpdate)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		w.Header().Set("Allow", "DELETE, POST")
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		slog.ErrorContext(r.Context(), "Parse request body error", applog.FieldError, err, applog.FieldPath, r.URL.Path)
		writeJSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	id := parser.GetInt64("id")
	if id == 0 {
		writeJSONError(w, http.StatusBadRequest, "missing transaction id")
		return
	}

	txs, err := s.store.Remove(r.Context(), id)
	if err != nil {
		fields := applog.NewFields().
			WithError(err).
			WithOperation(applog.OpRemove).
			WithComponent(applog.ComponentHTTP)
		fields[applog.FieldTransactionID] = id
		slog.ErrorContext(r.Context(), "Failed to persist removal", fields.ToSlice()...)
		writeJSON(w, http.StatusOK, map[string]any{
			"transactions": viewsOf(txs),
			"warning":      saveWarning,
		})
		return
	}

	slog.InfoContext(r.Context(), "Transaction removed",
		applog.FieldTransactionID, id,
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpRemove)
	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": viewsOf(txs),
	})
}

// respondMutation maps the outcome of a form submission: validation
// failures become 422 and never touched the store, persist failures return
// the in-memory state with a warning notice.
func (s *Server) respondMutation(w http.ResponseWriter, r *http.Request, okStatus int, txs []core.Transaction, t core.Transaction, err error, op string) {
	if err == nil {
		writeJSON(w, okStatus, map[string]any{
			"transaction":  viewOf(t),
			"transactions": viewsOf(txs),
		})
		return
	}

	if isValidationError(err) {
		writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// Persist failure: the collection in txs already carries the change.
	fields := applog.NewFields().
		WithError(err).
		WithOperation(op).
		WithComponent(applog.ComponentHTTP)
	fields[applog.FieldTransactionID] = t.ID
	slog.ErrorContext(r.Context(), "Failed to persist transaction", fields.ToSlice()...)
	writeJSON(w, http.StatusOK, map[string]any{
		"transaction":  viewOf(t),
		"transactions": viewsOf(txs),
		"warning":      saveWarning,
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, core.ErrEmptyMerchant) ||
		errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrNoCategory) ||
		errors.Is(err, core.ErrUnknownAccount)
}
