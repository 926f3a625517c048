package http

import (
	"net/http"
	"strings"

	"pocketbook/internal/core"
)

type accountView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Currency     string `json:"currency"`
	Balance      string `json:"balance"`
	BalanceCents int64  `json:"balance_cents"`
}

// handleAccounts serves the fixed account list with balances recomputed
// from the transaction collection on every request.
func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	txs := s.store.Load(r.Context())

	accounts := core.Accounts()
	views := make([]accountView, len(accounts))
	for i, a := range accounts {
		balance := core.Balance(txs, a.ID)
		views[i] = accountView{
			ID:           string(a.ID),
			Name:         a.Name,
			Currency:     a.Currency,
			Balance:      balance.String(),
			BalanceCents: balance.Cents,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"accounts": views})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	kind := core.TransactionKind(strings.TrimSpace(r.URL.Query().Get("kind")))
	if kind == "" {
		writeJSON(w, http.StatusOK, map[string]any{"categories": core.Categories()})
		return
	}
	if !kind.IsValid() {
		writeJSONError(w, http.StatusBadRequest, "unknown kind")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"categories": core.CategoriesFor(kind)})
}
