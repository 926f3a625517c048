package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"pocketbook/internal/core"
)

// transactionView is the API shape of a transaction. The amount string is
// the two-decimal display form; precision narrowing happens only here.
type transactionView struct {
	ID          int64  `json:"id"`
	Merchant    string `json:"merchant"`
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amount_cents"`
	Kind        string `json:"kind"`
	Date        string `json:"date"`
	Icon        string `json:"icon"`
	Account     string `json:"account_id,omitempty"`
}

func viewOf(t core.Transaction) transactionView {
	return transactionView{
		ID:          t.ID,
		Merchant:    t.Merchant,
		Amount:      t.Amount.String(),
		AmountCents: t.Amount.Cents,
		Kind:        string(t.Kind()),
		Date:        t.Date,
		Icon:        t.Icon,
		Account:     string(t.Account),
	}
}

func viewsOf(txs []core.Transaction) []transactionView {
	out := make([]transactionView, len(txs))
	for i, t := range txs {
		out[i] = viewOf(t)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
