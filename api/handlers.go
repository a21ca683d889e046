/*
handlers.go - HTTP API handlers for the financial report engine

PURPOSE:
  Exposes the metrics and forecasting engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the pure engine.

ENDPOINTS:
  Report:
    GET    /api/report?start=&end=[&as_of=]  Full financial report

  Transactions:
    GET    /api/transactions[?start=&end=]   Ledger listing
    POST   /api/transactions                 Record transactions (batch)

  Health:
    GET    /api/health                       Liveness probe

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input against the closed category sets
  3. Call engine / store
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 409: Conflict (duplicate transaction ID)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/pulse/finance-engine/finance"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  finance.Store
	Engine *finance.Engine
	Log    zerolog.Logger
}

// NewHandler creates a new handler over the given store.
func NewHandler(store finance.Store, log zerolog.Logger) *Handler {
	return &Handler{
		Store:  store,
		Engine: finance.NewEngine(finance.NewLedger(store)),
		Log:    log,
	}
}

// =============================================================================
// REPORT HANDLER
// =============================================================================

// GetReport computes the full financial report for the requested period.
// A missing as_of defaults to today; everything below is deterministic.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	start, err := parseDateParam(r, "start")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or missing start date", err)
		return
	}
	end, err := parseDateParam(r, "end")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or missing end date", err)
		return
	}

	period, err := finance.NewPeriod(start, end)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid period", err)
		return
	}

	var asOf finance.TimePoint
	if v := r.URL.Query().Get("as_of"); v != "" {
		asOf, err = parseDate(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid as_of date", err)
			return
		}
	}

	report, err := h.Engine.Report(r.Context(), period, asOf)
	if err != nil {
		h.Log.Error().Err(err).Str("period", period.String()).Msg("report computation failed")
		writeError(w, http.StatusInternalServerError, "Failed to compute report", err)
		return
	}

	writeJSON(w, http.StatusOK, toReportDTO(report))
}

// =============================================================================
// TRANSACTION HANDLERS
// =============================================================================

// ListTransactions returns the ledger, optionally restricted to a range.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var (
		txs []finance.Transaction
		err error
	)

	if r.URL.Query().Get("start") != "" || r.URL.Query().Get("end") != "" {
		start, perr := parseDateParam(r, "start")
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid start date", perr)
			return
		}
		end, perr := parseDateParam(r, "end")
		if perr != nil {
			writeError(w, http.StatusBadRequest, "Invalid end date", perr)
			return
		}
		txs, err = h.Store.LoadRange(r.Context(), start, end)
	} else {
		txs, err = h.Store.LoadAll(r.Context())
	}

	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list transactions")
		writeError(w, http.StatusInternalServerError, "Failed to list transactions", err)
		return
	}

	writeJSON(w, http.StatusOK, toTransactionDTOs(txs))
}

// CreateTransactions records one or more transactions. The body is either a
// single object or an array; both paths validate against the closed category
// sets before anything is persisted.
func (h *Handler) CreateTransactions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	var reqs []CreateTransactionRequest
	if err := json.Unmarshal(body, &reqs); err != nil {
		// Retry as a single object.
		var single CreateTransactionRequest
		if serr := json.Unmarshal(body, &single); serr != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body", serr)
			return
		}
		reqs = []CreateTransactionRequest{single}
	}

	txs := make([]finance.Transaction, 0, len(reqs))
	for _, req := range reqs {
		tx, err := toTransaction(req)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid transaction", err)
			return
		}
		txs = append(txs, tx)
	}

	if err := h.Store.AppendBatch(r.Context(), txs); err != nil {
		if finance.IsClientError(err) {
			writeError(w, http.StatusConflict, "Duplicate transaction", err)
			return
		}
		h.Log.Error().Err(err).Int("count", len(txs)).Msg("failed to append transactions")
		writeError(w, http.StatusInternalServerError, "Failed to record transactions", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionDTOs(txs))
}

// =============================================================================
// HEALTH HANDLER
// =============================================================================

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// REQUEST PARSING
// =============================================================================

func toTransaction(req CreateTransactionRequest) (finance.Transaction, error) {
	txType, err := finance.ParseTxType(req.Type)
	if err != nil {
		return finance.Transaction{}, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return finance.Transaction{}, err
	}

	tx := finance.Transaction{
		ID:          finance.TransactionID(req.ID),
		Date:        date,
		Type:        txType,
		Amount:      decimal.NewFromFloat(req.Amount),
		IsRecurring: req.IsRecurring,
	}

	switch txType {
	case finance.TxIncome:
		tx.IncomeCategory, err = finance.ParseIncomeCategory(req.IncomeCategory)
		if err != nil {
			return finance.Transaction{}, err
		}
	case finance.TxExpense:
		tx.ExpenseCategory, err = finance.ParseExpenseCategory(req.ExpenseCategory)
		if err != nil {
			return finance.Transaction{}, err
		}
		tx.Classification, err = finance.ParseClassification(req.Classification)
		if err != nil {
			return finance.Transaction{}, err
		}
	}

	if req.ParentID != nil {
		pid := finance.TransactionID(*req.ParentID)
		tx.ParentID = &pid
	}
	if req.RecurringEndDate != nil {
		end, err := parseDate(*req.RecurringEndDate)
		if err != nil {
			return finance.Transaction{}, err
		}
		tx.RecurringEndDate = &end
	}

	if err := tx.Validate(); err != nil {
		return finance.Transaction{}, &finance.InvalidTransactionError{ID: tx.ID, Reason: err}
	}
	return tx, nil
}

func parseDateParam(r *http.Request, name string) (finance.TimePoint, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return finance.TimePoint{}, fmt.Errorf("missing %q parameter", name)
	}
	return parseDate(v)
}

func parseDate(s string) (finance.TimePoint, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return finance.TimePoint{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return finance.NewTimePointFromTime(t), nil
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Error = fmt.Sprintf("%s: %v", message, err)
	}
	writeJSON(w, status, resp)
}
