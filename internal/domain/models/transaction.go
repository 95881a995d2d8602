package models

import "time"

// TransactionType categorizes ledger entries.
type TransactionType string

const (
	// TransactionVote is funding applied to (or withdrawn from) an idea.
	TransactionVote TransactionType = "vote"
	// TransactionAdjustment is a manual balance change by an admin.
	TransactionAdjustment TransactionType = "adjustment"
)

// Transaction is one entry in a project's append-only credit ledger.
// Balance is a snapshot taken immediately after the entry was applied;
// the balances map remains the authoritative running total.
type Transaction struct {
	TransactionID   string          `json:"transaction_id"`
	UserID          string          `json:"user_id"`
	Created         time.Time       `json:"created"`
	Amount          int64           `json:"amount"` // signed
	Balance         int64           `json:"balance,omitempty"`
	TransactionType TransactionType `json:"transaction_type"`
	TargetID        string          `json:"target_id,omitempty"` // e.g. idea id for vote funding
	Summary         string          `json:"summary,omitempty"`
}

// TransactionCreate is an admin-initiated balance adjustment.
type TransactionCreate struct {
	Amount  int64  `json:"amount"`
	Summary string `json:"summary,omitempty"`
}

// TransactionSearch filters a transaction listing. The mock only
// supports the default (unfiltered) search; any populated filter is
// rejected as not implemented.
type TransactionSearch struct {
	FilterTransactionTypes []TransactionType `json:"filter_transaction_types,omitempty"`
	FilterAmountMin        *int64            `json:"filter_amount_min,omitempty"`
	FilterAmountMax        *int64            `json:"filter_amount_max,omitempty"`
	FilterCreatedStart     *time.Time        `json:"filter_created_start,omitempty"`
	FilterCreatedEnd       *time.Time        `json:"filter_created_end,omitempty"`
}

// Empty reports whether no filters are set.
func (s TransactionSearch) Empty() bool {
	return len(s.FilterTransactionTypes) == 0 &&
		s.FilterAmountMin == nil && s.FilterAmountMax == nil &&
		s.FilterCreatedStart == nil && s.FilterCreatedEnd == nil
}

// Balance wraps a user's current credit balance.
type Balance struct {
	Balance int64 `json:"balance"`
}

// TransactionSearchResult is one page of the caller's ledger, newest
// first, with the current balance attached.
type TransactionSearchResult struct {
	Results []Transaction `json:"results"`
	Cursor  string        `json:"cursor,omitempty"`
	Balance Balance       `json:"balance"`
}
