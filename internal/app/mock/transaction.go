package mock

import (
	"sort"

	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/app/system/paging"
	"github.com/echoboard/echoboard/internal/domain/models"
)

// TransactionSearch pages through the caller's own ledger, newest
// first, with the current balance attached. Only the default unfiltered
// search is supported.
func (s *Server) TransactionSearch(projectID string, search models.TransactionSearch, cursor string) (models.TransactionSearchResult, error) {
	p := s.project(projectID)
	me, err := s.loggedInUser(projectID)
	if err != nil {
		return fail[models.TransactionSearchResult](s, err)
	}
	if !search.Empty() {
		return fail[models.TransactionSearchResult](s, apierror.NotImplemented("transactionSearch filters"))
	}

	var mine []models.Transaction
	for _, t := range p.Transactions {
		if t.UserID == me.UserID {
			mine = append(mine, t)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Created.After(mine[j].Created)
	})

	page := paging.Cut(mine, paging.DefaultLimit, cursor)
	return respond(s, models.TransactionSearchResult{
		Results: page.Results,
		Cursor:  page.Cursor,
		Balance: models.Balance{Balance: p.Balance(me.UserID)},
	})
}

// TransactionSearchAdmin is not supported by the mock.
func (s *Server) TransactionSearchAdmin(projectID string, search models.TransactionSearch, cursor string) (models.TransactionSearchResult, error) {
	return fail[models.TransactionSearchResult](s, apierror.NotImplemented("transactionSearchAdmin"))
}
