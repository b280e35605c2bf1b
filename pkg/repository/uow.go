// Package repository defines the persistence contracts consumed by the
// service layer. Implementations live in infra/repository.
package repository

import (
	"context"

	accountrepo "github.com/gibraltarbank/gibraltar/pkg/repository/account"
	depositrepo "github.com/gibraltarbank/gibraltar/pkg/repository/deposit"
	profilerepo "github.com/gibraltarbank/gibraltar/pkg/repository/profile"
	transactionrepo "github.com/gibraltarbank/gibraltar/pkg/repository/transaction"
	transferrepo "github.com/gibraltarbank/gibraltar/pkg/repository/transfer"
	userrepo "github.com/gibraltarbank/gibraltar/pkg/repository/user"
)

// UnitOfWork provides transactional work and repository access bound to a
// single DB session. Repositories obtained inside Do share the transaction;
// repositories obtained outside run on the base session.
//
// Multi-step writes (transfer submission, deposit submission, the update
// utility's deposit-completion credit) go through Do so partial application
// cannot occur.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	Users() userrepo.Repository
	Profiles() profilerepo.Repository
	Accounts() accountrepo.Repository
	Transactions() transactionrepo.Repository
	Deposits() depositrepo.Repository
	Transfers() transferrepo.Repository
}
