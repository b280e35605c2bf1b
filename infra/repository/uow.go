// Package repository provides the GORM-backed persistence layer.
package repository

import (
	"context"

	accountinfra "github.com/gibraltarbank/gibraltar/infra/repository/account"
	depositinfra "github.com/gibraltarbank/gibraltar/infra/repository/deposit"
	profileinfra "github.com/gibraltarbank/gibraltar/infra/repository/profile"
	transactioninfra "github.com/gibraltarbank/gibraltar/infra/repository/transaction"
	transferinfra "github.com/gibraltarbank/gibraltar/infra/repository/transfer"
	userinfra "github.com/gibraltarbank/gibraltar/infra/repository/user"
	"github.com/gibraltarbank/gibraltar/pkg/repository"
	accountrepo "github.com/gibraltarbank/gibraltar/pkg/repository/account"
	depositrepo "github.com/gibraltarbank/gibraltar/pkg/repository/deposit"
	profilerepo "github.com/gibraltarbank/gibraltar/pkg/repository/profile"
	transactionrepo "github.com/gibraltarbank/gibraltar/pkg/repository/transaction"
	transferrepo "github.com/gibraltarbank/gibraltar/pkg/repository/transfer"
	userrepo "github.com/gibraltarbank/gibraltar/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one
// abstraction. Repositories obtained from a UoW handed to Do share the
// transaction session; repositories obtained from the base UoW run on the
// base session.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// session returns the transaction session when inside Do, the base session
// otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do runs the given function in a transaction boundary, providing a UoW
// whose repositories all share the transaction session.
func (u *UoW) Do(
	ctx context.Context,
	fn func(uow repository.UnitOfWork) error,
) error {
	return u.session().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// Users returns a user repository bound to the current session.
func (u *UoW) Users() userrepo.Repository {
	return userinfra.New(u.session())
}

// Profiles returns a profile repository bound to the current session.
func (u *UoW) Profiles() profilerepo.Repository {
	return profileinfra.New(u.session())
}

// Accounts returns an account repository bound to the current session.
func (u *UoW) Accounts() accountrepo.Repository {
	return accountinfra.New(u.session())
}

// Transactions returns a transaction repository bound to the current session.
func (u *UoW) Transactions() transactionrepo.Repository {
	return transactioninfra.New(u.session())
}

// Deposits returns a deposit repository bound to the current session.
func (u *UoW) Deposits() depositrepo.Repository {
	return depositinfra.New(u.session())
}

// Transfers returns a transfer repository bound to the current session.
func (u *UoW) Transfers() transferrepo.Repository {
	return transferinfra.New(u.session())
}
