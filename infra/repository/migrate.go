package repository

import (
	accountinfra "github.com/gibraltarbank/gibraltar/infra/repository/account"
	depositinfra "github.com/gibraltarbank/gibraltar/infra/repository/deposit"
	profileinfra "github.com/gibraltarbank/gibraltar/infra/repository/profile"
	transactioninfra "github.com/gibraltarbank/gibraltar/infra/repository/transaction"
	transferinfra "github.com/gibraltarbank/gibraltar/infra/repository/transfer"
	userinfra "github.com/gibraltarbank/gibraltar/infra/repository/user"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userinfra.User{},
		&profileinfra.Profile{},
		&accountinfra.Account{},
		&transactioninfra.Transaction{},
		&depositinfra.Deposit{},
		&transferinfra.Transfer{},
	)
}
