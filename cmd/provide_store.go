package cmd

import (
	"pawn/core"
	"pawn/store/account"
	"pawn/store/loan"
	"pawn/store/transaction"

	"github.com/fox-one/pkg/store/db"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideAccountStore() core.IAccountStore {
	return account.New()
}

func provideLoanStore() core.ILoanStore {
	return loan.New()
}

func provideTransactionStore(db *db.DB) core.TransactionStore {
	return transaction.New(db)
}
