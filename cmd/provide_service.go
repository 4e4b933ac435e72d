package cmd

import (
	"pawn/core"
	"pawn/internal/ledger"
	accountservice "pawn/service/account"
	bankservice "pawn/service/bank"
	blockservice "pawn/service/block"
	liquidationservice "pawn/service/liquidation"
	loanservice "pawn/service/loan"
	oracleservice "pawn/service/oracle"
	walletservice "pawn/service/wallet"
)

func provideSystem() *core.System {
	system := &core.System{
		Genesis:            cfg.App.Genesis,
		SecondsPerBlock:    cfg.App.SecondsPerBlock,
		CollateralAssetID:  cfg.Bank.CollateralAssetID,
		MinCollateralRatio: cfg.Bank.MinCollateralRatio,
	}

	if !system.MinCollateralRatio.IsPositive() {
		system.MinCollateralRatio = ledger.MinCollateralRatio
	}

	return system
}

func provideBlockService(system *core.System) core.IBlockService {
	return blockservice.New(system)
}

func providePriceService() core.IPriceOracleService {
	return oracleservice.New(&cfg)
}

func provideWalletService() core.IWalletService {
	return walletservice.New()
}

func provideAccountService(system *core.System, accountStore core.IAccountStore, loanStore core.ILoanStore) core.IAccountService {
	return accountservice.New(system, accountStore, loanStore)
}

func provideLoanService(system *core.System, accountStore core.IAccountStore, loanStore core.ILoanStore) core.ILoanService {
	return loanservice.New(system, accountStore, loanStore)
}

func provideLiquidationService(system *core.System, accountService core.IAccountService, loanService core.ILoanService) core.ILiquidationService {
	return liquidationservice.New(system, accountService, loanService)
}

func provideBankService(
	system *core.System,
	blockService core.IBlockService,
	priceService core.IPriceOracleService,
	accountService core.IAccountService,
	loanService core.ILoanService,
	liquidationService core.ILiquidationService,
	walletService core.IWalletService,
	transactionStore core.TransactionStore,
) core.IBankService {
	return bankservice.New(system, blockService, priceService, accountService, loanService, liquidationService, walletService, transactionStore)
}
