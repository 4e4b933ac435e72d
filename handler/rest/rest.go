package rest

import (
	"errors"
	"net/http"

	"pawn/core"
	"pawn/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(bankService core.IBankService, transactionStore core.TransactionStore) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Post("/deposits", depositHandler(bankService))
	router.Post("/withdrawals", withdrawHandler(bankService))
	router.Post("/loans", borrowHandler(bankService))
	router.Post("/repayments", repayHandler(bankService))
	router.Post("/liquidations", liquidateHandler(bankService))
	router.Get("/accounts/{user}/balance", balanceHandler(bankService))
	router.Get("/accounts/{user}/collateral-ratio", ratioHandler(bankService))
	router.Get("/transactions", transactionsHandler(transactionStore))

	return router
}
