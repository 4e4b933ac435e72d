package rest

import (
	"net/http"
	"time"

	"pawn/core"
	"pawn/handler/render"

	"github.com/spf13/cast"
)

// response the state-change journal
func transactionsHandler(transactionStore core.TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := cast.ToInt(r.URL.Query().Get("limit"))
		if limit <= 0 {
			limit = 500
		}

		offsetTime, err := time.Parse(time.RFC3339Nano, r.URL.Query().Get("offset"))
		if err != nil {
			offsetTime = time.Time{}
		}

		transactions, e := transactionStore.List(ctx, offsetTime, limit)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		render.JSON(w, transactions)
	}
}
