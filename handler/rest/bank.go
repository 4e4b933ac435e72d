package rest

import (
	"net/http"

	"pawn/core"
	"pawn/handler/param"
	"pawn/handler/render"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

type operationParams struct {
	UserID  string          `json:"user_id"`
	AssetID string          `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
	// Account the liquidated account, liquidations only
	Account string `json:"account"`
}

func depositHandler(bankService core.IBankService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params operationParams
		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		if e := bankService.Deposit(r.Context(), params.UserID, params.AssetID, params.Amount); e != nil {
			render.OperationError(w, e)
			return
		}

		render.JSON(w, render.H{"success": true})
	}
}

func withdrawHandler(bankService core.IBankService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params operationParams
		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		amount, e := bankService.Withdraw(r.Context(), params.UserID, params.AssetID, params.Amount)
		if e != nil {
			render.OperationError(w, e)
			return
		}

		render.JSON(w, render.H{"amount": amount})
	}
}

func borrowHandler(bankService core.IBankService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params operationParams
		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		ratio, e := bankService.Borrow(r.Context(), params.UserID, params.AssetID, params.Amount)
		if e != nil {
			render.OperationError(w, e)
			return
		}

		render.JSON(w, render.H{"collateral_ratio": ratio})
	}
}

func repayHandler(bankService core.IBankService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params operationParams
		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		remaining, e := bankService.Repay(r.Context(), params.UserID, params.AssetID, params.Amount)
		if e != nil {
			render.OperationError(w, e)
			return
		}

		render.JSON(w, render.H{"remaining_principal": remaining})
	}
}

func liquidateHandler(bankService core.IBankService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params operationParams
		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		liquidation, e := bankService.Liquidate(r.Context(), params.UserID, params.AssetID, params.Account, params.Amount)
		if e != nil {
			render.OperationError(w, e)
			return
		}

		render.JSON(w, liquidation)
	}
}

func balanceHandler(bankService core.IBankService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user")
		assetID := r.URL.Query().Get("asset")

		balance, e := bankService.GetBalance(r.Context(), userID, assetID)
		if e != nil {
			render.OperationError(w, e)
			return
		}

		render.JSON(w, render.H{"balance": balance})
	}
}

func ratioHandler(bankService core.IBankService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user")
		assetID := r.URL.Query().Get("asset")
		if assetID == "" {
			assetID = core.NativeAssetID
		}

		ratio, e := bankService.GetCollateralRatio(r.Context(), assetID, userID)
		if e != nil {
			render.OperationError(w, e)
			return
		}

		render.JSON(w, render.H{"collateral_ratio": ratio})
	}
}
