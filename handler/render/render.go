package render

import (
	"encoding/json"
	"net/http"

	"pawn/core"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(v)
}

// Error write error
func Error(w http.ResponseWriter, statusCode, errCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(H{"code": errCode, "msg": err.Error()})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusBadRequest, -1, err)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, http.StatusNotFound, -1, err)
}

// OperationError ledger error with its code; anything else is internal
func OperationError(w http.ResponseWriter, err error) {
	if code, ok := err.(core.ErrorCode); ok {
		Error(w, http.StatusBadRequest, int(code), err)
		return
	}

	Error(w, http.StatusInternalServerError, int(core.ErrUnknown), err)
}
