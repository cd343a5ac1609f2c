package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	orderapp "github.com/stockwise/ims/application/order"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/utils/errors"
)

type response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	ErrorCode string      `json:"error_code,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, response{Success: true, Data: data})
}

// writeError maps application errors onto the shared envelope. A shortage
// error carries its per-line detail in the data field.
func writeError(w http.ResponseWriter, err error) {
	var shortage *orderapp.ShortageError
	if stderrors.As(err, &shortage) {
		ce := errors.SetCustomError(constant.ErrInsufficientStock)
		writeJSON(w, ce.ErrorHTTPCode(), response{
			Message:   ce.Error(),
			ErrorCode: ce.ErrorCode(),
			Data:      shortage.Shortages,
		})
		return
	}

	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		writeJSON(w, ce.ErrorHTTPCode(), response{
			Message:   ce.Error(),
			ErrorCode: ce.ErrorCode(),
		})
		return
	}

	ce = errors.SetCustomError(constant.ErrInternal)
	writeJSON(w, ce.ErrorHTTPCode(), response{
		Message:   ce.Error(),
		ErrorCode: ce.ErrorCode(),
	})
}
