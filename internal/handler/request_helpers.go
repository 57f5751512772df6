package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ArcCompanion_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// When it returns an error the response has already been written and the
// handler should return.
//
//	var req AddWantListRequest
//	if err := DecodeAndValidateRequest(r, w, &req, ActionAddWantList); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the trimmed query parameter or defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if value == "" {
		return defaultValue
	}
	return value
}

// GetListQueryParam splits a comma separated query parameter, accepting the
// parameter repeated as well. Blank elements are dropped. An absent parameter
// yields nil; a present but empty one yields an empty slice.
func GetListQueryParam(r *http.Request, paramName string) []string {
	values, present := r.URL.Query()[paramName]
	if !present {
		return nil
	}
	out := []string{}
	for _, raw := range values {
		for _, part := range strings.Split(raw, listSeparator) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// GetPathID returns the {id} URL parameter, writing a 400 when it is blank.
func GetPathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, ParamID))
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingID)
		return "", false
	}
	return id, true
}
