package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
)

// FieldError identifies one offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Errors []FieldError `json:"errors"`
}

// writeFieldErrors reports validation failures. Validation runs before any
// handler logic touches the store, so a 422 guarantees nothing was persisted.
func writeFieldErrors(w http.ResponseWriter, errs []FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(validationResponse{Errors: errs})
}

// decodeBody parses the JSON request body into dst. Unknown fields are
// silently ignored. A type mismatch is reported against the offending field;
// anything else unparseable is reported against the body as a whole.
func decodeBody(r *http.Request, dst any) []FieldError {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{Field: typeErr.Field, Message: "must be a " + typeErr.Type.String()}}
	}
	return []FieldError{{Field: "body", Message: "invalid JSON body"}}
}

// validEmail reports whether s is a bare, syntactically valid email address.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
