package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// decodeJSON reads one JSON object from the request body into dst. Unknown
// fields are dropped, so a client-supplied owner id never reaches a handler.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if decoder.More() {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}

	return nil
}
