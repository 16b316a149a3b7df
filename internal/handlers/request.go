package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// identifier is an opaque LMS id that clients may send as a JSON string or number.
type identifier string

func (id *identifier) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = identifier(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = identifier(n.String())
	return nil
}

// bindRequest normalizes a request into dst: GET requests bind query parameters,
// everything else decodes the JSON body. An empty body leaves dst untouched.
func bindRequest(r *http.Request, dst any) error {
	if r.Method == http.MethodGet {
		values := make(map[string]string, len(r.URL.Query()))
		for key, v := range r.URL.Query() {
			if len(v) > 0 {
				values[key] = v[0]
			}
		}
		raw, err := json.Marshal(values)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dst)
	}

	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
