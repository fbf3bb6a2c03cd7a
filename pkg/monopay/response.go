package monopay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// interpretResponse turns a raw gateway exchange into a decoded mapping or a classified error.
//
// A 200 is trusted over the payload shape: an error-looking body with status 200 is still a success.
func interpretResponse(statusCode int, body []byte) (map[string]any, error) {
	raw := string(body)
	if len(body) == 0 && statusCode == http.StatusOK {
		return map[string]any{}, nil
	}

	decoded, err := decodeJSON(body)
	if err != nil || isFalsy(decoded) {
		return nil, &Error{
			Kind:       KindDecode,
			Message:    "Cannot decode json response from Mono: " + raw,
			StatusCode: statusCode,
			Body:       raw,
			Err:        err,
		}
	}

	data, isObject := decoded.(map[string]any)
	if statusCode == http.StatusOK {
		if !isObject {
			return nil, &Error{
				Kind:       KindDecode,
				Message:    "Unexpected json response from Mono: " + raw,
				StatusCode: statusCode,
				Body:       raw,
			}
		}
		return data, nil
	}

	if description, ok := present(data, "errorDescription"); ok {
		return nil, &Error{
			Kind:       KindGateway,
			Message:    stringify(description),
			StatusCode: statusCode,
			Body:       raw,
		}
	}

	errCode, hasCode := present(data, "errCode")
	errText, hasText := present(data, "errText")
	if hasCode && hasText {
		return nil, &Error{
			Kind:       KindLegacyGateway,
			Message:    fmt.Sprintf("Error: %s. Error code: %s", stringify(errText), stringify(errCode)),
			StatusCode: statusCode,
			Body:       raw,
		}
	}

	return nil, &Error{
		Kind:       KindUnknownGateway,
		Message:    "Unknown error response: " + raw,
		StatusCode: statusCode,
		Body:       raw,
	}
}

func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level json value")
	}
	return out, nil
}

// isFalsy reports values a loosely-typed decoder would treat as "nothing came back".
func isFalsy(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == "" || val == "0"
	case json.Number:
		f, err := val.Float64()
		return err == nil && f == 0
	case map[string]any:
		return len(val) == 0
	case []any:
		return len(val) == 0
	}
	return false
}

// present reports whether key exists with a non-null value.
func present(data map[string]any, key string) (any, bool) {
	if data == nil {
		return nil, false
	}
	v, ok := data[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return strings.Trim(string(b), `"`)
	}
}
