package monopay

import (
	"encoding/json"
	"math"
	"strconv"
)

// Record is a string-keyed store for whatever the gateway returns. Typed records compose it
// and add accessors for documented fields; unknown fields stay reachable through Get.
//
// A Record is owned by one goroutine at a time.
type Record struct {
	data   map[string]any
	client *Client
}

// Get returns the value under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.data[key]
	return v, ok
}

func (r *Record) Set(key string, value any) {
	if r.data == nil {
		r.data = map[string]any{}
	}
	r.data[key] = value
}

// ReplaceAll drops the current data and keeps a copy of data instead. Fields are never merged.
func (r *Record) ReplaceAll(data map[string]any) {
	r.data = make(map[string]any, len(data))
	for k, v := range data {
		r.data[k] = v
	}
}

// Data returns a shallow copy of the stored fields.
func (r *Record) Data() map[string]any {
	out := make(map[string]any, len(r.data))
	for k, v := range r.data {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the stored fields as a JSON object.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.data == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.data)
}

// BindClient attaches the shared client used by gateway operations.
func (r *Record) BindClient(c *Client) *Record {
	r.client = c
	return r
}

func (r *Record) gateway() (*Client, error) {
	if r.client == nil {
		return nil, errClientMissing()
	}
	return r.client, nil
}

// StringValue returns the value under key when it is a string (or a JSON number, rendered as text).
func (r *Record) StringValue(key string) string {
	switch v := r.data[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}

// IntValue returns the value under key as an integer. ok is false when absent or not integral.
func (r *Record) IntValue(key string) (int64, bool) {
	v, ok := r.data[key]
	if !ok {
		return 0, false
	}
	return toInt64(v)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= 0x1p63 || f < -0x1p63 {
		return 0, false
	}
	return int64(f), true
}
