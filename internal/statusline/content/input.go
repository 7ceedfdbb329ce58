package content

import (
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Input is the session JSON the host writes to stdin. Lookups are lazy so
// unknown or missing fields cost nothing.
type Input struct {
	raw []byte

	// StartedAt is the panel start time, used for the session clock when the
	// JSON carries no duration
	StartedAt time.Time
	// DefaultDir is used when the JSON names no working directory
	DefaultDir string
}

// ParseInput wraps raw stdin data. NUL bytes and surrounding whitespace are
// trimmed; anything that is not a JSON object yields an empty input.
func ParseInput(data []byte) *Input {
	data = trimNullBytes(data)
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || !jsoniter.Valid([]byte(trimmed)) {
		return &Input{}
	}
	if jsoniter.Get([]byte(trimmed)).ValueType() != jsoniter.ObjectValue {
		return &Input{}
	}
	return &Input{raw: []byte(trimmed)}
}

// trimNullBytes removes NUL bytes some hosts pad stdin with
func trimNullBytes(data []byte) []byte {
	out := data[:0:0]
	for _, b := range data {
		if b != 0 {
			out = append(out, b)
		}
	}
	return out
}

// Valid reports whether the input holds a JSON object
func (in *Input) Valid() bool {
	return in != nil && len(in.raw) > 0
}

func (in *Input) get(path ...interface{}) jsoniter.Any {
	if !in.Valid() {
		return nil
	}
	v := jsoniter.Get(in.raw, path...)
	if v.LastError() != nil {
		return nil
	}
	return v
}

// String returns the value at path when it is a non-empty string or a number
func (in *Input) String(path ...interface{}) string {
	v := in.get(path...)
	if v == nil {
		return ""
	}
	switch v.ValueType() {
	case jsoniter.StringValue, jsoniter.NumberValue:
		return strings.TrimSpace(v.ToString())
	}
	return ""
}

// Uint returns the value at path as an unsigned integer. Numeric strings are
// accepted; fractions and negatives are not.
func (in *Input) Uint(path ...interface{}) (uint64, bool) {
	v := in.get(path...)
	if v == nil {
		return 0, false
	}
	switch v.ValueType() {
	case jsoniter.StringValue, jsoniter.NumberValue:
		n, err := strconv.ParseUint(strings.TrimSpace(v.ToString()), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Dir returns the working directory of the session
func (in *Input) Dir() string {
	if dir := in.String("workspace", "current_dir"); dir != "" {
		return dir
	}
	if dir := in.String("cwd"); dir != "" {
		return dir
	}
	if in == nil {
		return ""
	}
	return in.DefaultDir
}
