package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexNumberError reports a JSON value that is neither a number nor a numeric string.
type FlexNumberError struct {
	Value string
}

func (e *FlexNumberError) Error() string {
	return fmt.Sprintf("value %s is not numeric", e.Value)
}

// FlexFloat decodes from a JSON number or a numeric string, the way HTML forms submit values.
// Inf and NaN spellings are rejected.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	raw, err := numericLiteral(data)
	if err != nil || raw == "" {
		return err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return &FlexNumberError{Value: string(data)}
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt is the integer counterpart of FlexFloat.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	raw, err := numericLiteral(data)
	if err != nil || raw == "" {
		return err
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return &FlexNumberError{Value: string(data)}
	}
	*i = FlexInt(v)
	return nil
}

func (i FlexInt) Int() int {
	return int(i)
}

// numericLiteral returns "" for JSON null so pointer fields stay nil.
func numericLiteral(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", &FlexNumberError{Value: string(data)}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", &FlexNumberError{Value: string(data)}
		}
		return s, nil
	}

	return string(data), nil
}
