package user

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Year is a graduation year as sent by clients. JSON bodies may carry it as
// a number or as a numeric string ("2019"); an empty string reads as 0.
type Year int

func (y *Year) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))

	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*y = 0
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + strconv.Quote(raw), Type: reflect.TypeOf(0)}
	}

	*y = Year(n)
	return nil
}

// IntPtr converts to the stored form; nil stays nil.
func (y *Year) IntPtr() *int {
	if y == nil {
		return nil
	}

	v := int(*y)
	return &v
}
