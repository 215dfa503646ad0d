package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a float64 that also accepts numeric strings when decoding, so
// form-driven clients may submit `{"targetAmount": "5000"}` and still get a
// plain JSON number back.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return fmt.Errorf("invalid numeric value %s", s)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", raw)
		}
		*n = Number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("invalid numeric value %s", s)
	}
	*n = Number(f)
	return nil
}
