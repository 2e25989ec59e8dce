package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Numeric carries SQL numeric columns as decimal strings. Clients may send
// either a JSON number or a quoted decimal ("19.99"); it always serializes
// back as a string so money values survive the wire without float drift.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}
	if s == "" {
		*n = ""
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("invalid numeric value %q", s)
	}
	*n = Numeric(s)
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(n))
}

func (n Numeric) Float64() (float64, error) {
	if n == "" {
		return 0, nil
	}
	return strconv.ParseFloat(string(n), 64)
}

// Units is an integer count that also accepts a quoted number in JSON,
// matching payloads like {"stock": "5"}.
type Units int

func (u *Units) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer value %q", s)
	}
	*u = Units(v)
	return nil
}
