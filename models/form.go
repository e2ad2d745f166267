package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FormString is a free-form text field. Numbers and booleans are accepted and
// stored in their text form; null reads as empty. Objects and arrays are rejected.
type FormString string

func (s *FormString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty form value")
	}

	switch data[0] {
	case 'n':
		*s = ""
		return nil
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FormString(v)
		return nil
	case 't', 'f':
		var v bool
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FormString(strconv.FormatBool(v))
		return nil
	case '{', '[':
		return fmt.Errorf("form value must be text, got %s", data[:1])
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FormString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// SubmittedCode is the otp field as sent by the client. Only a JSON string can
// match an issued code; any other value is kept but marked as not a string.
type SubmittedCode struct {
	Code     string
	IsString bool
}

func (c *SubmittedCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		c.IsString = true
		return json.Unmarshal(data, &c.Code)
	}
	if !json.Valid(data) {
		return fmt.Errorf("invalid otp value")
	}
	c.Code = ""
	c.IsString = false
	return nil
}
