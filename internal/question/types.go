package question

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Question is the formatted record returned to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   string `json:"category"`
}

// Category is the formatted category record.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Page is one page of questions plus the size of the full result set.
type Page struct {
	Questions []Question
	Total     int
}

// CreateRequest is the POST /questions body.
type CreateRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   FlexInt `json:"category"`
	Difficulty FlexInt `json:"difficulty"`
}

// SearchRequest is the POST /questions/search body.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// Difficulty bounds accepted on create.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// FlexInt decodes an integer sent either as a JSON number or as a numeric
// string, which is how browser clients tend to post select values. Decoding
// never fails: Present and Valid record what was seen so callers can reject
// bad values with their own error kind.
type FlexInt struct {
	Value   int
	Present bool
	Valid   bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{}
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	f.Present = true

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			f.Value, f.Valid = n, true
		}
		return nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err != nil {
		return nil
	}
	if num != math.Trunc(num) || num < math.MinInt32 || num > math.MaxInt32 {
		return nil
	}
	f.Value, f.Valid = int(num), true
	return nil
}

// Int returns the decoded value when it was present and integral.
func (f FlexInt) Int() (int, bool) {
	return f.Value, f.Present && f.Valid
}
