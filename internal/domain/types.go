package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID is used across domain entities.
type ID int64

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseID parses a path parameter. Only positive ids are accepted.
func ParseID(raw string) (ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n <= 0 {
		return 0, ValidationError{Field: "id", Msg: "invalid id"}
	}
	return ID(n), nil
}

// Status is the backend's one-letter activity flag.
type Status string

const (
	StatusActive   Status = "A"
	StatusInactive Status = "I"
)

func (s Status) Active() bool { return s == StatusActive }

func (s Status) Label() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	default:
		return "N/A"
	}
}

// PageInfo carries the paging totals the backend returns next to list data.
type PageInfo struct {
	PageIndex       int  `json:"pageIndex"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// Text accepts a JSON string, number or null. The backend is not
// consistent about amounts and codes.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }
