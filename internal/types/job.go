// Package types provides type definitions for the job-board wire format shared by the API client, search engine and CLI.
package types

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Common job type values. The server also accepts free text, so these are
// conveniences rather than a closed set.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeInternship = "Internship"
	JobTypeFreelance  = "Freelance"
)

// Amount is a salary figure as the server sends it: a number, a numeric
// string, an empty string or null. Absent and unparseable values decode to
// an unset Amount rather than failing the whole payload.
type Amount struct {
	Value float64
	Set   bool
}

// UnmarshalJSON accepts numbers, numeric strings, "" and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = Amount{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount{}
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*a = Amount{}
			return nil
		}
		*a = Amount{Value: v, Set: true}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*a = Amount{}
		return nil
	}
	*a = Amount{Value: v, Set: true}
	return nil
}

// MarshalJSON emits the numeric value, or null when unset.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Set {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

// Salary is the structured pay range attached to a job posting.
// Min > Max is possible in server data and must be tolerated by callers.
type Salary struct {
	Min      Amount `json:"min"`
	Max      Amount `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// MinOrZero returns the lower bound, treating missing values as 0.
func (s Salary) MinOrZero() float64 {
	if !s.Min.Set {
		return 0
	}
	return s.Min.Value
}

// MaxOrInf returns the upper bound, treating missing values as +Inf.
func (s Salary) MaxOrInf() float64 {
	if !s.Max.Set {
		return math.Inf(1)
	}
	return s.Max.Value
}

// Job represents one posting as returned by the job-board API.
type Job struct {
	ID                  string     `json:"_id,omitempty"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Type                string     `json:"type"`
	Description         string     `json:"description,omitempty"`
	Requirements        []string   `json:"requirements,omitempty"`
	Benefits            []string   `json:"benefits,omitempty"`
	Salary              Salary     `json:"salary"`
	NumberOfPositions   int        `json:"numberOfPositions,omitempty"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	PostedBy            string     `json:"postedBy,omitempty"`
	Industry            string     `json:"industry,omitempty"`
}
