package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/chore-board/internal/domain"
)

// TaskKey names one task instance. Tasks have no identity of their own beyond
// their index in the catalog list, so reordering a category's tasks moves
// completion history onto different tasks.
type TaskKey struct {
	Week     string `json:"week"`
	Period   string `json:"period"`
	Assignee string `json:"assignee"`
	Category string `json:"category"`
	Index    int    `json:"index"`
}

// ID joins the key components into the stored identifier.
func (k TaskKey) ID() string {
	return strings.Join([]string{
		k.Week,
		k.Period,
		k.Assignee,
		k.Category,
		strconv.Itoa(k.Index),
	}, domain.TaskIDSeparator)
}

// Check returns the first reason the key cannot be stored, or "".
func (k TaskKey) Check() domain.RejectReason {
	fields := []struct {
		value  string
		reason domain.RejectReason
	}{
		{k.Week, domain.ReasonMissingWeek},
		{k.Period, domain.ReasonMissingPeriod},
		{k.Assignee, domain.ReasonMissingAssignee},
		{k.Category, domain.ReasonMissingCategory},
	}
	for _, f := range fields {
		if f.value == "" {
			return f.reason
		}
		if strings.Contains(f.value, domain.TaskIDSeparator) {
			return domain.ReasonReservedChar
		}
	}
	if k.Index < 0 {
		return domain.ReasonInvalidIndex
	}
	return ""
}

// TaskRecord is the completion state of one task instance.
type TaskRecord struct {
	TaskKey
	Done      bool      `json:"done"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskInput is one item of a batch write as sent by a client. Fields stay raw
// so that type mismatches are reported per item instead of failing decoding.
type TaskInput struct {
	Week     json.RawMessage `json:"week"`
	Period   json.RawMessage `json:"period"`
	Assignee json.RawMessage `json:"assignee"`
	Category json.RawMessage `json:"category"`
	Index    json.RawMessage `json:"index"`
	Done     json.RawMessage `json:"done"`
}

// NewTaskInput builds the wire form of a key and done flag.
func NewTaskInput(key TaskKey, done bool) TaskInput {
	str := func(s string) json.RawMessage {
		b, _ := json.Marshal(s)
		return b
	}
	return TaskInput{
		Week:     str(key.Week),
		Period:   str(key.Period),
		Assignee: str(key.Assignee),
		Category: str(key.Category),
		Index:    json.RawMessage(strconv.Itoa(key.Index)),
		Done:     json.RawMessage(strconv.FormatBool(done)),
	}
}

// ParseTaskInputs decodes a batch body: a single object or an array of objects.
func ParseTaskInputs(body []byte) ([]TaskInput, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, &domain.ValidationError{Reason: domain.ReasonEmptyBatch}
	}

	if body[0] == '[' {
		var items []TaskInput
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, &domain.ValidationError{Reason: domain.ReasonMalformed}
		}
		return items, nil
	}

	var item TaskInput
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, &domain.ValidationError{Reason: domain.ReasonMalformed}
	}
	return []TaskInput{item}, nil
}

// Validate turns one input into a record without a timestamp.
func (in TaskInput) Validate() (TaskRecord, domain.RejectReason) {
	var rec TaskRecord

	strs := []struct {
		raw    json.RawMessage
		dst    *string
		reason domain.RejectReason
	}{
		{in.Week, &rec.Week, domain.ReasonMissingWeek},
		{in.Period, &rec.Period, domain.ReasonMissingPeriod},
		{in.Assignee, &rec.Assignee, domain.ReasonMissingAssignee},
		{in.Category, &rec.Category, domain.ReasonMissingCategory},
	}
	for _, s := range strs {
		if len(s.raw) == 0 || json.Unmarshal(s.raw, s.dst) != nil || *s.dst == "" {
			return TaskRecord{}, s.reason
		}
	}

	index, ok := parseIndex(in.Index)
	if !ok {
		return TaskRecord{}, domain.ReasonInvalidIndex
	}
	rec.Index = index

	switch string(bytes.TrimSpace(in.Done)) {
	case "true":
		rec.Done = true
	case "false":
		rec.Done = false
	default:
		return TaskRecord{}, domain.ReasonInvalidDone
	}

	if reason := rec.Check(); reason != "" {
		return TaskRecord{}, reason
	}
	return rec, ""
}

// parseIndex accepts any integral JSON number, so 1, 1.0 and 1e0 are the same
// index. Strings, fractions and out of range values are rejected.
func parseIndex(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' {
		return 0, false
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	if i, err := strconv.Atoi(n.String()); err == nil {
		return i, true
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// ValidateBatch validates every input and fails on the first bad item, so a
// batch is either accepted whole or not at all.
func ValidateBatch(inputs []TaskInput) ([]TaskRecord, error) {
	if len(inputs) == 0 {
		return nil, &domain.ValidationError{Reason: domain.ReasonEmptyBatch}
	}

	records := make([]TaskRecord, 0, len(inputs))
	for i, in := range inputs {
		rec, reason := in.Validate()
		if reason != "" {
			return nil, &domain.ValidationError{Item: i, Reason: reason}
		}
		records = append(records, rec)
	}
	return records, nil
}

// TaskFilter narrows a snapshot read. Empty fields match everything.
type TaskFilter struct {
	Week   string
	Period string
}

// Match reports whether rec passes the filter.
func (f TaskFilter) Match(rec TaskRecord) bool {
	if f.Week != "" && rec.Week != f.Week {
		return false
	}
	if f.Period != "" && rec.Period != f.Period {
		return false
	}
	return true
}

// DecodeStoredRecord parses a persisted record, reporting false for entries
// that are unparseable or incomplete.
func DecodeStoredRecord(payload []byte) (TaskRecord, bool) {
	var rec TaskRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return TaskRecord{}, false
	}
	if rec.Check() != "" {
		return TaskRecord{}, false
	}
	return rec, true
}
