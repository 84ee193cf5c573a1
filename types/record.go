package types

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"
)

// QuestionAnswerField returns the record key holding the answer to the n-th
// generated question (1-indexed).
func QuestionAnswerField(n int) string {
	return fmt.Sprintf("question_%d_answer", n)
}

// CandidateRecord accumulates the structured data collected about one
// candidate. Writes go through RFC6902 add operations applied to the JSON form
// of the record, so a write either lands completely or leaves the record
// untouched. Fields are never removed.
type CandidateRecord struct {
	fields map[string]any
}

func NewCandidateRecord() *CandidateRecord {
	return &CandidateRecord{fields: map[string]any{}}
}

type patchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Set stores value under field. Re-setting an existing field replaces it,
// which only happens when the same stage is re-attempted.
func (r *CandidateRecord) Set(field string, value any) error {
	if field == "" {
		return fmt.Errorf("empty field name")
	}
	currentJSON, err := sonic.Marshal(r.fields)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	patchJSON, err := sonic.Marshal([]patchOperation{{
		Op:    "add",
		Path:  "/" + pointerEscaper.Replace(field),
		Value: value,
	}})
	if err != nil {
		return fmt.Errorf("marshal patch: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return fmt.Errorf("decode patch: %w", err)
	}
	modifiedJSON, err := patch.Apply(currentJSON)
	if err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	next := map[string]any{}
	if err := sonic.Unmarshal(modifiedJSON, &next); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	r.fields = next
	return nil
}

func (r *CandidateRecord) Get(field string) (any, bool) {
	v, ok := r.fields[field]
	return v, ok
}

func (r *CandidateRecord) GetString(field string) (string, bool) {
	v, ok := r.fields[field]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (r *CandidateRecord) GetFloat(field string) (float64, bool) {
	v, ok := r.fields[field]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func (r *CandidateRecord) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

func (r *CandidateRecord) Len() int {
	return len(r.fields)
}

// Snapshot returns a deep copy of the record, safe for the caller to keep.
func (r *CandidateRecord) Snapshot() map[string]any {
	data, err := sonic.Marshal(r.fields)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := sonic.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// infoFieldOrder is the display order of the non-answer fields, matching the
// order the conversation collects them in.
var infoFieldOrder = []string{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldYearsExperience,
	FieldPositions,
	FieldLocation,
	FieldTechStack,
}

// InfoFields returns the collected non-answer fields in collection order.
func (r *CandidateRecord) InfoFields() []string {
	out := make([]string, 0, len(infoFieldOrder))
	for _, f := range infoFieldOrder {
		if r.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// AnswerFields returns the populated question answer keys in question order.
func (r *CandidateRecord) AnswerFields() []string {
	out := make([]string, 0, len(r.fields))
	for f := range r.fields {
		if strings.HasPrefix(f, "question_") && strings.HasSuffix(f, "_answer") {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return answerIndex(out[i]) < answerIndex(out[j])
	})
	return out
}

func answerIndex(field string) int {
	middle := strings.TrimSuffix(strings.TrimPrefix(field, "question_"), "_answer")
	n, err := strconv.Atoi(middle)
	if err != nil {
		return 0
	}
	return n
}
