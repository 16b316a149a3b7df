package lms

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// StudentRole is the enrollment role that identifies a student.
const StudentRole = "StudentEnrollment"

// ErrMalformedResponse is returned when an upstream body is not the expected JSON array.
var ErrMalformedResponse = errors.New("malformed LMS response")

// FindSectionID returns the id of the first section whose name equals name exactly.
func FindSectionID(sections json.RawMessage, name string) (string, bool, error) {
	list, err := parseArray(sections)
	if err != nil {
		return "", false, err
	}
	for _, section := range list {
		if section.Get("name").Type == gjson.String && section.Get("name").Str == name {
			id := section.Get("id")
			if !id.Exists() {
				continue
			}
			return id.String(), true, nil
		}
	}
	return "", false, nil
}

// FilterByRole keeps the enrollments whose role equals role exactly.
// Kept elements are copied byte-for-byte from the upstream body.
func FilterByRole(enrollments json.RawMessage, role string) (json.RawMessage, error) {
	list, err := parseArray(enrollments)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	for _, enrollment := range list {
		if enrollment.Get("role").String() != role {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		buf.WriteString(enrollment.Raw)
		first = false
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func parseArray(raw json.RawMessage) ([]gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrMalformedResponse
	}
	result := gjson.ParseBytes(raw)
	if !result.IsArray() {
		return nil, ErrMalformedResponse
	}
	return result.Array(), nil
}
