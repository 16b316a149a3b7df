// Package lms is a thin client for the Canvas LMS REST API.
// Response bodies are returned as raw JSON so callers can pass them through unmodified.
package lms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"classroom-relay/internal/contextutil"
	"classroom-relay/internal/upstream"
)

const (
	// maxBodyBytes bounds how much of an upstream body is buffered.
	maxBodyBytes = 4 << 20
	pageSize     = "100"
)

// ErrResponseTooLarge is returned when a successful upstream body exceeds the buffering limit.
var ErrResponseTooLarge = errors.New("LMS response too large")

// Response is a successful upstream response.
type Response struct {
	StatusCode int
	Body       json.RawMessage
}

// Announcement is the payload for a course announcement.
type Announcement struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	IsAnnouncement bool   `json:"is_announcement"`
}

// Client talks to a single LMS domain. The bearer token is supplied per call.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient creates a new LMS client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

// GetCourse fetches a single course.
func (c *Client) GetCourse(ctx context.Context, token, courseID string) (Response, error) {
	return c.do(ctx, http.MethodGet, token, "/api/v1/courses/"+url.PathEscape(courseID), nil, nil)
}

// ListSections lists the sections of a course.
func (c *Client) ListSections(ctx context.Context, token, courseID string) (Response, error) {
	query := url.Values{"per_page": {pageSize}}
	return c.do(ctx, http.MethodGet, token, "/api/v1/courses/"+url.PathEscape(courseID)+"/sections", query, nil)
}

// ListSectionEnrollments lists the enrollments of a section.
func (c *Client) ListSectionEnrollments(ctx context.Context, token, sectionID string) (Response, error) {
	query := url.Values{"per_page": {pageSize}}
	return c.do(ctx, http.MethodGet, token, "/api/v1/sections/"+url.PathEscape(sectionID)+"/enrollments", query, nil)
}

// CreateAnnouncement posts an announcement to a course.
func (c *Client) CreateAnnouncement(ctx context.Context, token, courseID, title, message string) (Response, error) {
	payload := Announcement{
		Title:          title,
		Message:        message,
		IsAnnouncement: true,
	}
	return c.do(ctx, http.MethodPost, token, "/api/v1/courses/"+url.PathEscape(courseID)+"/discussion_topics", nil, payload)
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, payload any) (Response, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Response{}, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if requestID := contextutil.RequestIDFromContext(ctx); requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response: %w", err)
	}
	tooLarge := len(raw) > maxBodyBytes
	if tooLarge {
		raw = raw[:maxBodyBytes]
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, &upstream.StatusError{
			Service:    "lms",
			StatusCode: resp.StatusCode,
			URL:        c.BaseURL + path,
			Body:       string(raw),
		}
	}
	if tooLarge {
		return Response{}, fmt.Errorf("%w: %s returned more than %d bytes", ErrResponseTooLarge, path, maxBodyBytes)
	}

	return Response{StatusCode: resp.StatusCode, Body: raw}, nil
}
