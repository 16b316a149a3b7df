package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"classroom-relay/internal/lms"
	"classroom-relay/internal/service"
	"classroom-relay/internal/service/mocks"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockCompletionService, *mocks.MockLMSService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	completion := mocks.NewMockCompletionService(ctrl)
	lmsService := mocks.NewMockLMSService(ctrl)
	return NewRouter(&Deps{CompletionService: completion, LMSService: lmsService}), completion, lmsService
}

func TestNewRouter(t *testing.T) {
	router, _, _ := newTestRouter(t)
	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		mockSetup  func(*mocks.MockCompletionService, *mocks.MockLMSService)
		wantStatus int
	}{
		{
			name:   "POST /ask",
			method: http.MethodPost,
			path:   "/ask",
			body:   `{"prompt":"hi"}`,
			mockSetup: func(c *mocks.MockCompletionService, _ *mocks.MockLMSService) {
				c.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(service.CompletionResponse{Message: "hello"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "POST /checkAnswer",
			method: http.MethodPost,
			path:   "/checkAnswer",
			body:   `{"prompt":"2+2"}`,
			mockSetup: func(c *mocks.MockCompletionService, _ *mocks.MockLMSService) {
				c.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(service.CompletionResponse{Message: "4"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "POST /question-generator",
			method: http.MethodPost,
			path:   "/question-generator",
			body:   `{"prompt":"one question"}`,
			mockSetup: func(c *mocks.MockCompletionService, _ *mocks.MockLMSService) {
				c.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(service.CompletionResponse{Message: "?"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /ask invalid body",
			method:     http.MethodPost,
			path:       "/ask",
			body:       `nope`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "GET /ask method not allowed",
			method:     http.MethodGet,
			path:       "/ask",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:   "POST /canvasProxy",
			method: http.MethodPost,
			path:   "/canvasProxy",
			body:   `{"apiKey":"k","classCode":"1"}`,
			mockSetup: func(_ *mocks.MockCompletionService, l *mocks.MockLMSService) {
				l.EXPECT().Course(gomock.Any(), gomock.Any()).Return(lms.Response{StatusCode: http.StatusOK, Body: json.RawMessage(`{}`)}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GET /sections",
			method: http.MethodGet,
			path:   "/sections?apiKey=k&classCode=1",
			mockSetup: func(_ *mocks.MockCompletionService, l *mocks.MockLMSService) {
				l.EXPECT().Sections(gomock.Any(), service.CourseRequest{APIKey: "k", ClassCode: "1"}).
					Return(lms.Response{StatusCode: http.StatusOK, Body: json.RawMessage(`[]`)}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "POST /students",
			method: http.MethodPost,
			path:   "/students",
			body:   `{"apiKey":"k","courseId":"1","sectionName":"A"}`,
			mockSetup: func(_ *mocks.MockCompletionService, l *mocks.MockLMSService) {
				l.EXPECT().Students(gomock.Any(), gomock.Any()).Return(lms.Response{StatusCode: http.StatusOK, Body: json.RawMessage(`[]`)}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "POST /announcements",
			method: http.MethodPost,
			path:   "/announcements",
			body:   `{"apiKey":"k","courseId":"1","title":"t","message":"m"}`,
			mockSetup: func(_ *mocks.MockCompletionService, l *mocks.MockLMSService) {
				l.EXPECT().CreateAnnouncement(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "GET /announcements method not allowed",
			method:     http.MethodGet,
			path:       "/announcements",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "GET /test",
			method:     http.MethodGet,
			path:       "/test",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/nowhere",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "preflight",
			method:     http.MethodOptions,
			path:       "/ask",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, completion, lmsService := newTestRouter(t)
			if tt.mockSetup != nil {
				tt.mockSetup(completion, lmsService)
			}

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v (body %s)", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("Router should tag responses with a request id")
	}
}

func TestRouter_JSONErrors(t *testing.T) {
	router, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("404 body is not JSON: %v", err)
	}
	if body["error"] != "Not found" {
		t.Errorf("404 error = %q, want Not found", body["error"])
	}
}
