package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"classroom-relay/internal/llm"
	"classroom-relay/internal/lms"
	"classroom-relay/internal/profanity"
	"classroom-relay/internal/service"
	"classroom-relay/internal/upstream"
)

// fakeUpstreams serves a chat completions endpoint and a small LMS.
type fakeUpstreams struct {
	server   *httptest.Server
	llmCalls atomic.Int32
	lmsCalls atomic.Int32
	reply    string
}

func newFakeUpstreams(t *testing.T) *fakeUpstreams {
	t.Helper()
	f := &fakeUpstreams{reply: "The answer is 4."}
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		f.llmCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": f.reply},
			}},
		})
	})

	lmsRoute := func(pattern string, body string) {
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			f.lmsCalls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			if r.Header.Get("Authorization") != "Bearer good" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = io.WriteString(w, `{"errors":[{"message":"Invalid access token."}]}`)
				return
			}
			_, _ = io.WriteString(w, body)
		})
	}
	lmsRoute("/api/v1/courses/42", `{"id":42,"name":"Algebra"}`)
	lmsRoute("/api/v1/courses/42/sections", `[{"id":7,"name":"Period 1"},{"id":8,"name":"Period 2"}]`)
	lmsRoute("/api/v1/sections/7/enrollments",
		`[{"user_id":1,"role":"StudentEnrollment"},{"user_id":2,"role":"TeacherEnrollment"},{"user_id":3,"role":"StudentEnrollment"}]`)
	lmsRoute("/api/v1/courses/43", `{"id":43,"syllabus_body":"`+strings.Repeat("x", 5<<20)+`"}`)
	lmsRoute("/api/v1/courses/42/discussion_topics", `{"id":99,"is_announcement":true}`)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func newIntegrationRouter(t *testing.T, f *fakeUpstreams) http.Handler {
	t.Helper()
	httpClient := upstream.NewHTTPClient(5*time.Second, 0)
	llmClient := llm.NewClient(f.server.URL+"/v1", "sk-test", "test-model", 64, httpClient)
	filter := profanity.NewFilter(profanity.WordList{Profanities: []string{"darn"}})
	lmsClient := lms.NewClient(f.server.URL, httpClient)

	return NewRouter(&Deps{
		CompletionService: service.NewCompletionService(llmClient, filter),
		LMSService:        service.NewLMSService(lmsClient),
	})
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIntegration_CheckAnswer(t *testing.T) {
	f := newFakeUpstreams(t)
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodPost, "/checkAnswer", `{"prompt":"2+2","expectedAnswer":"4"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"message":"The answer is 4."}`, w.Body.String())
	require.EqualValues(t, 1, f.llmCalls.Load())
}

func TestIntegration_AskFiltersProfanity(t *testing.T) {
	f := newFakeUpstreams(t)
	f.reply = "well darn it"
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodPost, "/ask",
		`{"conversations":[{"role":"system","content":"Be kind."},{"role":"user","content":"hello"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"message":"well **** it"}`, w.Body.String())
}

func TestIntegration_MissingPromptSkipsUpstream(t *testing.T) {
	f := newFakeUpstreams(t)
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodPost, "/question-generator", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.EqualValues(t, 0, f.llmCalls.Load())
}

func TestIntegration_CanvasProxy(t *testing.T) {
	f := newFakeUpstreams(t)
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodPost, "/canvasProxy", `{"apiKey":"good","classCode":42}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":42,"name":"Algebra"}`, w.Body.String())

	w = serve(router, http.MethodPost, "/canvasProxy", `{"apiKey":"bad","classCode":"42"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t,
		`{"error":"Upstream request failed","details":{"errors":[{"message":"Invalid access token."}]}}`,
		w.Body.String())
}

func TestIntegration_OversizedCourseIsNotTruncated(t *testing.T) {
	f := newFakeUpstreams(t)
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodPost, "/canvasProxy", `{"apiKey":"good","classCode":43}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Upstream request failed", body["error"])
	require.Contains(t, body["details"], "LMS response too large")
}

func TestIntegration_MissingParameterSkipsUpstream(t *testing.T) {
	f := newFakeUpstreams(t)
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodPost, "/students", `{"apiKey":"good","courseId":"42"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"Missing required parameter: sectionName"}`, w.Body.String())
	require.EqualValues(t, 0, f.lmsCalls.Load())
}

func TestIntegration_Students(t *testing.T) {
	f := newFakeUpstreams(t)
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodGet, "/students?apiKey=good&courseId=42&sectionName=Period+1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`[{"user_id":1,"role":"StudentEnrollment"},{"user_id":3,"role":"StudentEnrollment"}]`,
		w.Body.String())

	w = serve(router, http.MethodPost, "/students", `{"apiKey":"good","courseId":42,"sectionName":"Period 9"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Section not found"}`, w.Body.String())
}

func TestIntegration_SectionsAndAnnouncements(t *testing.T) {
	f := newFakeUpstreams(t)
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodPost, "/sections", `{"apiKey":"good","classCode":"42"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "Period 2"))

	w = serve(router, http.MethodPost, "/announcements", `{"apiKey":"good","courseId":"42","title":"Quiz","message":"Friday"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Announcement created"}`, w.Body.String())
}

func TestIntegration_Ping(t *testing.T) {
	f := newFakeUpstreams(t)
	router := newIntegrationRouter(t, f)

	w := serve(router, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
	require.EqualValues(t, 0, f.llmCalls.Load()+f.lmsCalls.Load())
}
