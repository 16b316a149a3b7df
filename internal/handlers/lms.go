package handlers

import (
	"net/http"

	"classroom-relay/internal/contextutil"
	"classroom-relay/internal/service"
)

// LMSHandler serves the LMS relay routes.
type LMSHandler struct {
	lmsService service.LMSService
}

// NewLMSHandler creates a new LMSHandler.
func NewLMSHandler(lmsService service.LMSService) *LMSHandler {
	return &LMSHandler{lmsService: lmsService}
}

// CourseRequest identifies a course by class code.
//
// swagger:model CourseRequest
type CourseRequest struct {
	APIKey    string     `json:"apiKey"`
	ClassCode identifier `json:"classCode"`
}

// StudentsRequest selects the students of a named section.
//
// swagger:model StudentsRequest
type StudentsRequest struct {
	APIKey      string     `json:"apiKey"`
	CourseID    identifier `json:"courseId"`
	SectionName string     `json:"sectionName"`
}

// AnnouncementRequest is a course announcement.
//
// swagger:model AnnouncementRequest
type AnnouncementRequest struct {
	CourseID identifier `json:"courseId"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	APIKey   string     `json:"apiKey"`
}

// AnnouncementResponse confirms an announcement was created.
//
// swagger:model AnnouncementResponse
type AnnouncementResponse struct {
	Message string `json:"message"`
}

// Course relays a course lookup and returns the upstream JSON unmodified.
//
// swagger:route POST /canvasProxy lms course
//
// # Relay a course lookup
//
// responses:
//
//	'200':
//	  description: Upstream course JSON, relayed unmodified with the upstream 2xx status
//	'400':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'404':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'504':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	default:
//	  description: Upstream error status relayed with an ErrorResponse body
func (h *LMSHandler) Course(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.lmsService.Course(r.Context(), service.CourseRequest{
		APIKey:    req.APIKey,
		ClassCode: string(req.ClassCode),
	})
	if err != nil {
		writeServiceError(w, r.Context(), err, passUpstreamStatus)
		return
	}
	writeRaw(w, resp.StatusCode, resp.Body)
}

// Sections relays a course's section list.
//
// swagger:route GET /sections lms sections
//
// # List the sections of a course
//
// responses:
//
//	'200':
//	  description: Upstream section array, relayed unmodified with the upstream 2xx status
//	'400':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'404':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'504':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	default:
//	  description: Upstream error status relayed with an ErrorResponse body
func (h *LMSHandler) Sections(w http.ResponseWriter, r *http.Request) {
	var req CourseRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.lmsService.Sections(r.Context(), service.CourseRequest{
		APIKey:    req.APIKey,
		ClassCode: string(req.ClassCode),
	})
	if err != nil {
		writeServiceError(w, r.Context(), err, passUpstreamStatus)
		return
	}
	writeRaw(w, resp.StatusCode, resp.Body)
}

// Students returns the student enrollments of one section.
//
// swagger:route GET /students lms students
//
// # List the students of a named section
//
// responses:
//
//	'200':
//	  description: Student enrollments of the section
//	'400':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'404':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'504':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	default:
//	  description: Upstream error status relayed with an ErrorResponse body
func (h *LMSHandler) Students(w http.ResponseWriter, r *http.Request) {
	var req StudentsRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := h.lmsService.Students(r.Context(), service.StudentsRequest{
		APIKey:      req.APIKey,
		CourseID:    string(req.CourseID),
		SectionName: req.SectionName,
	})
	if err != nil {
		writeServiceError(w, r.Context(), err, passUpstreamStatus)
		return
	}
	writeRaw(w, resp.StatusCode, resp.Body)
}

// Announcements publishes a course announcement.
//
// swagger:route POST /announcements lms announcements
//
// # Publish a course announcement
//
// responses:
//
//	'200':
//	  schema:
//	    "$ref": "#/definitions/AnnouncementResponse"
//	'400':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'504':
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	default:
//	  description: Upstream error status relayed with an ErrorResponse body
func (h *LMSHandler) Announcements(w http.ResponseWriter, r *http.Request) {
	var req AnnouncementRequest
	if !decode(w, r, &req) {
		return
	}

	err := h.lmsService.CreateAnnouncement(r.Context(), service.AnnouncementRequest{
		APIKey:   req.APIKey,
		CourseID: string(req.CourseID),
		Title:    req.Title,
		Message:  req.Message,
	})
	if err != nil {
		writeServiceError(w, r.Context(), err, passUpstreamStatus)
		return
	}
	writeJSON(w, http.StatusOK, AnnouncementResponse{Message: "Announcement created"})
}

// decode binds the request and writes a 400 when that fails.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := bindRequest(r, dst); err != nil {
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}
