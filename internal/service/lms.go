package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_lms_client.go -package=mocks classroom-relay/internal/service LMSClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_lms_service.go -package=mocks classroom-relay/internal/service LMSService

import (
	"context"
	"strings"

	"classroom-relay/internal/contextutil"
	"classroom-relay/internal/lms"
)

// LMSClient is the subset of the LMS REST API the relay uses.
type LMSClient interface {
	GetCourse(ctx context.Context, token, courseID string) (lms.Response, error)
	ListSections(ctx context.Context, token, courseID string) (lms.Response, error)
	ListSectionEnrollments(ctx context.Context, token, sectionID string) (lms.Response, error)
	CreateAnnouncement(ctx context.Context, token, courseID, title, message string) (lms.Response, error)
}

// CourseRequest identifies a course by its class code.
type CourseRequest struct {
	APIKey    string
	ClassCode string
}

// StudentsRequest selects the students of one named section.
type StudentsRequest struct {
	APIKey      string
	CourseID    string
	SectionName string
}

// AnnouncementRequest is a course announcement to publish.
type AnnouncementRequest struct {
	APIKey   string
	CourseID string
	Title    string
	Message  string
}

// LMSService relays course and roster queries to the LMS.
type LMSService interface {
	// Course returns the upstream course document unmodified.
	Course(ctx context.Context, req CourseRequest) (lms.Response, error)
	// Sections returns the upstream sections array unmodified.
	Sections(ctx context.Context, req CourseRequest) (lms.Response, error)
	// Students returns the student enrollments of the section named req.SectionName.
	Students(ctx context.Context, req StudentsRequest) (lms.Response, error)
	// CreateAnnouncement publishes an announcement to the course.
	CreateAnnouncement(ctx context.Context, req AnnouncementRequest) error
}

type lmsService struct {
	client LMSClient
}

// NewLMSService creates a new LMSService.
func NewLMSService(client LMSClient) LMSService {
	return &lmsService{client: client}
}

func (s *lmsService) Course(ctx context.Context, req CourseRequest) (lms.Response, error) {
	if err := require(ctx, field{"apiKey", req.APIKey}, field{"classCode", req.ClassCode}); err != nil {
		return lms.Response{}, err
	}

	resp, err := s.client.GetCourse(ctx, req.APIKey, req.ClassCode)
	if err != nil {
		return lms.Response{}, s.fail(ctx, "failed to fetch course", err)
	}
	return resp, nil
}

func (s *lmsService) Sections(ctx context.Context, req CourseRequest) (lms.Response, error) {
	if err := require(ctx, field{"apiKey", req.APIKey}, field{"classCode", req.ClassCode}); err != nil {
		return lms.Response{}, err
	}

	resp, err := s.client.ListSections(ctx, req.APIKey, req.ClassCode)
	if err != nil {
		return lms.Response{}, s.fail(ctx, "failed to fetch sections", err)
	}
	return resp, nil
}

func (s *lmsService) Students(ctx context.Context, req StudentsRequest) (lms.Response, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := require(ctx,
		field{"apiKey", req.APIKey},
		field{"courseId", req.CourseID},
		field{"sectionName", req.SectionName},
	); err != nil {
		return lms.Response{}, err
	}

	sections, err := s.client.ListSections(ctx, req.APIKey, req.CourseID)
	if err != nil {
		return lms.Response{}, s.fail(ctx, "failed to fetch sections", err)
	}

	sectionID, found, err := lms.FindSectionID(sections.Body, req.SectionName)
	if err != nil {
		return lms.Response{}, s.fail(ctx, "failed to read sections", err)
	}
	if !found {
		logger.InfoContext(ctx, "section not found", "course_id", req.CourseID, "section_name", req.SectionName)
		return lms.Response{}, notFound("Section not found")
	}

	enrollments, err := s.client.ListSectionEnrollments(ctx, req.APIKey, sectionID)
	if err != nil {
		return lms.Response{}, s.fail(ctx, "failed to fetch enrollments", err)
	}

	students, err := lms.FilterByRole(enrollments.Body, lms.StudentRole)
	if err != nil {
		return lms.Response{}, s.fail(ctx, "failed to read enrollments", err)
	}

	return lms.Response{StatusCode: enrollments.StatusCode, Body: students}, nil
}

func (s *lmsService) CreateAnnouncement(ctx context.Context, req AnnouncementRequest) error {
	if err := require(ctx,
		field{"courseId", req.CourseID},
		field{"title", req.Title},
		field{"message", req.Message},
		field{"apiKey", req.APIKey},
	); err != nil {
		return err
	}

	if _, err := s.client.CreateAnnouncement(ctx, req.APIKey, req.CourseID, req.Title, req.Message); err != nil {
		return s.fail(ctx, "failed to create announcement", err)
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "announcement created", "course_id", req.CourseID)
	return nil
}

func (s *lmsService) fail(ctx context.Context, message string, err error) error {
	contextutil.LoggerFromContext(ctx).ErrorContext(ctx, message, "error", err)
	return upstreamError(message, err)
}

type field struct {
	name  string
	value string
}

// require returns a MissingParameter error for the first blank field.
func require(ctx context.Context, fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "missing required parameter", "field", f.name)
			return missingParameter(f.name)
		}
	}
	return nil
}
