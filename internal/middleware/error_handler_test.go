package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/dto"
	apperrors "github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/errors"
	"github.com/ByronBenton/Transaction-Data-Quality-Savings-Explorer/internal/handlers"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite runs dataset-shaped routes whose handlers return raw
// errors, so every response passes through CustomHTTPErrorHandler.
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Use(RequestID())

	datasets := e.Group("/api/v1/datasets")
	datasets.POST("/generate", func(c echo.Context) error {
		var req dto.GenerateDatasetRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		return c.Validate(req)
	})
	datasets.POST("/upload", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, echomiddleware.BodyLimit("1K"))
	datasets.GET("/:id", func(c echo.Context) error {
		return fmt.Errorf("failed to load dataset %s: %w", c.Param("id"), fmt.Errorf("sqlite: no such table: datasets"))
	})
	datasets.GET("/:id/records", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "records export is JSON only")
	})
	datasets.GET("/:id/completion", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot)
	})
	datasets.POST("/:id/savings", func(c echo.Context) error {
		var req dto.SavingsRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		if err := c.Validate(req); err != nil {
			return fmt.Errorf("savings request: %w", err)
		}
		return c.NoContent(http.StatusOK)
	})

	s.echo = e
}

func (s *ErrorHandlerTestSuite) serve(method, target, body string) (*httptest.ResponseRecorder, apperrors.ErrorResponse) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set(TraceIDHeader, "trace-explorer-1")

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var response apperrors.ErrorResponse
	if rec.Code >= http.StatusBadRequest {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response), rec.Body.String())
	}
	return rec, response
}

func (s *ErrorHandlerTestSuite) TestUnknownRouteIsDatasetNotFound() {
	rec, response := s.serve(http.MethodGet, "/api/v1/datasets/abc/nope", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(apperrors.DatasetNotFound), response.Error.Code)
	s.Equal("trace-explorer-1", response.Error.TraceID)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestWrongMethodKeepsStatus() {
	rec, response := s.serve(http.MethodDelete, "/api/v1/datasets/abc/savings", "")

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), response.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestSavingsRejectsPaddedTransactionID() {
	rec, response := s.serve(http.MethodPost, "/api/v1/datasets/abc/savings",
		`{"fixed_ids":["TXN-100001"," TXN-100002"]}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(apperrors.ValidationGeneral), response.Error.Code)
	s.Equal([]string{
		"fixed_ids[1]: must be a non-blank transaction ID without surrounding whitespace",
	}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestGenerateValidationDetails() {
	testCases := []struct {
		name    string
		body    string
		details []string
	}{
		{
			name:    "rows below minimum",
			body:    `{"rows":-5}`,
			details: []string{"rows: must be at least 1"},
		},
		{
			name: "rows above maximum and path in name",
			body: `{"rows":100001,"name":"../march.csv"}`,
			details: []string{
				"name: must not contain path separators or control characters",
				"rows: must be at most 100000",
			},
		},
		{
			name:    "name too long",
			body:    `{"name":"` + strings.Repeat("a", 256) + `"}`,
			details: []string{"name: must be at most 255 characters long"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, response := s.serve(http.MethodPost, "/api/v1/datasets/generate", tc.body)

			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal(tc.details, response.Error.Details)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestOversizedUploadIsLoadFileTooLarge() {
	rec, response := s.serve(http.MethodPost, "/api/v1/datasets/upload", strings.Repeat("x", 4096))

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Equal(string(apperrors.LoadFileTooLarge), response.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestUnsupportedMediaTypeIsLoadUnsupportedType() {
	rec, response := s.serve(http.MethodGet, "/api/v1/datasets/abc/records", "")

	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	s.Equal(string(apperrors.LoadUnsupportedType), response.Error.Code)
	s.Equal("records export is JSON only", response.Error.Message)
}

func (s *ErrorHandlerTestSuite) TestUnmappedStatusIsUnexpectedError() {
	rec, response := s.serve(http.MethodGet, "/api/v1/datasets/abc/completion", "")

	s.Equal(http.StatusTeapot, rec.Code)
	s.Equal(string(apperrors.SystemUnexpectedError), response.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestInternalErrorIsNotLeaked() {
	rec, response := s.serve(http.MethodGet, "/api/v1/datasets/abc", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apperrors.SystemInternalError), response.Error.Code)
	s.NotContains(rec.Body.String(), "sqlite")
	s.Equal("trace-explorer-1", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestMissingTraceIDReportsUnknown() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/abc", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	CustomHTTPErrorHandler(fmt.Errorf("repository offline"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), `"trace_id":"unknown"`)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/datasets/abc/merchants", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	_ = c.JSON(http.StatusOK, handlers.SuccessResponse{Data: []string{"Acme"}})

	CustomHTTPErrorHandler(fmt.Errorf("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}
