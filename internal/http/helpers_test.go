package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fed-sentiment/internal/artifact"
	"fed-sentiment/internal/config"
	"fed-sentiment/internal/service"
)

type testServer struct {
	router   *gin.Engine
	loader   *artifact.StubLoader
	sessions *service.SessionTokenService
	cookie   *http.Cookie
}

func setupTestServer(t *testing.T, loader *artifact.StubLoader) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if loader == nil {
		loader = &artifact.StubLoader{}
	}
	logger := zap.NewNop()
	sessions := service.NewSessionTokenService("secret", time.Hour)
	surveySvc := service.NewSurveyService(service.NewMemorySurveyStateStore(), time.Hour, logger)
	catalog := config.DefaultManifest("/data", "https://example.com/plots")
	reportSvc := service.NewReportService(catalog, loader, "https://github.com/example/fed", 1, logger)

	r, err := NewRouter(logger, sessions, false, NewReportHandler(logger, reportSvc, surveySvc), NewSurveyHandler(logger, surveySvc))
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return &testServer{router: r, loader: loader, sessions: sessions}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			s.cookie = c
		}
	}
	return rec
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *testServer) sendJSON(method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}
