package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"gymhub/internal/service"
	"gymhub/internal/storage"
	"gymhub/internal/store"
)

const testJWTSecret = "test-secret"

type RoutesSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *RoutesSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	st := store.Seed()
	photos := storage.NewInMemoryStorage()

	authService := service.NewAuthService(st, testJWTSecret, time.Hour)
	adminService := service.NewAdminService(st, photos)
	trainerService := service.NewTrainerService(st)
	memberService := service.NewMemberService(st, photos)
	reportService := service.NewReportService(st)

	s.router = gin.New()
	SetupRoutes(s.router, testJWTSecret,
		authService, adminService, trainerService, memberService, reportService)
}

func TestRoutesSuite(t *testing.T) {
	suite.Run(t, new(RoutesSuite))
}

func (s *RoutesSuite) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RoutesSuite) login(role, username, password string) string {
	w := s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"role": role, "username": username, "password": password,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.Token)
	return resp.Token
}

func (s *RoutesSuite) TestLogin() {
	s.Run("valid credentials return a token", func() {
		token := s.login("admin", "admin", "password123")
		s.NotEmpty(token)
	})

	s.Run("bad credentials return 401", func() {
		w := s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"role": "admin", "username": "admin", "password": "wrong",
		})
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown role fails binding", func() {
		w := s.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"role": "superuser", "username": "admin", "password": "password123",
		})
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *RoutesSuite) TestRegister() {
	w := s.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Rahul Sharma", "email": "rahul@email.com", "phone": "9000000000",
		"password": "secret", "confirmPassword": "secret",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Username string `json:"username"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("rahuls", resp.Username)

	// Duplicate email registers as a conflict.
	w = s.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Other Person", "email": "rahul@email.com",
		"password": "secret", "confirmPassword": "secret",
	})
	s.Equal(http.StatusConflict, w.Code)
}

func (s *RoutesSuite) TestAuthGate() {
	s.Run("protected routes reject missing tokens", func() {
		w := s.request(http.MethodGet, "/api/v1/admin/members", "", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("protected routes reject garbage tokens", func() {
		w := s.request(http.MethodGet, "/api/v1/admin/members", "not-a-token", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("role middleware rejects the wrong role", func() {
		memberToken := s.login("member", "priyak", "pass")
		w := s.request(http.MethodGet, "/api/v1/admin/members", memberToken, nil)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *RoutesSuite) TestAdminEndpoints() {
	token := s.login("admin", "admin", "password123")

	s.Run("member list", func() {
		w := s.request(http.MethodGet, "/api/v1/admin/members", token, nil)
		s.Require().Equal(http.StatusOK, w.Code)

		var members []json.RawMessage
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &members))
		s.Len(members, 3)
	})

	s.Run("dashboard report", func() {
		w := s.request(http.MethodGet, "/api/v1/admin/reports/dashboard", token, nil)
		s.Require().Equal(http.StatusOK, w.Code)

		var stats service.DashboardStats
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
		s.Equal(3, stats.TotalMembers)
		s.Equal(6500, stats.TotalRevenue)
	})

	s.Run("add class with a bad trainer is 404", func() {
		w := s.request(http.MethodPost, "/api/v1/admin/classes", token, gin.H{
			"name": "Ghost", "trainerId": 999, "date": "2026-09-01", "time": "07:00", "capacity": 10,
		})
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("stale token after a username rename is 404", func() {
		w := s.request(http.MethodPut, "/api/v1/admin/profile", token, gin.H{
			"name": "Adarsh Rao", "username": "adarsh",
		})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		// The token still carries the old username as its subject.
		w = s.request(http.MethodPut, "/api/v1/admin/profile", token, gin.H{
			"name": "Adarsh", "username": "admin",
		})
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("announcement lifecycle", func() {
		w := s.request(http.MethodPost, "/api/v1/admin/announcements", token, gin.H{"text": "Hello"})
		s.Require().Equal(http.StatusCreated, w.Code)

		w = s.request(http.MethodPut, "/api/v1/admin/announcements/3", token, gin.H{"text": "Hello again"})
		s.Equal(http.StatusOK, w.Code)

		w = s.request(http.MethodPut, "/api/v1/admin/announcements/99", token, gin.H{"text": "x"})
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *RoutesSuite) TestMemberBookingFlow() {
	token := s.login("member", "priyak", "pass")

	s.Run("books a class", func() {
		w := s.request(http.MethodPost, "/api/v1/member/classes/1003/book", token, nil)
		s.Equal(http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("double booking is a conflict", func() {
		w := s.request(http.MethodPost, "/api/v1/member/classes/1003/book", token, nil)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("cancel then cancel again", func() {
		w := s.request(http.MethodDelete, "/api/v1/member/classes/1003/book", token, nil)
		s.Equal(http.StatusOK, w.Code)

		w = s.request(http.MethodDelete, "/api/v1/member/classes/1003/book", token, nil)
		s.Equal(http.StatusConflict, w.Code)
	})

	s.Run("unknown class is 404", func() {
		w := s.request(http.MethodPost, "/api/v1/member/classes/9999/book", token, nil)
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *RoutesSuite) TestTrainerRequestFlow() {
	memberToken := s.login("member", "ananyai", "pass")
	trainerToken := s.login("trainer", "lakshmi", "pass")

	// Ananya asks for Lakshmi.
	w := s.request(http.MethodPost, "/api/v1/member/trainers/102/request", memberToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	// Lakshmi sees the request.
	w = s.request(http.MethodGet, "/api/v1/trainer/requests", trainerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var requests []service.PendingRequest
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &requests))
	s.Require().Len(requests, 1)
	s.Equal("Ananya Iyer", requests[0].Name)

	// Accepting assigns her.
	w = s.request(http.MethodPost, "/api/v1/trainer/requests/3", trainerToken, gin.H{"decision": "accept"})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodGet, "/api/v1/trainer/members", trainerToken, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var members []struct {
		Name string `json:"name"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &members))
	s.Require().Len(members, 2)
}

func (s *RoutesSuite) TestLibraryEntryRoundTrip() {
	token := s.login("member", "priyak", "pass")

	w := s.request(http.MethodPost, "/api/v1/member/library", token, gin.H{
		"name": "Overhead Press", "muscleGroup": "Shoulders",
		"difficulty": "Intermediate", "equipment": "Barbell",
		"videoUrl": "https://example.com/ohp",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.request(http.MethodGet, "/api/v1/member/library", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var library []struct {
		Name      string `json:"name"`
		Equipment string `json:"equipment"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &library))
	s.Require().Len(library, 14)
	s.Equal("Overhead Press", library[13].Name)
	s.Equal("Barbell", library[13].Equipment)
}

func (s *RoutesSuite) TestMemberLogging() {
	token := s.login("member", "vikramr", "pass")

	w := s.request(http.MethodPost, "/api/v1/member/workouts", token, gin.H{
		"exercise": "Leg Press", "weight": 80, "sets": 3, "reps": 12,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.request(http.MethodGet, "/api/v1/member/workouts", token, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var history []struct {
		Exercise string `json:"exercise"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &history))
	s.Require().Len(history, 1)
	s.Equal("Leg Press", history[0].Exercise)
}
