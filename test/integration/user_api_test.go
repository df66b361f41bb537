package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	ginhandler "user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/internal/adapter/gin/router"
	"user-directory-service/internal/adapter/memory"
	"user-directory-service/internal/adapter/session"
	authuc "user-directory-service/internal/usecase/auth"
	useruc "user-directory-service/internal/usecase/user"
	"user-directory-service/pkg/security"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

// UserAPIIntegrationTestSuite drives the real router, store and session
// registry over HTTP. Each test starts from an empty store.
type UserAPIIntegrationTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
}

func (s *UserAPIIntegrationTestSuite) SetupTest() {
	logger := zaptest.NewLogger(s.T())

	repo := memory.NewUserRepoMem(logger)
	registry := session.NewMemoryRegistry(logger)

	userUC := useruc.New(repo, logger)
	authUC := authuc.New(repo, registry, security.NewPlaintextComparer(), logger)

	r := router.SetupRouter(
		ginhandler.NewUserHandler(userUC, logger),
		ginhandler.NewAuthHandler(authUC, logger),
		authUC,
		logger,
	)

	s.server = httptest.NewServer(r)
	s.client = s.server.Client()
}

func (s *UserAPIIntegrationTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *UserAPIIntegrationTestSuite) request(method, path string, body any, headers map[string]string) (*http.Response, []byte) {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.server.URL+path, buf)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp, data
}

func (s *UserAPIIntegrationTestSuite) createUser(name, email, password string) map[string]any {
	resp, body := s.request("POST", "/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode, string(body))

	var created map[string]any
	s.Require().NoError(json.Unmarshal(body, &created))
	return created
}

func (s *UserAPIIntegrationTestSuite) login(email, password string) string {
	resp, body := s.request("POST", "/login", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	var login struct {
		Message    string `json:"message"`
		SessionKey string `json:"sessionKey"`
	}
	s.Require().NoError(json.Unmarshal(body, &login))
	s.Require().NotEmpty(login.SessionKey)
	return login.SessionKey
}

func (s *UserAPIIntegrationTestSuite) TestCreateAssignsSequentialIDsAndLocation() {
	first := s.createUser("Alice", "alice@example.com", "pw-alice")
	second := s.createUser("Bob", "bob@example.com", "pw-bob")

	s.Equal(float64(1), first["id"])
	s.Equal(float64(2), second["id"])

	resp, _ := s.request("POST", "/users", map[string]string{
		"name":     "Carol",
		"email":    "carol@example.com",
		"password": "pw-carol",
	}, nil)
	s.Equal("/users/3", resp.Header.Get("Location"))
}

func (s *UserAPIIntegrationTestSuite) TestCreateValidationFailure() {
	resp, body := s.request("POST", "/users", map[string]string{
		"name":  "Jo",
		"email": "not-an-email",
	}, nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResp struct {
		Errors map[string][]string `json:"errors"`
	}
	s.Require().NoError(json.Unmarshal(body, &errResp))
	s.Contains(errResp.Errors, "Name")
	s.Contains(errResp.Errors, "Email")
	s.Contains(errResp.Errors, "Password")
}

func (s *UserAPIIntegrationTestSuite) TestCreateIgnoresClientSuppliedID() {
	resp, body := s.request("POST", "/users", map[string]any{
		"id":       42,
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "pw",
	}, nil)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]any
	s.Require().NoError(json.Unmarshal(body, &created))
	s.Equal(float64(1), created["id"])
}

func (s *UserAPIIntegrationTestSuite) TestDeletedMaxIDIsReassigned() {
	s.createUser("Alice", "alice@example.com", "pw")
	s.createUser("Bob", "bob@example.com", "pw")

	resp, _ := s.request("DELETE", "/users/2", nil, nil)
	s.Require().Equal(http.StatusNoContent, resp.StatusCode)

	created := s.createUser("Carol", "carol@example.com", "pw")
	s.Equal(float64(2), created["id"], "freed maximum id is handed out again")
}

func (s *UserAPIIntegrationTestSuite) TestGetUser() {
	s.createUser("Alice", "alice@example.com", "pw")

	resp, body := s.request("GET", "/users/1", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var u map[string]any
	s.Require().NoError(json.Unmarshal(body, &u))
	s.Equal("Alice", u["name"])
	s.NotContains(u, "password")

	resp, _ = s.request("GET", "/users/99", nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *UserAPIIntegrationTestSuite) TestUpdateSkipsValidationAndKeepsID() {
	s.createUser("Alice", "alice@example.com", "pw")

	// An empty name would be rejected on create; update takes it as-is.
	resp, body := s.request("PUT", "/users/1", map[string]string{
		"name":  "",
		"email": "new@example.com",
	}, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var updated map[string]any
	s.Require().NoError(json.Unmarshal(body, &updated))
	s.Equal(float64(1), updated["id"])
	s.Equal("", updated["name"])
	s.Equal("new@example.com", updated["email"])

	resp, _ = s.request("PUT", "/users/99", map[string]string{"name": "X", "email": "x@example.com"}, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *UserAPIIntegrationTestSuite) TestUpdateDoesNotTouchPassword() {
	s.createUser("Alice", "alice@example.com", "original-pw")

	resp, _ := s.request("PUT", "/users/1", map[string]string{
		"name":  "Alicia",
		"email": "alicia@example.com",
	}, nil)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	// Login still works with the original password against the new email.
	key := s.login("alicia@example.com", "original-pw")
	s.NotEmpty(key)
}

func (s *UserAPIIntegrationTestSuite) TestDeleteNotFound() {
	resp, _ := s.request("DELETE", "/users/7", nil, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *UserAPIIntegrationTestSuite) TestListRequiresSession() {
	s.createUser("Alice", "alice@example.com", "pw")

	resp, _ := s.request("GET", "/users", nil, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	key := s.login("alice@example.com", "pw")

	resp, body := s.request("GET", "/users", nil, map[string]string{"SessionKey": key})
	s.Equal(http.StatusOK, resp.StatusCode)

	var users []map[string]any
	s.Require().NoError(json.Unmarshal(body, &users))
	s.Len(users, 1)
	s.Equal("Alice", users[0]["name"])
}

func (s *UserAPIIntegrationTestSuite) TestPerIDRoutesAreNotGated() {
	s.createUser("Alice", "alice@example.com", "pw")

	// No SessionKey header anywhere below; only the listing is gated.
	resp, _ := s.request("GET", "/users/1", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.request("PUT", "/users/1", map[string]string{"name": "Alicia", "email": "a@example.com"}, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.request("DELETE", "/users/1", nil, nil)
	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *UserAPIIntegrationTestSuite) TestLoginFailures() {
	s.createUser("Alice", "alice@example.com", "pw")

	resp, _ := s.request("POST", "/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	}, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp, _ = s.request("POST", "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "pw",
	}, nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *UserAPIIntegrationTestSuite) TestLogoutLifecycle() {
	s.createUser("Alice", "alice@example.com", "pw")
	key := s.login("alice@example.com", "pw")

	resp, body := s.request("POST", "/logout", nil, map[string]string{"SessionKey": key})
	s.Equal(http.StatusOK, resp.StatusCode)

	var logout struct {
		Message string `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(body, &logout))
	s.NotEmpty(logout.Message)

	// The key no longer opens the gated listing.
	resp, _ = s.request("GET", "/users", nil, map[string]string{"SessionKey": key})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	// A second logout with the same key is rejected.
	resp, _ = s.request("POST", "/logout", nil, map[string]string{"SessionKey": key})
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *UserAPIIntegrationTestSuite) TestTwoConcurrentSessions() {
	s.createUser("Alice", "alice@example.com", "pw")

	first := s.login("alice@example.com", "pw")
	second := s.login("alice@example.com", "pw")
	s.NotEqual(first, second)

	resp, _ := s.request("POST", "/logout", nil, map[string]string{"SessionKey": first})
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	// The remaining session still opens the listing.
	resp, _ = s.request("GET", "/users", nil, map[string]string{"SessionKey": second})
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *UserAPIIntegrationTestSuite) TestHealthEndpoint() {
	resp, body := s.request("GET", "/health", nil, nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(string(body), "healthy")
}

func TestUserAPIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserAPIIntegrationTestSuite))
}
