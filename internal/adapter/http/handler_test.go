package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"adsight/internal/adapter/memory"
	"adsight/internal/adapter/openai"
	"adsight/internal/adapter/password"
	"adsight/internal/adapter/token"
	"adsight/internal/adapter/usecase"
	"adsight/internal/core/domain"
)

type testEnv struct {
	srv    *httptest.Server
	alerts *memory.AlertRepository
}

func newTestEnv(t *testing.T, override ...func(*Services)) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := memory.NewUserRepository()
	campaigns := memory.NewCampaignRepository()
	alerts := memory.NewAlertRepository()
	interactions := memory.NewInteractionRepository()

	tokens, err := token.NewManager("test-secret-that-is-long-enough-123", "adsight", 7*24*time.Hour)
	require.NoError(t, err)

	svc := Services{
		Auth:      usecase.NewAuthUseCase(users, password.BcryptHasher{Cost: bcrypt.MinCost}, tokens, logger),
		Campaigns: usecase.NewCampaignUseCase(campaigns, nil),
		Alerts:    usecase.NewAlertUseCase(alerts),
		Dashboard: usecase.NewDashboardUseCase(campaigns, alerts, usecase.NewAggregator(nil, nil)),
		Insights:  usecase.NewInsightUseCase(campaigns, alerts, interactions, openai.Disabled{}, time.Second, logger),
	}
	for _, o := range override {
		o(&svc)
	}
	srv := httptest.NewServer(NewHandler(svc, Options{}, logger).Router())
	t.Cleanup(srv.Close)
	return &testEnv{srv: srv, alerts: alerts}
}

// client returns an HTTP client with its own cookie jar, i.e. a browser.
func (e *testEnv) client(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func do(t *testing.T, c *http.Client, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func (e *testEnv) register(t *testing.T, c *http.Client, email string) domain.UserSummary {
	t.Helper()
	resp, body := do(t, c, http.MethodPost, e.srv.URL+"/api/register", map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var u domain.UserSummary
	require.NoError(t, json.Unmarshal(body, &u))
	return u
}

func TestRegisterSetsHTTPOnlyCookie(t *testing.T) {
	env := newTestEnv(t)

	resp, body := do(t, http.DefaultClient, http.MethodPost, env.srv.URL+"/api/register", map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), float64(cookie.MaxAge), 5)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.ElementsMatch(t, []string{"id", "firstName", "lastName", "email"}, keys(got))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestRegisterToDashboardFlow(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	user := env.register(t, c, "jane@example.com")

	resp, body := do(t, c, http.MethodGet, env.srv.URL+"/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var d domain.Dashboard
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Equal(t, user.ID, d.User.ID)
	assert.Zero(t, d.Metrics.TotalRevenue)
	assert.Zero(t, d.Metrics.AverageROAS)
	assert.Empty(t, d.Campaigns)
	assert.Len(t, d.RevenueChartData, 6)

	resp, body = do(t, c, http.MethodPost, env.srv.URL+"/api/campaigns", map[string]any{
		"name": "Spring Launch", "platform": "google_ads", "budget": 1500, "objective": "conversions",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var created domain.Campaign
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, domain.StatusDraft, created.Status)
	assert.Zero(t, created.Spend)

	resp, body = do(t, c, http.MethodPatch, env.srv.URL+"/api/campaigns/"+created.ID.String()+"/status", map[string]string{"status": "active"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var activated domain.Campaign
	require.NoError(t, json.Unmarshal(body, &activated))
	assert.Equal(t, domain.StatusActive, activated.Status)
	assert.True(t, activated.LastUpdated.After(created.LastUpdated))

	resp, body = do(t, c, http.MethodPatch, env.srv.URL+"/api/campaigns/"+created.ID.String()+"/status", map[string]string{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Invalid status"}`, string(body))

	resp, body = do(t, c, http.MethodGet, env.srv.URL+"/api/campaigns", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []domain.Campaign
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusActive, list[0].Status)

	resp, body = do(t, c, http.MethodGet, env.srv.URL+"/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &d))
	assert.Len(t, d.Campaigns, 1)
	require.Len(t, d.RecentActivity, 1)
	assert.Equal(t, `Campaign "Spring Launch" performance updated`, d.RecentActivity[0].Message)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, env.client(t), "jane@example.com")

	resp, body := do(t, env.client(t), http.MethodPost, env.srv.URL+"/api/register", map[string]string{
		"firstName": "Other", "lastName": "Person", "email": "JANE@example.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Email already exists"}`, string(body))
}

func TestRegisterValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	resp, body := do(t, env.client(t), http.MethodPost, env.srv.URL+"/api/register", map[string]string{"email": "jane@example.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got errorBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Invalid request", got.Message)
	assert.Len(t, got.Errors, 3)

	resp, _ = do(t, env.client(t), http.MethodPost, env.srv.URL+"/api/register", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, env.client(t), http.MethodPost, env.srv.URL+"/api/register", map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": "long@example.com", "password": strings.Repeat("p", 73),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	got = errorBody{}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "password", got.Errors[0].Field)
}

func TestCreateCampaignBudgetOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.register(t, c, "jane@example.com")

	resp, body := do(t, c, http.MethodPost, env.srv.URL+"/api/campaigns", map[string]any{
		"name": "Huge", "platform": "google_ads", "budget": 1e10, "objective": "conversions",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var got errorBody
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Errors, 1)
	assert.Equal(t, "budget", got.Errors[0].Field)
}

func TestLoginDoesNotRevealWhichPartWasWrong(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, env.client(t), "jane@example.com")

	wrongPass, wrongBody := do(t, env.client(t), http.MethodPost, env.srv.URL+"/api/login",
		map[string]string{"email": "jane@example.com", "password": "nope"})
	unknown, unknownBody := do(t, env.client(t), http.MethodPost, env.srv.URL+"/api/login",
		map[string]string{"email": "ghost@example.com", "password": "nope"})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, unknown.StatusCode)
	assert.Equal(t, string(wrongBody), string(unknownBody))

	ok, _ := do(t, env.client(t), http.MethodPost, env.srv.URL+"/api/login",
		map[string]string{"email": "jane@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusOK, ok.StatusCode)
}

func TestSessionRequired(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/dashboard", "/api/campaigns", "/api/alerts", "/api/ai/insights"} {
		resp, body := do(t, env.client(t), http.MethodGet, env.srv.URL+path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, string(body))
	}

	req, _ := http.NewRequest(http.MethodGet, env.srv.URL+"/api/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "forged.token.value"})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBearerHeaderIsAccepted(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := do(t, http.DefaultClient, http.MethodPost, env.srv.URL+"/api/register", map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "password": "secret1",
	})
	var tok string
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			tok = c.Value
		}
	}
	require.NotEmpty(t, tok)

	req, _ := http.NewRequest(http.MethodGet, env.srv.URL+"/api/campaigns", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	got, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	got.Body.Close()
	assert.Equal(t, http.StatusOK, got.StatusCode)
}

func TestCampaignOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice, bob := env.client(t), env.client(t)
	env.register(t, alice, "alice@example.com")
	env.register(t, bob, "bob@example.com")

	_, body := do(t, alice, http.MethodPost, env.srv.URL+"/api/campaigns", map[string]any{
		"name": "Alice only", "platform": "meta_ads", "budget": 100, "objective": "leads",
	})
	var c domain.Campaign
	require.NoError(t, json.Unmarshal(body, &c))

	resp, _ := do(t, bob, http.MethodPatch, env.srv.URL+"/api/campaigns/"+c.ID.String()+"/status", map[string]string{"status": "paused"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, bob, http.MethodPatch, env.srv.URL+"/api/campaigns/not-a-uuid/status", map[string]string{"status": "paused"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, body = do(t, bob, http.MethodGet, env.srv.URL+"/api/campaigns", nil)
	assert.JSONEq(t, `[]`, string(body))
}

func TestCreateCampaignValidation(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.register(t, c, "jane@example.com")

	resp, body := do(t, c, http.MethodPost, env.srv.URL+"/api/campaigns", map[string]any{
		"name": "x", "platform": "myspace", "budget": -1, "objective": "y",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var got errorBody
	require.NoError(t, json.Unmarshal(body, &got))
	fields := map[string]bool{}
	for _, fe := range got.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["platform"])
	assert.True(t, fields["budget"])
}

func TestAlerts(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	user := env.register(t, c, "jane@example.com")

	alert := &domain.Alert{
		ID: uuid.New(), UserID: user.ID, Type: domain.AlertBudgetWarning, Title: "Budget Warning",
		Message: "Holiday campaign at 85% of daily budget", Severity: domain.SeverityMedium, CreatedAt: time.Now(),
	}
	require.NoError(t, env.alerts.Create(context.Background(), alert))

	resp, body := do(t, c, http.MethodGet, env.srv.URL+"/api/alerts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var alerts []domain.Alert
	require.NoError(t, json.Unmarshal(body, &alerts))
	require.Len(t, alerts, 1)
	assert.False(t, alerts[0].IsRead)

	for i := 0; i < 2; i++ {
		resp, body = do(t, c, http.MethodPatch, env.srv.URL+"/api/alerts/"+alert.ID.String()+"/read", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var read domain.Alert
		require.NoError(t, json.Unmarshal(body, &read))
		assert.True(t, read.IsRead)
	}

	other := env.client(t)
	env.register(t, other, "other@example.com")
	resp, _ = do(t, other, http.MethodPatch, env.srv.URL+"/api/alerts/"+alert.ID.String()+"/read", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChatWithAdvisorDisabled(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.register(t, c, "jane@example.com")

	resp, body := do(t, c, http.MethodPost, env.srv.URL+"/api/ai/chat", map[string]string{"query": "How am I doing?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reply struct {
		Response string          `json:"response"`
		Insights json.RawMessage `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(body, &reply))
	assert.Contains(t, reply.Response, "AI features are currently disabled")
	assert.Equal(t, "null", string(reply.Insights))

	resp, _ = do(t, c, http.MethodPost, env.srv.URL+"/api/ai/chat", map[string]string{"query": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, c, http.MethodGet, env.srv.URL+"/api/ai/insights", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var insights struct {
		Insights []domain.Insight `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(body, &insights))
	assert.Len(t, insights.Insights, 2)

	resp, body = do(t, c, http.MethodGet, env.srv.URL+"/api/ai/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []domain.AiInteraction
	require.NoError(t, json.Unmarshal(body, &history))
	require.Len(t, history, 1)
	assert.Equal(t, "How am I doing?", history[0].Query)

	resp, _ = do(t, c, http.MethodGet, env.srv.URL+"/api/ai/history?limit=1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, bad := range []string{"abc", "-1", "2.5"} {
		resp, body = do(t, c, http.MethodGet, env.srv.URL+"/api/ai/history?limit="+bad, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, bad)
		assert.JSONEq(t, `{"message":"Invalid limit"}`, string(body))
	}
}

func TestLogoutClearsSession(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	env.register(t, c, "jane@example.com")

	resp, body := do(t, c, http.MethodPost, env.srv.URL+"/api/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, string(body))

	resp, _ = do(t, c, http.MethodGet, env.srv.URL+"/api/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, env.client(t), http.MethodPost, env.srv.URL+"/api/logout", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t)

	resp, body := do(t, http.DefaultClient, http.MethodGet, env.srv.URL+"/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	resp, body = do(t, http.DefaultClient, http.MethodGet, env.srv.URL+"/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "adsight_http_requests_total")
}

type panickingDashboard struct{}

func (panickingDashboard) Get(context.Context, *domain.User) (*domain.Dashboard, error) {
	panic("dashboard exploded")
}

func TestPanicIsCountedAsServerError(t *testing.T) {
	env := newTestEnv(t, func(s *Services) { s.Dashboard = panickingDashboard{} })
	c := env.client(t)
	env.register(t, c, "jane@example.com")

	counter := httpRequests.WithLabelValues(http.MethodGet, "/api/dashboard", "500")
	before := testutil.ToFloat64(counter)

	resp, _ := do(t, c, http.MethodGet, env.srv.URL+"/api/dashboard", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
