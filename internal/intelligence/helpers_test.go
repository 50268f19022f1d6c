package intelligence

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/llm"
)

// mockLLMClient returns a fixed response for testing and records requests.
type mockLLMClient struct {
	response string
	err      error

	mu       sync.Mutex
	requests []llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gpt-4o-mini", Attempts: 1}, nil
}

func (m *mockLLMClient) lastRequest() llm.GenerateRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

func newHTTPTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("skipping HTTP integration test: local listener unavailable (%v)", r)
			}
		}()
		srv = httptest.NewServer(handler)
	}()
	return srv
}

func testPlan() *domain.GeneratedPlan {
	return &domain.GeneratedPlan{
		Days: []domain.PlanDay{
			{Day: "Monday", Blocks: []domain.PlanBlock{
				{Course: "CS101", Tasks: []string{"T1", "T2"}, DurationHours: 3, Notes: "2 task(s) | Priority: normal"},
			}},
			{Day: "Tuesday", Blocks: []domain.PlanBlock{
				{Course: "CS101", Tasks: []string{"T3"}, DurationHours: 1.5, Notes: "1 task(s) | Priority: low"},
			}},
		},
		Summary: "Deterministic summary.",
		DayDescriptions: map[string]string{
			"Monday":  "Monday text.",
			"Tuesday": "Tuesday text.",
		},
		StudyTips: []string{"Tip A", "Tip B"},
	}
}
