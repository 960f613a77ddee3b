//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

type signupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type generateResponse struct {
	Text string `json:"text"`
}

type generationRecord struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Prompt     string  `json:"prompt"`
	HTMLCode   string  `json:"htmlCode"`
	TemplateID *string `json:"templateId"`
	CreatedAt  string  `json:"createdAt"`
}

type saveResponse struct {
	Generation generationRecord `json:"generation"`
}

type listResponse struct {
	Generations []generationRecord `json:"generations"`
}

const fallbackHTML = `<!DOCTYPE html><html><head><title>E2E</title></head><body><h1>Smoke test page</h1></body></html>`

func TestE2ESmoke(t *testing.T) {
	baseURL := envOrDefault("SITESMITH_BASE_URL", "http://localhost:8080")

	email, password := uniqueCredentials()
	signup(t, baseURL, email, password)
	token := login(t, baseURL, email, password)

	htmlCode := generateWebsite(t, baseURL, token)

	first := saveGeneration(t, baseURL, token, "First website", "a landing page for a bakery", htmlCode)
	time.Sleep(50 * time.Millisecond) // keep created_at strictly ordered
	second := saveGeneration(t, baseURL, token, "Second website", "a portfolio for a photographer", htmlCode)

	list := listGenerations(t, baseURL, token)
	if len(list.Generations) != 2 {
		t.Fatalf("expected 2 generations, got %d", len(list.Generations))
	}
	if list.Generations[0].ID != second.ID {
		t.Fatalf("expected newest generation first, got %s", list.Generations[0].ID)
	}
	if list.Generations[1].ID != first.ID {
		t.Fatalf("expected oldest generation last, got %s", list.Generations[1].ID)
	}

	deleteGeneration(t, baseURL, token, first.ID)

	list = listGenerations(t, baseURL, token)
	if len(list.Generations) != 1 {
		t.Fatalf("expected 1 generation after delete, got %d", len(list.Generations))
	}
	if list.Generations[0].ID != second.ID {
		t.Fatalf("unexpected surviving generation %s", list.Generations[0].ID)
	}

	// Deleting again must report not found, never a different error
	status := doJSON(t, http.MethodDelete, baseURL+"/api/generations/"+first.ID, token, nil, nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for repeated delete, got %d", status)
	}
}

// TestE2EOwnership validates that one user cannot see or delete another
// user's generations.
func TestE2EOwnership(t *testing.T) {
	baseURL := envOrDefault("SITESMITH_BASE_URL", "http://localhost:8080")

	aliceEmail, alicePassword := uniqueCredentials()
	signup(t, baseURL, aliceEmail, alicePassword)
	aliceToken := login(t, baseURL, aliceEmail, alicePassword)

	bobEmail, bobPassword := uniqueCredentials()
	signup(t, baseURL, bobEmail, bobPassword)
	bobToken := login(t, baseURL, bobEmail, bobPassword)

	saved := saveGeneration(t, baseURL, aliceToken, "Alice site", "a site for alice", fallbackHTML)

	list := listGenerations(t, baseURL, bobToken)
	if len(list.Generations) != 0 {
		t.Fatalf("expected empty list for second user, got %d", len(list.Generations))
	}

	// Foreign delete is indistinguishable from a missing record
	status := doJSON(t, http.MethodDelete, baseURL+"/api/generations/"+saved.ID, bobToken, nil, nil)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign delete, got %d", status)
	}

	list = listGenerations(t, baseURL, aliceToken)
	if len(list.Generations) != 1 {
		t.Fatalf("owner's generation should survive foreign delete, got %d", len(list.Generations))
	}
}

// TestE2ESessionLifecycle validates that logout invalidates the session token.
func TestE2ESessionLifecycle(t *testing.T) {
	baseURL := envOrDefault("SITESMITH_BASE_URL", "http://localhost:8080")

	email, password := uniqueCredentials()
	signup(t, baseURL, email, password)
	token := login(t, baseURL, email, password)

	status := doJSON(t, http.MethodGet, baseURL+"/api/generations", token, nil, &listResponse{})
	if status != http.StatusOK {
		t.Fatalf("expected 200 with fresh session, got %d", status)
	}

	status = doJSON(t, http.MethodPost, baseURL+"/auth/logout", token, nil, nil)
	if status != http.StatusNoContent {
		t.Fatalf("expected 204 from logout, got %d", status)
	}

	status = doJSON(t, http.MethodGet, baseURL+"/api/generations", token, nil, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", status)
	}

	// Logout is idempotent
	status = doJSON(t, http.MethodPost, baseURL+"/auth/logout", token, nil, nil)
	if status != http.StatusNoContent {
		t.Fatalf("expected 204 from repeated logout, got %d", status)
	}
}

// TestE2ENoSecretsInResponses validates that passwords and hashes never
// appear in API responses.
func TestE2ENoSecretsInResponses(t *testing.T) {
	baseURL := envOrDefault("SITESMITH_BASE_URL", "http://localhost:8080")

	email, password := uniqueCredentials()

	client := &http.Client{Timeout: 10 * time.Second}

	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := client.Post(baseURL+"/auth/signup", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if strings.Contains(string(body), password) {
		t.Error("SECURITY: signup response echoed the password")
	}
	if strings.Contains(string(body), "$argon2id$") {
		t.Error("SECURITY: signup response contains a password hash")
	}

	// Bad credentials must produce the same body for unknown email and
	// wrong password
	wrongBody := loginExpectingFailure(t, baseURL, email, "definitely-wrong-pw")
	unknownBody := loginExpectingFailure(t, baseURL, "nobody-"+email, "definitely-wrong-pw")
	if wrongBody != unknownBody {
		t.Errorf("credential failures are distinguishable:\n%s\n%s", wrongBody, unknownBody)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func uniqueCredentials() (string, string) {
	return fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano()), "e2e-password-123"
}

func signup(t *testing.T, baseURL, email, password string) {
	t.Helper()

	payload := map[string]string{"email": email, "password": password}
	var resp signupResponse
	status := doJSON(t, http.MethodPost, baseURL+"/auth/signup", "", payload, &resp)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 from signup, got %d", status)
	}
	if resp.ID == "" || resp.Email != email {
		t.Fatalf("signup response missing fields: %+v", resp)
	}
}

func login(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	payload := map[string]string{"email": email, "password": password}
	var resp loginResponse
	status := doJSON(t, http.MethodPost, baseURL+"/auth/login", "", payload, &resp)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from login, got %d", status)
	}
	if !strings.HasPrefix(resp.Token, "st_") {
		t.Fatalf("login response missing session token: %+v", resp)
	}
	return resp.Token
}

func loginExpectingFailure(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	client := &http.Client{Timeout: 10 * time.Second}
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := client.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 from bad login, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

// generateWebsite calls the completion endpoint. Without a working upstream
// key the server answers 502; the smoke test then falls back to a canned
// page so the persistence flow still runs.
func generateWebsite(t *testing.T, baseURL, token string) string {
	t.Helper()

	payload := map[string]string{"text": "a one-page site for a coffee shop"}
	var resp generateResponse
	status := doJSON(t, http.MethodPost, baseURL+"/api/generate", token, payload, &resp)

	switch status {
	case http.StatusOK:
		if strings.TrimSpace(resp.Text) == "" {
			t.Fatalf("generate returned empty HTML")
		}
		return resp.Text
	case http.StatusBadGateway:
		t.Log("upstream completion unavailable, continuing with canned HTML")
		return fallbackHTML
	default:
		t.Fatalf("expected 200 or 502 from generate, got %d", status)
		return ""
	}
}

func saveGeneration(t *testing.T, baseURL, token, title, prompt, htmlCode string) generationRecord {
	t.Helper()

	payload := map[string]any{
		"title":    title,
		"prompt":   prompt,
		"htmlCode": htmlCode,
	}

	var resp saveResponse
	status := doJSON(t, http.MethodPost, baseURL+"/api/generations", token, payload, &resp)
	if status != http.StatusCreated {
		t.Fatalf("expected 201 from save, got %d", status)
	}
	if resp.Generation.ID == "" || resp.Generation.Title != title {
		t.Fatalf("save response missing fields: %+v", resp.Generation)
	}
	return resp.Generation
}

func listGenerations(t *testing.T, baseURL, token string) listResponse {
	t.Helper()

	var resp listResponse
	status := doJSON(t, http.MethodGet, baseURL+"/api/generations", token, nil, &resp)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from list, got %d", status)
	}
	if resp.Generations == nil {
		t.Fatalf("list response must carry an array, got null")
	}
	return resp
}

func deleteGeneration(t *testing.T, baseURL, token, id string) {
	t.Helper()

	status := doJSON(t, http.MethodDelete, baseURL+"/api/generations/"+id, token, nil, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 from delete, got %d", status)
	}
}

func doJSON(t *testing.T, method, url, token string, body any, out any) int {
	t.Helper()

	var buf io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		buf = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && resp.ContentLength != 0 {
			t.Fatalf("decode response: %v", err)
		}
	}

	return resp.StatusCode
}
