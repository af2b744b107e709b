package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/mailbox/internal/domain"
	"github.com/ignite/mailbox/internal/service/email"
	"github.com/ignite/mailbox/internal/service/user"
)

// In-memory repositories backing the handler tests.

type memUsers struct {
	mu    sync.Mutex
	users map[string]string
}

func (m *memUsers) Exists(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.users[username]
	return ok, nil
}

func (m *memUsers) Register(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Username] = u.Password
	return nil
}

type memEmails struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Email
	clock  time.Time
}

func (m *memEmails) Get(_ context.Context, id int64) (*domain.Email, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rows[id]
	if !ok {
		return nil, email.ErrNotFound
	}
	return &e, nil
}

func (m *memEmails) Exists(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[id]
	return ok, nil
}

func (m *memEmails) Insert(_ context.Context, e *domain.Email) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *e
	stored.ID = m.nextID
	m.clock = m.clock.Add(time.Second)
	stored.CreatedAt = m.clock
	m.rows[stored.ID] = stored
	m.nextID++
	return stored.ID, nil
}

func (m *memEmails) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return email.ErrStoreFailed
	}
	delete(m.rows, id)
	return nil
}

func (m *memEmails) AllForRecipient(_ context.Context, recipient string) ([]domain.Email, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Email
	for _, e := range m.rows {
		if e.Recipient == recipient {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memEmails) PageForRecipient(ctx context.Context, recipient string, limit, offset int) ([]domain.Email, error) {
	all, err := m.AllForRecipient(ctx, recipient)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	users := user.NewService(&memUsers{users: map[string]string{}})
	emails := email.NewService(
		&memEmails{nextID: 1, rows: map[int64]domain.Email{}, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		users,
	)
	return SetupRoutes(NewHandlers(users, emails, nil), nil)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, h http.Handler, username, password string) {
	t.Helper()
	rec := doJSON(t, h, "POST", "/register", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, rec.Code, "register %s: %s", username, rec.Body.String())
}

func send(t *testing.T, h http.Handler, subject, sender, recipient string) {
	t.Helper()
	rec := doJSON(t, h, "POST", "/emails", map[string]string{
		"message_subject":    subject,
		"body":               "Test Body",
		"sender_username":    sender,
		"recipient_username": recipient,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "send: %s", rec.Body.String())
}

func TestHandleRegister(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, "POST", "/register", map[string]string{"username": "tester1", "password": "1234"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully.")
}

func TestHandleRegisterDuplicate(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester1", "1234")

	rec := doJSON(t, h, "POST", "/register", map[string]string{"username": "tester1", "password": "1234"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username already exists.")
}

func TestHandleRegisterValidation(t *testing.T) {
	h := newTestRouter(t)

	cases := []map[string]string{
		{"username": "", "password": "1234"},
		{"username": "tester1", "password": ""},
		{"username": "t", "password": "1234"},
		{"username": "tester1", "password": "1"},
	}
	for _, body := range cases {
		rec := doJSON(t, h, "POST", "/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %v", body)
	}
}

func TestHandleRegisterBadJSON(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest("POST", "/register", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListInboxEmpty(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester2", "1234")

	rec := doJSON(t, h, "GET", "/emails?recipient_username=tester2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Emails []emailDTO `json:"emails"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Emails)
	assert.Empty(t, resp.Emails)
}

func TestHandleListInboxMissingRecipient(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, "GET", "/emails?recipient_username=", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Recipient username is required.")
}

func TestHandleListInboxUnknownUser(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, "GET", "/emails?recipient_username=thisUserDoesNotExist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username does not exist.")
}

func TestHandleListInboxWindow(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester1", "1234")
	register(t, h, "tester2", "1234")
	for i := 0; i < 10; i++ {
		send(t, h, fmt.Sprintf("Subject %d", i), "tester1", "tester2")
	}

	rec := doJSON(t, h, "GET", "/emails?recipient_username=tester2&start=3&stop=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Emails []emailDTO `json:"emails"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Emails, 2)
}

func TestHandleListInboxBadWindow(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester2", "1234")

	for _, q := range []string{"start=abc&stop=5", "start=-1&stop=5", "start=5&stop=3", "start=5&stop=5"} {
		rec := doJSON(t, h, "GET", "/emails?recipient_username=tester2&"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "query %q", q)
	}
}

func TestHandleListInboxOrdering(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester1", "1234")
	register(t, h, "tester2", "1234")
	for i := 0; i < 5; i++ {
		send(t, h, fmt.Sprintf("Subject %d", i), "tester1", "tester2")
	}

	rec := doJSON(t, h, "GET", "/emails?recipient_username=tester2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Emails []emailDTO `json:"emails"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Emails, 5)
	for i := 0; i < len(resp.Emails)-1; i++ {
		assert.False(t, resp.Emails[i].CreatedAt.Before(resp.Emails[i+1].CreatedAt),
			"inbox out of order at %d", i)
	}
}

func TestHandleSendEmail(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester1", "1234")
	register(t, h, "tester2", "1234")

	rec := doJSON(t, h, "POST", "/emails", map[string]string{
		"message_subject":    "Test Subject",
		"body":               "Test Body",
		"sender_username":    "tester1",
		"recipient_username": "tester2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email sent successfully.")

	list := doJSON(t, h, "GET", "/emails?recipient_username=tester2", nil)
	assert.Contains(t, list.Body.String(), "Test Subject")
}

func TestHandleSendEmailGhostParticipants(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester1", "1234")

	rec := doJSON(t, h, "POST", "/emails", map[string]string{
		"message_subject":    "Subject",
		"body":               "Body",
		"sender_username":    "ghost",
		"recipient_username": "tester1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, "POST", "/emails", map[string]string{
		"message_subject":    "Subject",
		"body":               "Body",
		"sender_username":    "tester1",
		"recipient_username": "ghost",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetEmail(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester1", "1234")
	register(t, h, "tester2", "1234")
	send(t, h, "Findable", "tester1", "tester2")

	rec := doJSON(t, h, "GET", "/emails/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Findable")

	rec = doJSON(t, h, "GET", "/emails/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, "GET", "/emails/notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, "GET", "/emails/-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeleteEmail(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "tester1", "1234")
	register(t, h, "tester2", "1234")
	send(t, h, "Doomed", "tester1", "tester2")

	rec := doJSON(t, h, "DELETE", "/emails/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Successfully deleted email with id 1")

	// Second delete and subsequent lookup both 404.
	rec = doJSON(t, h, "DELETE", "/emails/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, "GET", "/emails/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
