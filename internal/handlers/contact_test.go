package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/saverentacar/saverent-backend/internal/handlers"
	"github.com/saverentacar/saverent-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	configured bool
	fail       bool
	sent       []utils.ContactMessage
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) SendContactMessage(msg utils.ContactMessage) error {
	if f.fail {
		return fmt.Errorf("smtp: connection refused")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func contactRouter(m handlers.ContactSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/contact", handlers.SubmitContact(nil, m, nil))
	r.GET("/api/contact", handlers.ContactHealth(m))
	return r
}

func postContact(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContact(t *testing.T) {
	t.Run("relays a valid submission", func(t *testing.T) {
		mailer := &fakeMailer{configured: true}
		w := postContact(t, contactRouter(mailer),
			`{"name":"Jane Doe","email":"jane@example.com","subject":"pricing","message":"How much for a week?"}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"ok": true}`, w.Body.String())

		require.Len(t, mailer.sent, 1)
		msg := mailer.sent[0]
		assert.Equal(t, "Jane Doe", msg.Name)
		assert.Equal(t, "jane@example.com", msg.Email)
		assert.Equal(t, "Pricing Questions", msg.SubjectLabel)
		assert.Equal(t, "How much for a week?", msg.Body)
	})

	t.Run("maps known subject codes to labels", func(t *testing.T) {
		mailer := &fakeMailer{configured: true}
		w := postContact(t, contactRouter(mailer),
			`{"name":"Jane","email":"jane@example.com","subject":"booking","message":"hi"}`)

		assert.Equal(t, 200, w.Code)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "Car Booking Inquiry", mailer.sent[0].SubjectLabel)
	})

	t.Run("passes unrecognized subject codes through", func(t *testing.T) {
		mailer := &fakeMailer{configured: true}
		w := postContact(t, contactRouter(mailer),
			`{"name":"Jane","email":"jane@example.com","subject":"xyz","message":"hi"}`)

		assert.Equal(t, 200, w.Code)
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "xyz", mailer.sent[0].SubjectLabel)
	})

	t.Run("honeypot gets a silent success without a send", func(t *testing.T) {
		mailer := &fakeMailer{configured: true}
		w := postContact(t, contactRouter(mailer),
			`{"name":"Bot","email":"bot@example.com","subject":"pricing","message":"spam","hp":"gotcha"}`)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"ok": true}`, w.Body.String())
		assert.Empty(t, mailer.sent)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		bodies := []string{
			`{"name":"Jane","email":"not-an-email","subject":"pricing","message":"hi"}`,
			`{"name":"Jane","email":"no at sign.com","subject":"pricing","message":"hi"}`,
			`{"name":"Jane","email":"jane@nodot","subject":"pricing","message":"hi"}`,
			`{"name":"  ","email":"jane@example.com","subject":"pricing","message":"hi"}`,
			`{"name":"Jane","email":"jane@example.com","subject":"","message":"hi"}`,
			`{"name":"Jane","email":"jane@example.com","subject":"pricing","message":"   "}`,
			`not json at all`,
			`{}`,
		}

		for _, body := range bodies {
			mailer := &fakeMailer{configured: true}
			w := postContact(t, contactRouter(mailer), body)

			assert.Equal(t, 400, w.Code, body)
			assert.JSONEq(t, `{"error": "Invalid input."}`, w.Body.String(), body)
			assert.Empty(t, mailer.sent, body)
		}
	})

	t.Run("reports missing mail configuration", func(t *testing.T) {
		mailer := &fakeMailer{configured: false}
		w := postContact(t, contactRouter(mailer),
			`{"name":"Jane","email":"jane@example.com","subject":"pricing","message":"hi"}`)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error": "Email not configured."}`, w.Body.String())
		assert.Empty(t, mailer.sent)
	})

	t.Run("hides relay failures behind a generic error", func(t *testing.T) {
		mailer := &fakeMailer{configured: true, fail: true}
		w := postContact(t, contactRouter(mailer),
			`{"name":"Jane","email":"jane@example.com","subject":"pricing","message":"hi"}`)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error": "Failed to send."}`, w.Body.String())
	})
}

func TestContactHealth(t *testing.T) {
	for _, configured := range []bool{true, false} {
		r := contactRouter(&fakeMailer{configured: configured})
		req := httptest.NewRequest("GET", "/api/contact", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var body struct {
			OK     bool `json:"ok"`
			HasEnv bool `json:"hasEnv"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.OK)
		assert.Equal(t, configured, body.HasEnv)
	}
}
