package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/handlers"
	"github.com/diegoclair/chore-board/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ValidToken is the cookie value the auth mock accepts in authenticated tests
const ValidToken = "session-id.signature"

// SigningSecret is the slack signing secret the test handler is built with
const SigningSecret = "slack-signing-secret"

var Now = time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

type ServiceMocks struct {
	TaskStateServiceMock *mocks.MockTaskStateService
	BoardServiceMock     *mocks.MockBoardService
	AllocatorServiceMock *mocks.MockAllocatorService
	AuthServiceMock      *mocks.MockAuthService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, router *gin.Engine, ctrl *gomock.Controller) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		TaskStateServiceMock: mocks.NewMockTaskStateService(ctrl),
		BoardServiceMock:     mocks.NewMockBoardService(ctrl),
		AllocatorServiceMock: mocks.NewMockAllocatorService(ctrl),
		AuthServiceMock:      mocks.NewMockAuthService(ctrl),
	}

	handler := handlers.New(
		m.TaskStateServiceMock,
		m.BoardServiceMock,
		m.AllocatorServiceMock,
		m.AuthServiceMock,
		handlers.Config{
			CookieSecure: true,
			SessionTTL:   720 * time.Hour,
			Location:     time.UTC,
			Now:          func() time.Time { return Now },

			SlackSigningSecret: SigningSecret,
		},
	)

	router = gin.New()
	handler.Register(router)

	return
}

// Authenticate lets ValidToken through the guard any number of times.
func Authenticate(m ServiceMocks) {
	m.AuthServiceMock.EXPECT().
		Verify(gomock.Any(), ValidToken).
		Return(nil, nil).AnyTimes()
}

// WithSession attaches the session cookie to req.
func WithSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: domain.AuthCookieName, Value: ValidToken})
	return req
}

// CreateSlackRequest builds a slash command request signed with signingSecret.
func CreateSlackRequest(t *testing.T, text, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"C123456789"},
		"channel_name": {"husstand"},
		"user_id":      {"U123456789"},
		"user_name":    {"test-user"},
		"command":      {"/opgaver"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(fmt.Sprintf("v0:%s:%s", timestamp, body)))
	return "v0=" + hex.EncodeToString(h.Sum(nil))
}
