package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diegoclair/chore-board/internal/domain"
	"github.com/diegoclair/chore-board/internal/domain/entity"
	"github.com/diegoclair/chore-board/internal/handlers/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func authCookie(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range recorder.Result().Cookies() {
		if c.Name == domain.AuthCookieName {
			return c
		}
	}
	return nil
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "Should set the session cookie",
			body: `{"password":"hemmelig"}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AuthServiceMock.EXPECT().
					Login(gomock.Any(), "hemmelig").
					Return("abc.sig", &entity.Session{ID: "abc"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				assert.JSONEq(t, `{"ok":true}`, recorder.Body.String())

				cookie := authCookie(recorder)
				require.NotNil(t, cookie)
				assert.Equal(t, "abc.sig", cookie.Value)
				assert.True(t, cookie.HttpOnly)
				assert.True(t, cookie.Secure)
				assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
				assert.Equal(t, "/", cookie.Path)
				assert.Equal(t, 30*24*60*60, cookie.MaxAge)
			},
		},
		{
			name: "Should reject a wrong password",
			body: `{"password":"forkert"}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AuthServiceMock.EXPECT().
					Login(gomock.Any(), "forkert").
					Return("", nil, domain.ErrWrongPassword).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.JSONEq(t, `{"error":"Wrong password"}`, recorder.Body.String())
				assert.Nil(t, authCookie(recorder))
			},
		},
		{
			name: "Should report a missing configuration",
			body: `{"password":"hemmelig"}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AuthServiceMock.EXPECT().
					Login(gomock.Any(), "hemmelig").
					Return("", nil, domain.ErrNotConfigured).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.JSONEq(t, `{"error":"Server not configured"}`, recorder.Body.String())
			},
		},
		{
			name: "Should treat a non-string password as empty",
			body: `{"password":5}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AuthServiceMock.EXPECT().
					Login(gomock.Any(), "").
					Return("", nil, domain.ErrNotConfigured).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
				assert.JSONEq(t, `{"error":"Server not configured"}`, recorder.Body.String())
			},
		},
		{
			name: "Should reject a non-string password when configured",
			body: `{"password":["hemmelig"]}`,
			buildMocks: func(m test.ServiceMocks) {
				m.AuthServiceMock.EXPECT().
					Login(gomock.Any(), "").
					Return("", nil, domain.ErrWrongPassword).Times(1)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.Nil(t, authCookie(recorder))
			},
		},
		{
			name:       "Should reject a malformed body",
			body:       `password=hemmelig`,
			buildMocks: func(m test.ServiceMocks) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router, _ := test.GetHandlerTest(t)
			tt.buildMocks(m)

			// no session cookie: /api/auth is public
			req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			tt.checkResponse(t, recorder)
		})
	}
}

func TestHandler_Logout(t *testing.T) {
	m, router, _ := test.GetHandlerTest(t)

	m.AuthServiceMock.EXPECT().Logout(gomock.Any(), test.ValidToken).Return(nil).Times(1)

	req := test.WithSession(httptest.NewRequest(http.MethodDelete, "/api/auth", nil))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	cookie := authCookie(recorder)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestHandler_Guard(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		withCookie   bool
		buildMocks   func(m test.ServiceMocks)
		wantStatus   int
		wantLocation string
	}{
		{
			name:       "Should let health through",
			method:     http.MethodGet,
			path:       "/health",
			buildMocks: func(m test.ServiceMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Should let the login page through",
			method:     http.MethodGet,
			path:       "/login",
			buildMocks: func(m test.ServiceMocks) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Should return 401 for API calls without a cookie",
			method:     http.MethodGet,
			path:       "/api/task",
			buildMocks: func(m test.ServiceMocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "Should redirect pages without a cookie",
			method:       http.MethodGet,
			path:         "/",
			buildMocks:   func(m test.ServiceMocks) {},
			wantStatus:   http.StatusTemporaryRedirect,
			wantLocation: "/login",
		},
		{
			name:       "Should return 401 for an expired session",
			method:     http.MethodPost,
			path:       "/api/monthly/swap",
			withCookie: true,
			buildMocks: func(m test.ServiceMocks) {
				m.AuthServiceMock.EXPECT().
					Verify(gomock.Any(), test.ValidToken).
					Return(nil, domain.ErrUnauthorized).Times(1)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Should deny when the session store fails",
			method:     http.MethodGet,
			path:       "/api/board",
			withCookie: true,
			buildMocks: func(m test.ServiceMocks) {
				m.AuthServiceMock.EXPECT().
					Verify(gomock.Any(), test.ValidToken).
					Return(nil, assert.AnError).Times(1)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Should serve pages with a valid session",
			method:     http.MethodGet,
			path:       "/",
			withCookie: true,
			buildMocks: func(m test.ServiceMocks) {
				test.Authenticate(m)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router, _ := test.GetHandlerTest(t)
			tt.buildMocks(m)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.withCookie {
				req = test.WithSession(req)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, recorder.Body.String())
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, recorder.Header().Get("Location"))
			}
		})
	}
}

func TestHandler_Health(t *testing.T) {
	_, router, _ := test.GetHandlerTest(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}
