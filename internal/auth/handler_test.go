package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hmondejar/notekit/internal/auth"
	"github.com/hmondejar/notekit/internal/pkg/message"
	"github.com/hmondejar/notekit/internal/pkg/web"
	"github.com/hmondejar/notekit/internal/user"
)

func newJSONRequest(method, target string, params any) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if params != nil {
		req = req.WithContext(web.NewContextWithParams(req.Context(), params))
	}
	return req
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid credentials",
			loginErr:   auth.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    message.InvalidCreds,
		},
		{
			name:       "unverified account",
			loginErr:   auth.ErrUserNotVerified,
			wantStatus: http.StatusForbidden,
			wantMsg:    message.NotVerified,
		},
		{
			name:       "successful login",
			loginErr:   nil,
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{
				LoginFunc: func(_ context.Context, _ auth.LoginParams) (string, error) {
					if tt.loginErr != nil {
						return "", tt.loginErr
					}
					return testToken, nil
				},
			}
			handler := auth.NewHandler(svc)

			req := newJSONRequest(http.MethodPost, "/auth/login", auth.LoginRequest{Email: testEmail, Password: testPass})
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatus {
				t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatus)
			}
			web.AssertContentType(t, res)

			body := web.DecodeJSONResponse(t, res)
			if tt.wantMsg != "" {
				if body["error"] != tt.wantMsg {
					t.Errorf("body[%q] = %v, want: %q", "error", body["error"], tt.wantMsg)
				}
				return
			}

			if body["success"] != true {
				t.Errorf("body[%q] = %v, want: true", "success", body["success"])
			}
			if body["token"] != testToken {
				t.Errorf("body[%q] = %v, want: %q", "token", body["token"], testToken)
			}
		})
	}
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		registerErr error
		wantStatus  int
		wantMsg     string
	}{
		{
			name:        "duplicate email",
			registerErr: auth.ErrUserExists,
			wantStatus:  http.StatusConflict,
			wantMsg:     message.UserExists,
		},
		{
			name:        "verification email failure",
			registerErr: auth.ErrEmailDelivery,
			wantStatus:  http.StatusInternalServerError,
			wantMsg:     message.EmailFailed,
		},
		{
			name:       "successful registration",
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{
				RegisterFunc: func(_ context.Context, _ auth.RegisterParams) (string, error) {
					if tt.registerErr != nil {
						return "", tt.registerErr
					}
					return testToken, nil
				},
			}
			handler := auth.NewHandler(svc)

			req := newJSONRequest(http.MethodPost, "/auth/register", auth.RegisterRequest{Email: testEmail, Password: testPass})
			rec := httptest.NewRecorder()
			handler.Register(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatus {
				t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatus)
			}

			body := web.DecodeJSONResponse(t, res)
			if tt.wantMsg != "" {
				if body["error"] != tt.wantMsg {
					t.Errorf("body[%q] = %v, want: %q", "error", body["error"], tt.wantMsg)
				}
				return
			}

			if body["token"] != testToken {
				t.Errorf("body[%q] = %v, want: %q", "token", body["token"], testToken)
			}
		})
	}
}

func TestHandler_Me(t *testing.T) {
	t.Parallel()

	t.Run("no authenticated user", func(t *testing.T) {
		t.Parallel()

		handler := auth.NewHandler(&auth.StubService{})

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusUnauthorized)
		}
	})

	t.Run("authenticated user", func(t *testing.T) {
		t.Parallel()

		svc := &auth.StubService{
			CurrentUserFunc: func(_ context.Context, userID string) (*user.User, error) {
				return &user.User{ID: userID, Email: testEmail, Verified: true}, nil
			},
		}
		handler := auth.NewHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req = req.WithContext(auth.ContextWithUser(req.Context(), testID))
		rec := httptest.NewRecorder()
		handler.Me(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
		}

		body := web.DecodeJSONResponse(t, res)
		data, ok := body["data"].(map[string]any)
		if !ok {
			t.Fatalf("body[%q] = %v, want an object", "data", body["data"])
		}
		if data["email"] != testEmail {
			t.Errorf("data[%q] = %v, want: %q", "email", data["email"], testEmail)
		}
		if _, leaked := data["password_hash"]; leaked {
			t.Error("password hash must never appear in a response")
		}
	})
}

func TestHandler_ForgotPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "unknown email",
			svcErr:     user.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    message.UserNotFound,
		},
		{
			name:       "email send failure",
			svcErr:     auth.ErrEmailDelivery,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    message.EmailFailed,
		},
		{
			name:       "reset token sent",
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{
				ForgotPasswordFunc: func(_ context.Context, _ string) error {
					return tt.svcErr
				},
			}
			handler := auth.NewHandler(svc)

			req := newJSONRequest(http.MethodPost, "/auth/forgotpassword", auth.ForgotPasswordRequest{Email: testEmail})
			rec := httptest.NewRecorder()
			handler.ForgotPassword(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatus {
				t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatus)
			}

			body := web.DecodeJSONResponse(t, res)
			if tt.wantMsg != "" {
				if body["error"] != tt.wantMsg {
					t.Errorf("body[%q] = %v, want: %q", "error", body["error"], tt.wantMsg)
				}
				return
			}

			if body["data"] != message.EmailSent {
				t.Errorf("body[%q] = %v, want: %q", "data", body["data"], message.EmailSent)
			}
		})
	}
}

func TestHandler_ResetPassword(t *testing.T) {
	t.Parallel()

	t.Run("invalid reset token", func(t *testing.T) {
		t.Parallel()

		svc := &auth.StubService{
			ResetPasswordFunc: func(_ context.Context, _, _ string) (string, error) {
				return "", auth.ErrInvalidResetToken
			},
		}
		handler := auth.NewHandler(svc)

		req := newJSONRequest(http.MethodPut, "/auth/resetpassword/bad", auth.ResetPasswordRequest{Password: testPass})
		req.SetPathValue("resettoken", "bad")
		rec := httptest.NewRecorder()
		handler.ResetPassword(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusBadRequest {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusBadRequest)
		}

		body := web.DecodeJSONResponse(t, res)
		if body["error"] != message.InvalidToken {
			t.Errorf("body[%q] = %v, want: %q", "error", body["error"], message.InvalidToken)
		}
	})

	t.Run("valid reset token issues a new identity token", func(t *testing.T) {
		t.Parallel()

		svc := &auth.StubService{
			ResetPasswordFunc: func(_ context.Context, plainToken, _ string) (string, error) {
				if plainToken != "good" {
					t.Errorf("plainToken = %q, want: %q", plainToken, "good")
				}
				return testToken, nil
			},
		}
		handler := auth.NewHandler(svc)

		req := newJSONRequest(http.MethodPut, "/auth/resetpassword/good", auth.ResetPasswordRequest{Password: testPass})
		req.SetPathValue("resettoken", "good")
		rec := httptest.NewRecorder()
		handler.ResetPassword(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
		}

		body := web.DecodeJSONResponse(t, res)
		if body["token"] != testToken {
			t.Errorf("body[%q] = %v, want: %q", "token", body["token"], testToken)
		}
	})
}

func TestHandler_VerifyEmail(t *testing.T) {
	t.Parallel()

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		handler := auth.NewHandler(&auth.StubService{})

		req := httptest.NewRequest(http.MethodGet, "/auth/verify/", nil)
		rec := httptest.NewRecorder()
		handler.VerifyEmail(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusUnprocessableEntity {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusUnprocessableEntity)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		svc := &auth.StubService{
			VerifyEmailFunc: func(_ context.Context, _ string) error {
				return auth.ErrInvalidToken
			},
		}
		handler := auth.NewHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/auth/verify/tampered", nil)
		req.SetPathValue("id", "tampered")
		rec := httptest.NewRecorder()
		handler.VerifyEmail(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusUnauthorized)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		svc := &auth.StubService{
			VerifyEmailFunc: func(_ context.Context, token string) error {
				if token != "good-token" {
					t.Errorf("token = %q, want: %q", token, "good-token")
				}
				return nil
			},
		}
		handler := auth.NewHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/auth/verify/good-token", nil)
		req.SetPathValue("id", "good-token")
		rec := httptest.NewRecorder()
		handler.VerifyEmail(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
		}

		body := web.DecodeJSONResponse(t, res)
		if body["success"] != true {
			t.Errorf("body[%q] = %v, want: true", "success", body["success"])
		}
	})
}
