package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bloodlink/internal/client/storage"
	"github.com/iudanet/bloodlink/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL, nil, nil)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, RequestTimeout, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешный обмен учетных данных на токен
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req api.LoginRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, "donor@example.com", req.Email)
		assert.Equal(t, "password123", req.Password)

		w.WriteHeader(http.StatusOK)
		resp := api.LoginResponse{Token: "opaque-token-123"}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	ctx := context.Background()

	resp, err := client.Login(ctx, api.LoginRequest{
		Email:    "donor@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "opaque-token-123", resp.Token)
}

// TestClient_Login_Error проверяет, что сообщение сервера доходит дословно
func TestClient_Login_Error(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:       "invalid credentials",
			statusCode: http.StatusUnauthorized,
			responseBody: api.ErrorResponse{
				Message: "invalid email or password",
			},
			expectedErrMsg: "server error (401): invalid email or password",
		},
		{
			name:       "account not found",
			statusCode: http.StatusNotFound,
			responseBody: api.ErrorResponse{
				Message: "donor not found",
			},
			expectedErrMsg: "server error (404): donor not found",
		},
		{
			name:           "internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "server error (500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, nil, nil)
			ctx := context.Background()

			resp, err := client.Login(ctx, api.LoginRequest{
				Email:    "donor@example.com",
				Password: "wrong",
			})

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)

			var serverErr *ServerError
			assert.ErrorAs(t, err, &serverErr)
			assert.Equal(t, tt.statusCode, serverErr.Status)
		})
	}
}

// TestClient_Register проверяет форму payload регистрации
func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)

		var req api.RegisterRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		assert.Equal(t, "donor@example.com", req.Email)
		assert.Equal(t, api.RoleDonor, req.Role)
		assert.Equal(t, "O-", req.ProfileData.BloodGroup)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.RegisterResponse{Message: "Account created"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)
	ctx := context.Background()

	resp, err := client.Register(ctx, api.RegisterRequest{
		Email:    "donor@example.com",
		Password: "password123",
		Role:     api.RoleDonor,
		ProfileData: api.RegisterProfileData{
			Name:       "Test Donor",
			BloodGroup: "O-",
		},
	})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Account created", resp.Message)
}

// TestClient_OutboundHook_TokenAttached проверяет, что сохраненный токен
// прикладывается как bearer credential
func TestClient_OutboundHook_TokenAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(api.DonorProfile{BloodGroup: "O-"})
	}))
	defer server.Close()

	tokens := &storage.TokenStorageMock{
		GetTokenFunc: func(ctx context.Context) (string, error) {
			return "stored-token", nil
		},
	}

	client := NewClient(server.URL, tokens, nil)

	profile, err := client.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "O-", profile.BloodGroup)
	assert.Len(t, tokens.GetTokenCalls(), 1)
}

// TestClient_OutboundHook_NoToken проверяет, что без токена запрос
// уходит без заголовка Authorization, а не блокируется
func TestClient_OutboundHook_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]api.Hospital{})
	}))
	defer server.Close()

	tokens := &storage.TokenStorageMock{
		GetTokenFunc: func(ctx context.Context) (string, error) {
			return "", storage.ErrTokenNotFound
		},
	}

	client := NewClient(server.URL, tokens, nil)

	_, err := client.GetHospitals(context.Background())
	require.NoError(t, err)
}

// TestClient_OutboundHook_StorageFailure проверяет fail open:
// ошибка credential store трактуется как "токена нет"
func TestClient_OutboundHook_StorageFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode([]api.Donation{})
	}))
	defer server.Close()

	tokens := &storage.TokenStorageMock{
		GetTokenFunc: func(ctx context.Context) (string, error) {
			return "", fmt.Errorf("storage corrupted")
		},
	}

	client := NewClient(server.URL, tokens, nil)

	_, err := client.GetHistory(context.Background())
	require.NoError(t, err)
}

// TestClient_InboundHook_SessionExpired проверяет, что 401 на авторизованный
// запрос синхронно дергает expiry handler и возвращает ErrSessionExpired
func TestClient_InboundHook_SessionExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "token expired"})
	}))
	defer server.Close()

	tokens := &storage.TokenStorageMock{
		GetTokenFunc: func(ctx context.Context) (string, error) {
			return "expired-token", nil
		},
	}

	client := NewClient(server.URL, tokens, nil)

	expiredCalls := 0
	client.SetExpiryHandler(func(ctx context.Context) {
		expiredCalls++
	})

	_, err := client.GetProfile(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionExpired)
	// Handler вызван синхронно с детекцией, ровно один раз
	assert.Equal(t, 1, expiredCalls)
}

// TestClient_InboundHook_401WithoutToken проверяет, что 401 без приложенного
// токена (неверные учетные данные на логине) - это AuthError, а не expiry
func TestClient_InboundHook_401WithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "invalid credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	expiredCalls := 0
	client.SetExpiryHandler(func(ctx context.Context) {
		expiredCalls++
	})

	_, err := client.Login(context.Background(), api.LoginRequest{
		Email:    "donor@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 0, expiredCalls)
}

// TestClient_NetworkError проверяет, что транспортная ошибка оборачивается
// в NetworkError (транзиентное, повторяемое условие)
func TestClient_NetworkError(t *testing.T) {
	// Закрытый сервер - соединение откажет
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil, nil)

	_, err := client.GetEmergencyRequests(context.Background())

	require.Error(t, err)
	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

// TestClient_GetEmergencyRequests проверяет декодирование списка запросов
// вместе с альтернативными ключами названия госпиталя
func TestClient_GetEmergencyRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/donor/emergency-requests", r.URL.Path)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{"id":"req-1","blood_group":"O-","units_required":2,"status":"AWAITING","hospital_name":"City General"},
			{"id":"req-2","blood_group":"A+","units_required":1,"status":"AWAITING","hospital":{"name":"St. Mary"}}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	requests, err := client.GetEmergencyRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "req-1", requests[0].ID)
	assert.Equal(t, "City General", requests[0].DisplayHospitalName())
	assert.Equal(t, "St. Mary", requests[1].DisplayHospitalName())
}

// TestClient_Respond проверяет форму запроса отклика
func TestClient_Respond(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/donor/respond", r.URL.Path)

		var req api.RespondRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		assert.Equal(t, "req-1", req.RequestID)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	err := client.Respond(context.Background(), api.RespondRequest{RequestID: "req-1"})
	require.NoError(t, err)
}

// TestClient_UpdateProfile проверяет PUT изменяемых полей профиля
func TestClient_UpdateProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/donor/profile", r.URL.Path)

		body := map[string]string{}
		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "+15550100", body["phone"])
		// Группа крови неизменяема и не должна отправляться
		_, hasBloodGroup := body["blood_group"]
		assert.False(t, hasBloodGroup)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil, nil)

	err := client.UpdateProfile(context.Background(), api.UpdateProfileRequest{
		Phone: "+15550100",
		City:  "Springfield",
	})
	require.NoError(t, err)
}

// ErrorsIs совместимость sentinel ошибок
func TestErrors(t *testing.T) {
	wrapped := fmt.Errorf("call failed: %w", ErrSessionExpired)
	assert.True(t, errors.Is(wrapped, ErrSessionExpired))

	var netErr *NetworkError
	err := &NetworkError{Err: fmt.Errorf("dial tcp: refused")}
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &netErr))
}
