package api

import (
	"context"

	"github.com/iudanet/bloodlink/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the server operations consumed by the client services.
// Implemented by Client; mocked in feed/session/cli tests.
type ClientAPI interface {
	// Login обменивает учетные данные на токен сессии
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)

	// Register регистрирует нового донора
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// GetProfile получает профиль донора
	GetProfile(ctx context.Context) (*api.DonorProfile, error)

	// UpdateProfile обновляет изменяемые поля профиля
	UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) error

	// GetEmergencyRequests получает активные экстренные запросы
	GetEmergencyRequests(ctx context.Context) ([]api.EmergencyRequest, error)

	// Respond отправляет отклик донора на экстренный запрос
	Respond(ctx context.Context, req api.RespondRequest) error

	// GetHospitals получает справочник партнерских госпиталей
	GetHospitals(ctx context.Context) ([]api.Hospital, error)

	// GetHistory получает историю завершенных донаций
	GetHistory(ctx context.Context) ([]api.Donation, error)
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)
