package auth

import (
	"context"
	"fmt"

	"github.com/iudanet/bloodlink/internal/client/api"
	"github.com/iudanet/bloodlink/internal/validation"
	pkgapi "github.com/iudanet/bloodlink/pkg/api"
)

// Service предоставляет функции аутентификации донора.
// Валидация выполняется локально до сети: ValidationError никогда не
// доходит до сервера.
type Service struct {
	apiClient api.ClientAPI
}

// NewService создает новый сервис аутентификации
func NewService(apiClient api.ClientAPI) *Service {
	return &Service{
		apiClient: apiClient,
	}
}

// Login выполняет обмен учетных данных на токен сессии.
// Возвращает непрозрачный токен; сохранение - забота session manager.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	// Нормализуем email, чтобы исключить ошибки логина из-за регистра
	email = validation.NormalizeEmail(email)

	// Валидация входных данных
	if err := validation.ValidateEmail(email); err != nil {
		return "", fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	// Отправляем запрос на логин
	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}

	if resp.Token == "" {
		return "", fmt.Errorf("server returned empty token")
	}

	return resp.Token, nil
}

// RegisterInput содержит данные регистрации нового донора
type RegisterInput struct {
	Name       string // полное имя (обязательно)
	Email      string // email (обязательно)
	Password   string // пароль (обязательно)
	BloodGroup string // группа крови (обязательно, неизменяема после регистрации)
	Phone      string // телефон (опционально)
	City       string // город (опционально)
}

// Register регистрирует нового донора.
// После успешной регистрации пользователь выполняет обычный Login.
func (s *Service) Register(ctx context.Context, input RegisterInput) error {
	// Валидация входных данных
	if input.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	email := validation.NormalizeEmail(input.Email)
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	if err := validation.ValidateBloodGroup(input.BloodGroup); err != nil {
		return fmt.Errorf("invalid blood group: %w", err)
	}

	// Собираем payload в форме, которую ожидает бэкенд
	req := pkgapi.RegisterRequest{
		Email:    email,
		Password: input.Password,
		Role:     pkgapi.RoleDonor,
		ProfileData: pkgapi.RegisterProfileData{
			Name:       input.Name,
			BloodGroup: input.BloodGroup,
			Phone:      input.Phone,
			City:       input.City,
		},
	}

	if _, err := s.apiClient.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	return nil
}
