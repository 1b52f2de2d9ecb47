package feed

import (
	"context"
	"fmt"
	"log/slog"

	httpClient "github.com/iudanet/bloodlink/internal/client/api"
	"github.com/iudanet/bloodlink/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс синхронизатора экстренной ленты
type Service interface {
	// Refresh выполняет полный цикл fetch/filter и возвращает актуальную ленту.
	// При ошибке возвращает предыдущий показанный список вместе с ошибкой:
	// устаревшая лента лучше пустого экрана.
	Refresh(ctx context.Context) ([]api.EmergencyRequest, error)

	// Respond отправляет отклик на запрос и выполняет полный re-fetch,
	// чтобы отразить новый статус с точки зрения сервера
	Respond(ctx context.Context, requestID string) ([]api.EmergencyRequest, error)

	// BloodGroup возвращает закешированную группу крови донора ("" до первого Refresh)
	BloodGroup() string

	// Requests возвращает последний успешно показанный список
	Requests() []api.EmergencyRequest
}

// service mediates the emergency feed between the server and the user:
// fetch profile once per session, fetch active requests, filter to the
// donor's blood group, mediate the respond action.
type service struct {
	apiClient httpClient.ClientAPI
	logger    *slog.Logger

	// Группа крови неизменяема на сервере, поэтому кешируется в памяти
	// на всю сессию и не перезапрашивается при каждом refresh.
	// На диск не сохраняется.
	bloodGroup string

	// Последний успешно отфильтрованный список. Конкурентные refresh
	// не дедуплицируются: последний завершившийся перезаписывает
	// (допустимая гонка для read-only eventually-consistent ленты).
	lastRequests []api.EmergencyRequest
}

// NewService creates a new feed synchronizer
func NewService(apiClient httpClient.ClientAPI, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		apiClient: apiClient,
		logger:    logger,
	}
}

// Refresh выполняет цикл синхронизации ленты:
// 1. Если группа крови еще не закеширована - запрашиваем профиль
// 2. Запрашиваем активные экстренные запросы
// 3. Фильтруем по группе крови и нетерминальному статусу
// 4. Сохраняем и возвращаем список в порядке сервера
func (s *service) Refresh(ctx context.Context) ([]api.EmergencyRequest, error) {
	if s.bloodGroup == "" {
		profile, err := s.apiClient.GetProfile(ctx)
		if err != nil {
			s.logger.Warn("failed to fetch donor profile", "error", err)
			return s.lastRequests, fmt.Errorf("failed to fetch profile: %w", err)
		}
		if profile.BloodGroup == "" {
			return s.lastRequests, fmt.Errorf("profile has no blood group")
		}
		s.bloodGroup = profile.BloodGroup
		s.logger.Debug("cached donor blood group", "blood_group", s.bloodGroup)
	}

	requests, err := s.apiClient.GetEmergencyRequests(ctx)
	if err != nil {
		// Предыдущий список остается на экране
		s.logger.Warn("failed to fetch emergency requests", "error", err)
		return s.lastRequests, fmt.Errorf("failed to fetch requests: %w", err)
	}

	filtered := filterRequests(requests, s.bloodGroup)

	s.logger.Info("feed refreshed",
		"total", len(requests),
		"matching", len(filtered),
		"blood_group", s.bloodGroup)

	s.lastRequests = filtered
	return filtered, nil
}

// Respond отправляет отклик донора на экстренный запрос.
// При успехе статус меняется на стороне сервера, поэтому вместо
// оптимистичной правки локального состояния выполняется полный re-fetch:
// небольшая задержка в обмен на гарантированную согласованность.
// При ошибке локальное состояние не меняется, действие можно повторить.
func (s *service) Respond(ctx context.Context, requestID string) ([]api.EmergencyRequest, error) {
	if requestID == "" {
		return s.lastRequests, fmt.Errorf("request id cannot be empty")
	}

	if err := s.apiClient.Respond(ctx, api.RespondRequest{RequestID: requestID}); err != nil {
		return s.lastRequests, fmt.Errorf("failed to respond: %w", err)
	}

	s.logger.Info("response submitted", "request_id", requestID)

	// Re-fetch не silent: ошибка здесь видна вызывающему
	return s.Refresh(ctx)
}

// BloodGroup возвращает закешированную группу крови донора
func (s *service) BloodGroup() string {
	return s.bloodGroup
}

// Requests возвращает последний успешно показанный список
func (s *service) Requests() []api.EmergencyRequest {
	return s.lastRequests
}

// filterRequests оставляет запрос тогда и только тогда, когда его группа
// крови совпадает с группой донора и статус не COMPLETED.
// Порядок сервера сохраняется, пересортировки нет.
func filterRequests(requests []api.EmergencyRequest, bloodGroup string) []api.EmergencyRequest {
	filtered := make([]api.EmergencyRequest, 0, len(requests))
	for _, req := range requests {
		if req.BloodGroup == bloodGroup && req.Status != api.StatusCompleted {
			filtered = append(filtered, req)
		}
	}
	return filtered
}
