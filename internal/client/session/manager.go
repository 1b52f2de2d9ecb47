package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/bloodlink/internal/client/storage"
)

// State описывает состояние сессии донора
type State int

const (
	// StateLoading - начальное чтение credential store еще не завершено.
	// Потребители обязаны дождаться Init и не начинать авторизованные запросы.
	StateLoading State = iota
	// StateUnauthenticated - токена нет, доступна только аутентификация
	StateUnauthenticated
	// StateAuthenticated - токен есть, доступны авторизованные операции
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

//go:generate moq -out navigator_mock.go . Navigator

// Navigator получает редиректы при смене состояния сессии.
// В CLI это подсказки пользователю; в полноценном UI - навигация экранов.
type Navigator interface {
	// ToHome вызывается после успешного sign-in
	ToHome()

	// ToLogin вызывается после sign-out или истечения сессии
	ToLogin()
}

// Manager владеет состоянием сессии в памяти и единолично выполняет переходы
// между Unauthenticated и Authenticated. Все остальные компоненты получают
// доступ к сессии только через его узкий контракт.
//
// Мутирующие операции (SignIn, SignOut, HandleSessionExpired) запускаются
// действиями пользователя и сериализуются самим UI, поэтому координация
// конкурентных писателей не требуется.
type Manager struct {
	storage storage.TokenStorage
	nav     Navigator
	logger  *slog.Logger
	token   string
	state   State
}

// NewManager создает менеджер сессии в состоянии Loading.
// Init должен быть вызван до любых авторизованных запросов.
func NewManager(tokens storage.TokenStorage, nav Navigator, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		storage: tokens,
		nav:     nav,
		logger:  logger,
		state:   StateLoading,
	}
}

// Init выполняет начальное чтение credential store.
// Найден токен -> Authenticated; токена нет или чтение провалилось ->
// Unauthenticated (ошибка хранилища логируется и не роняет процесс).
func (m *Manager) Init(ctx context.Context) {
	token, err := m.storage.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrTokenNotFound) {
			m.logger.Warn("failed to load token from credential store", "error", err)
		}
		m.state = StateUnauthenticated
		return
	}

	m.token = token
	m.state = StateAuthenticated
}

// SignIn сохраняет токен и переводит сессию в Authenticated.
// Редирект происходит только после того, как запись в хранилище подтверждена
// и состояние в памяти обновлено - иначе первый же авторизованный запрос
// нового экрана ушел бы без токена.
// Повторный вызов заменяет текущий токен (идемпотентно).
func (m *Manager) SignIn(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	// 1. Сначала durable запись
	if err := m.storage.SaveToken(ctx, token); err != nil {
		// Состояние в памяти не меняется, пользователь может повторить
		return fmt.Errorf("failed to persist token: %w", err)
	}

	// 2. Затем состояние в памяти
	m.token = token
	m.state = StateAuthenticated

	// 3. И только потом редирект
	if m.nav != nil {
		m.nav.ToHome()
	}

	return nil
}

// SignOut очищает credential store и состояние в памяти, редиректит на логин.
// Вызов в состоянии Unauthenticated - no-op, не ошибка.
// Ошибка удаления из хранилища логируется и не считается фатальной:
// сессия в памяти очищается в любом случае.
func (m *Manager) SignOut(ctx context.Context) {
	if m.state == StateUnauthenticated {
		return
	}

	if err := m.storage.DeleteToken(ctx); err != nil {
		m.logger.Warn("failed to clear token from credential store", "error", err)
	}

	m.token = ""
	m.state = StateUnauthenticated

	if m.nav != nil {
		m.nav.ToLogin()
	}
}

// HandleSessionExpired - обработчик сигнала SessionExpired от API клиента.
// Выполняется синхронно с детекцией 401: мертвая сессия очищается сразу,
// без повторных отказов сервера.
func (m *Manager) HandleSessionExpired(ctx context.Context) {
	if m.state != StateAuthenticated {
		return
	}

	m.logger.Warn("session expired, signing out")
	m.SignOut(ctx)
}

// State возвращает текущее состояние сессии
func (m *Manager) State() State {
	return m.state
}

// Token возвращает токен текущей сессии ("" если не аутентифицирован)
func (m *Manager) Token() string {
	return m.token
}
