package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/bloodlink/internal/client/storage"
)

// fakeTokenStorage - хранилище в памяти для тестов переходов
type fakeTokenStorage struct {
	token     string
	saveErr   error
	getErr    error
	deleteErr error
	has       bool
}

func (f *fakeTokenStorage) SaveToken(ctx context.Context, token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.token = token
	f.has = true
	return nil
}

func (f *fakeTokenStorage) GetToken(ctx context.Context) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	if !f.has {
		return "", storage.ErrTokenNotFound
	}
	return f.token, nil
}

func (f *fakeTokenStorage) DeleteToken(ctx context.Context) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.token = ""
	f.has = false
	return nil
}

func newTestNavigator() *NavigatorMock {
	return &NavigatorMock{
		ToHomeFunc:  func() {},
		ToLoginFunc: func() {},
	}
}

func TestManager_InitialState(t *testing.T) {
	m := NewManager(&fakeTokenStorage{}, newTestNavigator(), nil)
	assert.Equal(t, StateLoading, m.State())
}

func TestManager_Init_NoToken(t *testing.T) {
	m := NewManager(&fakeTokenStorage{}, newTestNavigator(), nil)

	m.Init(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
}

func TestManager_Init_TokenPresent(t *testing.T) {
	tokens := &fakeTokenStorage{token: "stored-token", has: true}
	m := NewManager(tokens, newTestNavigator(), nil)

	m.Init(context.Background())

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "stored-token", m.Token())
}

func TestManager_Init_StorageFailure(t *testing.T) {
	// Ошибка чтения хранилища трактуется как "токена нет", процесс не падает
	tokens := &fakeTokenStorage{getErr: fmt.Errorf("storage corrupted")}
	m := NewManager(tokens, newTestNavigator(), nil)

	m.Init(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestManager_SignIn(t *testing.T) {
	ctx := context.Background()
	tokens := &fakeTokenStorage{}
	nav := newTestNavigator()

	m := NewManager(tokens, nav, nil)
	m.Init(ctx)

	err := m.SignIn(ctx, "fresh-token")
	require.NoError(t, err)

	// Состояние и редирект
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "fresh-token", m.Token())
	assert.Len(t, nav.ToHomeCalls(), 1)

	// Токен durable: чтение хранилища сразу после SignIn возвращает его
	stored, err := tokens.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", stored)
}

func TestManager_SignIn_ReplacesToken(t *testing.T) {
	ctx := context.Background()
	tokens := &fakeTokenStorage{}
	m := NewManager(tokens, newTestNavigator(), nil)
	m.Init(ctx)

	require.NoError(t, m.SignIn(ctx, "first"))
	require.NoError(t, m.SignIn(ctx, "second"))

	// Новый токен полностью заменяет предыдущий
	stored, err := tokens.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", stored)
	assert.Equal(t, "second", m.Token())
}

func TestManager_SignIn_EmptyToken(t *testing.T) {
	m := NewManager(&fakeTokenStorage{}, newTestNavigator(), nil)
	m.Init(context.Background())

	err := m.SignIn(context.Background(), "")
	assert.Error(t, err)
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestManager_SignIn_PersistFailure(t *testing.T) {
	ctx := context.Background()
	tokens := &fakeTokenStorage{saveErr: fmt.Errorf("disk full")}
	nav := newTestNavigator()

	m := NewManager(tokens, nav, nil)
	m.Init(ctx)

	err := m.SignIn(ctx, "token")

	// Запись провалилась: состояние прежнее, редиректа нет
	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
	assert.Empty(t, nav.ToHomeCalls())
}

func TestManager_SignOut(t *testing.T) {
	ctx := context.Background()
	tokens := &fakeTokenStorage{}
	nav := newTestNavigator()

	m := NewManager(tokens, nav, nil)
	m.Init(ctx)
	require.NoError(t, m.SignIn(ctx, "token"))

	m.SignOut(ctx)

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
	assert.Len(t, nav.ToLoginCalls(), 1)

	// Чтение хранилища после SignOut возвращает "отсутствует"
	_, err := tokens.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestManager_SignOut_Idempotent(t *testing.T) {
	ctx := context.Background()
	tokens := &fakeTokenStorage{}
	nav := newTestNavigator()

	m := NewManager(tokens, nav, nil)
	m.Init(ctx)
	require.NoError(t, m.SignIn(ctx, "token"))

	// Двойной SignOut дает то же конечное состояние, что и одинарный
	m.SignOut(ctx)
	m.SignOut(ctx)

	assert.Equal(t, StateUnauthenticated, m.State())
	// Второй вызов - no-op: ни второго редиректа, ни ошибки
	assert.Len(t, nav.ToLoginCalls(), 1)
}

func TestManager_SignOut_StorageFailureNonFatal(t *testing.T) {
	ctx := context.Background()
	tokens := &fakeTokenStorage{}
	m := NewManager(tokens, newTestNavigator(), nil)
	m.Init(ctx)
	require.NoError(t, m.SignIn(ctx, "token"))

	// Ошибка удаления не мешает очистке сессии в памяти
	tokens.deleteErr = fmt.Errorf("storage unavailable")
	m.SignOut(ctx)

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, m.Token())
}

func TestManager_HandleSessionExpired(t *testing.T) {
	ctx := context.Background()
	tokens := &fakeTokenStorage{}
	nav := newTestNavigator()

	m := NewManager(tokens, nav, nil)
	m.Init(ctx)
	require.NoError(t, m.SignIn(ctx, "token"))

	// Сигнал от API клиента: токен очищен, редирект на логин
	m.HandleSessionExpired(ctx)

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Len(t, nav.ToLoginCalls(), 1)

	_, err := tokens.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestManager_HandleSessionExpired_WhenUnauthenticated(t *testing.T) {
	ctx := context.Background()
	nav := newTestNavigator()

	m := NewManager(&fakeTokenStorage{}, nav, nil)
	m.Init(ctx)

	// Сигнал без активной сессии игнорируется
	m.HandleSessionExpired(ctx)

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, nav.ToLoginCalls())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
}
