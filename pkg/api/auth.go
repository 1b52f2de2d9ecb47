package api

// LoginRequest представляет запрос на аутентификацию донора
type LoginRequest struct {
	Email    string `json:"email"`    // email донора (lowercase, без пробелов)
	Password string `json:"password"` // пароль
}

// LoginResponse представляет ответ с токеном сессии
// Токен непрозрачный: клиент не делает предположений о его структуре
type LoginResponse struct {
	Token string `json:"token"` // bearer токен для Authorization заголовка
}

// RoleDonor - единственная роль, которую регистрирует клиент
const RoleDonor = "DONOR"

// RegisterProfileData содержит профильные данные при регистрации
// Сервер ожидает camelCase поля внутри profileData
type RegisterProfileData struct {
	Name       string `json:"name"`       // полное имя донора
	BloodGroup string `json:"bloodGroup"` // группа крови (неизменяемая после регистрации)
	Phone      string `json:"phone"`      // телефон (опционально)
	City       string `json:"city"`       // город (опционально)
}

// RegisterRequest представляет запрос на регистрацию нового донора
type RegisterRequest struct {
	Email       string              `json:"email"`       // email (lowercase, без пробелов)
	Password    string              `json:"password"`    // пароль
	Role        string              `json:"role"`        // всегда RoleDonor
	ProfileData RegisterProfileData `json:"profileData"` // вложенные данные профиля
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	Message string `json:"message,omitempty"` // сообщение сервера
}

// ErrorResponse представляет ответ сервера с ошибкой
type ErrorResponse struct {
	Message string `json:"message"` // описание ошибки для пользователя
}
