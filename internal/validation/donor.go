package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern определяет допустимый формат email
// Упрощенная проверка: локальная часть @ домен с точкой
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
)

// BloodGroups - допустимые группы крови (ABO/Rh)
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// NormalizeEmail приводит email к каноническому виду (lowercase, без пробелов),
// чтобы исключить ошибки логина из-за регистра
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет, что email соответствует требованиям
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email is not a valid address")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateBloodGroup проверяет, что группа крови входит в допустимый список
// Группа крови неизменяема после регистрации, поэтому проверяем строго
func ValidateBloodGroup(group string) error {
	if group == "" {
		return fmt.Errorf("blood group cannot be empty")
	}

	for _, g := range BloodGroups {
		if g == group {
			return nil
		}
	}

	return fmt.Errorf("unknown blood group %q, must be one of: %s", group, strings.Join(BloodGroups, ", "))
}
