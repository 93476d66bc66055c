package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern определяет допустимый формат email
// Упрощенная проверка: непустая локальная часть, @, домен с точкой
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxNombreLen максимальная длина имени
	MaxNombreLen = 100
)

// ValidateEmail проверяет, что email соответствует требованиям
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
// Минимум 8 символов
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateNombre проверяет отображаемое имя при регистрации
func ValidateNombre(nombre string) error {
	if nombre == "" {
		return fmt.Errorf("nombre cannot be empty")
	}

	if len(nombre) > MaxNombreLen {
		return fmt.Errorf("nombre must not exceed %d characters", MaxNombreLen)
	}

	return nil
}
