// Package token декодирует payload bearer токена без проверки подписи.
// Клиент не владеет секретом подписи, поэтому проверить ее не может;
// это граница доверия, а не пробел: backend перепроверяет каждый запрос.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/christianalma1904/nutriplan-cli/internal/models"
)

// ErrMalformedToken indicates that the token string is not structurally decodable
var ErrMalformedToken = errors.New("malformed token")

// Decode извлекает claims из JWT без криптографической проверки.
// Чистая функция: без побочных эффектов и I/O.
// Возвращает ErrMalformedToken, если строка не разбирается структурно
// или отсутствуют обязательные claims (sub, rol, exp).
func Decode(raw string) (*models.TokenClaims, error) {
	parser := jwt.NewParser()

	parsed, _, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrMalformedToken)
	}

	// sub обязателен; сервер может отдавать его числом или строкой
	sub, err := subjectString(mapClaims)
	if err != nil {
		return nil, err
	}

	// rol обязателен: на нем построен весь role-gating клиента
	rol, err := roleString(mapClaims)
	if err != nil {
		return nil, err
	}

	// exp обязателен: без него невозможно оценить срок жизни сессии
	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("%w: missing or invalid exp claim", ErrMalformedToken)
	}

	claims := &models.TokenClaims{
		SubjectID: sub,
		Rol:       rol,
		ExpiresAt: exp.Unix(),
	}

	// email и name опциональны
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	} else if nombre, ok := mapClaims["nombre"].(string); ok {
		claims.Name = nombre
	}

	return claims, nil
}

// subjectString нормализует claim sub в строку
func subjectString(claims jwt.MapClaims) (string, error) {
	v, ok := claims["sub"]
	if !ok {
		return "", fmt.Errorf("%w: missing sub claim", ErrMalformedToken)
	}

	switch sub := v.(type) {
	case string:
		if sub == "" {
			return "", fmt.Errorf("%w: empty sub claim", ErrMalformedToken)
		}
		return sub, nil
	case float64:
		return strconv.FormatFloat(sub, 'f', -1, 64), nil
	case json.Number:
		return sub.String(), nil
	default:
		return "", fmt.Errorf("%w: unsupported sub claim type %T", ErrMalformedToken, v)
	}
}

// roleString читает claim rol, принимая role как запасное имя
func roleString(claims jwt.MapClaims) (string, error) {
	if rol, ok := claims["rol"].(string); ok && rol != "" {
		return rol, nil
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		return role, nil
	}
	return "", fmt.Errorf("%w: missing rol claim", ErrMalformedToken)
}
