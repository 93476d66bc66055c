package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signToken создает подписанный JWT с указанными claims.
// Подпись декодером не проверяется, но токен структурно настоящий.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func TestDecode(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	raw := signToken(t, jwt.MapClaims{
		"sub":   "42",
		"rol":   "admin",
		"email": "admin@nutriplan.test",
		"name":  "Ana",
		"exp":   exp,
	})

	claims, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.SubjectID)
	assert.Equal(t, "admin", claims.Rol)
	assert.Equal(t, "admin@nutriplan.test", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, exp, claims.ExpiresAt)
	assert.False(t, claims.Expired(time.Now()))
}

// TestDecode_NumericSubject проверяет нормализацию числового sub в строку
func TestDecode_NumericSubject(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub": 7,
		"rol": "paciente",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.SubjectID)
}

// TestDecode_RoleFallback проверяет чтение claim role вместо rol
func TestDecode_RoleFallback(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":  "3",
		"role": "paciente",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	claims, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "paciente", claims.Rol)
}

// TestDecode_NombreFallback проверяет чтение claim nombre вместо name
func TestDecode_NombreFallback(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"sub":    "3",
		"rol":    "paciente",
		"nombre": "Luis",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	claims, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "Luis", claims.Name)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		claims jwt.MapClaims
		name   string
		raw    string
	}{
		{
			name: "not a token",
			raw:  "definitely-not-a-jwt",
		},
		{
			name: "two segments only",
			raw:  "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0",
		},
		{
			name: "garbage payload",
			raw:  "eyJhbGciOiJIUzI1NiJ9.%%%%.sig",
		},
		{
			name: "missing sub",
			claims: jwt.MapClaims{
				"rol": "admin",
				"exp": time.Now().Add(time.Hour).Unix(),
			},
		},
		{
			name: "missing rol",
			claims: jwt.MapClaims{
				"sub": "1",
				"exp": time.Now().Add(time.Hour).Unix(),
			},
		},
		{
			name: "missing exp",
			claims: jwt.MapClaims{
				"sub": "1",
				"rol": "admin",
			},
		},
		{
			name: "empty sub",
			claims: jwt.MapClaims{
				"sub": "",
				"rol": "admin",
				"exp": time.Now().Add(time.Hour).Unix(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.raw
			if raw == "" {
				raw = signToken(t, tt.claims)
			}

			claims, err := Decode(raw)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedToken)
			assert.Nil(t, claims)
		})
	}
}

// TestDecode_ExpiredTokenStillDecodes: декодер не интерпретирует exp,
// он только извлекает значение; истечение оценивает session store.
func TestDecode_ExpiredTokenStillDecodes(t *testing.T) {
	past := time.Now().Add(-time.Hour).Unix()

	raw := signToken(t, jwt.MapClaims{
		"sub": "9",
		"rol": "paciente",
		"exp": past,
	})

	claims, err := Decode(raw)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))
	assert.Equal(t, past, claims.ExpiresAt)
}
