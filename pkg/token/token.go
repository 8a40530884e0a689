package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims son los claims estándar del token de acceso. El subject (sub) es el ID
// del usuario; el rol NO viaja en el token: se resuelve contra la base de datos
// en cada request para que una desactivación o cambio de rol aplique de inmediato.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate firma un token HS256 para el subject indicado. El servicio de API no
// emite tokens de sesión (eso es del flujo de login, fuera de este repo); esta
// función existe para tests y tooling de soporte.
func Generate(secret, subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// Parse verifica firma, estructura y expiración y devuelve el subject y los claims.
// Retorna error si la firma no corresponde al secret, el claim set está malformado
// o el token expiró. La expiración es exacta: sin leeway ni ventana de tolerancia,
// un token vence en el instante de su claim exp.
func Parse(secret, tokenString string) (subject string, claims *Claims, err error) {
	if secret == "" {
		return "", nil, fmt.Errorf("token: secret vacío")
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", nil, err
	}
	c, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", nil, fmt.Errorf("token: claims inválidos")
	}
	if c.Subject == "" {
		return "", nil, fmt.Errorf("token: subject vacío")
	}
	return c.Subject, c, nil
}
