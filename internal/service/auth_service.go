package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// CookieName кука с токеном владельца
	CookieName = "user_token"

	tokenTTL = 24 * time.Hour
)

var (
	ErrNoToken      = errors.New("identity token not provided")
	ErrInvalidToken = errors.New("invalid identity token")
)

// Claims полезная нагрузка токена владельца
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// AuthService проверяет и выпускает HS256 токены с идентификатором владельца
type AuthService struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
		now:       time.Now,
	}
}

// GenerateUserID генерирует уникальный идентификатор владельца
func (a *AuthService) GenerateUserID() string {
	return uuid.New().String()
}

// GenerateJWT создает токен для владельца, действительный 24 часа
func (a *AuthService) GenerateJWT(userID string) (string, error) {
	now := a.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет подпись и срок действия и извлекает user_id
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return a.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

// UserFromRequest достаёт владельца из заголовка Authorization: Bearer
// или из куки user_token
func (a *AuthService) UserFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return "", ErrInvalidToken
		}
		return a.ValidateJWT(strings.TrimSpace(token))
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}

	return a.ValidateJWT(cookie.Value)
}

// GetOrCreateUser возвращает владельца из запроса, а если токена нет
// или он недействителен, выпускает нового анонимного владельца и ставит куку
func (a *AuthService) GetOrCreateUser(r *http.Request, w http.ResponseWriter) (string, error) {
	userID, err := a.UserFromRequest(r)
	if err == nil {
		return userID, nil
	}

	userID = a.GenerateUserID()
	token, err := a.GenerateJWT(userID)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(tokenTTL.Seconds()),
	})

	return userID, nil
}
