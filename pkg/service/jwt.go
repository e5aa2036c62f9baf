package service

import (
	stderrors "errors"
	"time"

	apperrors "workshop-system/pkg/errors"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type JwtCustomClaim struct {
	WorkerID       uint64 `json:"workerId"`
	Fresh          bool   `json:"fresh"`
	IsRefreshToken bool   `json:"isRefresh"`
	jwt.RegisteredClaims
}

type JWTService interface {
	// GenerateTokens выдаёт пару: свежий access-токен и refresh-токен.
	GenerateTokens(workerID uint64) (string, string, error)
	// GenerateAccessToken выдаёт одиночный access-токен; fresh=false для refresh-потока.
	GenerateAccessToken(workerID uint64, fresh bool) (string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type jwtService struct {
	SecretKey       string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
}

func NewJWTService(secretKey string, accessTokenExp, refreshTokenExp time.Duration) JWTService {
	return &jwtService{
		SecretKey:       secretKey,
		AccessTokenExp:  accessTokenExp,
		RefreshTokenExp: refreshTokenExp,
	}
}

func (service *jwtService) GenerateTokens(workerID uint64) (string, string, error) {
	accessTokenString, err := service.signToken(workerID, true, false, service.AccessTokenExp)
	if err != nil {
		return "", "", err
	}

	refreshTokenString, err := service.signToken(workerID, false, true, service.RefreshTokenExp)
	if err != nil {
		return "", "", err
	}

	return accessTokenString, refreshTokenString, nil
}

func (service *jwtService) GenerateAccessToken(workerID uint64, fresh bool) (string, error) {
	return service.signToken(workerID, fresh, false, service.AccessTokenExp)
}

// signToken собирает и подписывает токен. Каждый токен получает уникальный jti,
// по которому работает блоклист отзыва.
func (service *jwtService) signToken(workerID uint64, fresh, isRefresh bool, ttl time.Duration) (string, error) {
	claims := &JwtCustomClaim{
		WorkerID:       workerID,
		Fresh:          fresh,
		IsRefreshToken: isRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(service.SecretKey))
}

func (s *jwtService) GetAccessTokenTTL() time.Duration {
	return s.AccessTokenExp
}

func (s *jwtService) GetRefreshTokenTTL() time.Duration {
	return s.RefreshTokenExp
}

// ValidateToken проверяет подпись и срок действия. Истёкший токен и токен с
// битой подписью обязаны оставаться различимыми для вызывающего кода.
func (service *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return []byte(service.SecretKey), nil
		default:
			return nil, apperrors.ErrInvalidSigningMethod
		}
	})

	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		log.Errorf("Ошибка парсинга или проверки подписи токена: %v", err)
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		log.Warn("Токен невалиден или не удалось извлечь claims")
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
