package errors

import "fmt"

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")
	ErrTokenIsNotRefresh    = fmt.Errorf("токен не является refresh-токеном")

	// Авторизация
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")

	// Контекст
	ErrWorkerIDNotFoundInContext = fmt.Errorf("WorkerID не найден в контексте запроса")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
)

// AuthError - структурированный отказ аутентификации (401).
// Каждый отказ несёт ровно одну причину и машинный код для поля "error".
// BodyKey сохраняет причуду исходного API: часть ответов кладёт текст
// в "message", часть - в "description".
type AuthError struct {
	Reason  string
	BodyKey string
	Text    string
}

func (e *AuthError) Error() string { return e.Text }

var (
	ErrTokenExpired = &AuthError{
		Reason:  "token_expired",
		BodyKey: "message",
		Text:    "The token has expired.",
	}
	ErrInvalidToken = &AuthError{
		Reason:  "invalid_token",
		BodyKey: "message",
		Text:    "Signature verification failed.",
	}
	ErrAuthorizationRequired = &AuthError{
		Reason:  "authorization_required",
		BodyKey: "description",
		Text:    "Request does not contain an access token.",
	}
	ErrFreshTokenRequired = &AuthError{
		Reason:  "fresh_token_required",
		BodyKey: "description",
		Text:    "The token is not fresh.",
	}
	ErrTokenRevoked = &AuthError{
		Reason:  "token_revoked",
		BodyKey: "description",
		Text:    "The token has been revoked.",
	}
)

// ConstraintViolationError - нарушение уникальности или внешнего ключа,
// пойманное на границе репозитория (коды PostgreSQL 23505 / 23503).
type ConstraintViolationError struct {
	Detail string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("Unique constraint violation: %s", e.Detail)
}

func NewConstraintViolationError(detail string) error {
	return &ConstraintViolationError{Detail: detail}
}

type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(400, message, nil, nil)
}
