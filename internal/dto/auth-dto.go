package dto

type LoginDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterWorkerDTO - регистрация работника. Пароль принимается на входе
// и никогда не сериализуется наружу.
type RegisterWorkerDTO struct {
	Name             string `json:"name" validate:"required"`
	Surname          string `json:"surname" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	Address          string `json:"address" validate:"required"`
	WorkerPositionID uint64 `json:"worker_position_id" validate:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AccessTokenDTO struct {
	AccessToken string `json:"access_token"`
}
