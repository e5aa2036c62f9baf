package entities

// Worker - учётная запись работника. Password хранит bcrypt-хеш и
// никогда не попадает в ответы API.
type Worker struct {
	ID               uint64
	Name             string
	Surname          string
	Email            string
	Password         string
	PhoneNumber      string
	Address          string
	WorkerPositionID uint64
}
