package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Сериализация времени не должна зависеть от часового пояса сервера:
// одна и та же строка БД обязана отдаваться одинаково в любом деплое.
func TestUserOrderToDTO_TimeRenderedInUTC(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	row := dbUserOrder{
		ID:          1,
		TimeOfOrder: time.Date(2024, 5, 10, 15, 30, 0, 0, moscow),
	}

	got := row.ToDTO()

	assert.Equal(t, "2024-05-10 12:30:00", got.TimeOfOrder)
}

func TestLaserCutterOrderToDTO_TimeRenderedInUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	row := dbLaserCutterOrder{
		ID:          1,
		TimeOfStart: time.Date(2024, 5, 10, 9, 0, 0, 0, tokyo),
		TimeOfEnd:   time.Date(2024, 5, 10, 11, 15, 0, 0, tokyo),
	}

	got := row.ToDTO()

	assert.Equal(t, "2024-05-10 00:00:00", got.TimeOfStart)
	assert.Equal(t, "2024-05-10 02:15:00", got.TimeOfEnd)
}
