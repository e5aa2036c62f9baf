package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"workshop-system/internal/dto"
	apperrors "workshop-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type dbUser struct {
	ID       uint64
	Name     string
	Surname  string
	Email    string
	TeamID   sql.NullInt64
	TeamName sql.NullString
}

// ToDTO разворачивает команду во вложенный объект; пользователь без
// команды отдаётся без поля team.
func (db *dbUser) ToDTO() dto.UserDTO {
	userDTO := dto.UserDTO{
		ID:      db.ID,
		Name:    db.Name,
		Surname: db.Surname,
		Email:   db.Email,
	}
	if db.TeamID.Valid {
		userDTO.Team = &dto.TeamDTO{
			ID:   uint64(db.TeamID.Int64),
			Name: db.TeamName.String,
		}
	}
	return userDTO
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type userRepository struct{ storage *pgxpool.Pool }

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &userRepository{storage: storage}
}

func (r *userRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select("u.id", "u.name", "u.surname", "u.email", "t.id", "t.name").
		From("users u").
		LeftJoin("teams t ON t.id = u.team_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *userRepository) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	query, args, err := r.selectBuilder().OrderBy("u.id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]dto.UserDTO, 0)
	for rows.Next() {
		var dbRow dbUser
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Surname, &dbRow.Email, &dbRow.TeamID, &dbRow.TeamName); err != nil {
			return nil, err
		}
		users = append(users, dbRow.ToDTO())
	}
	return users, rows.Err()
}

func (r *userRepository) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	query, args, err := r.selectBuilder().Where(sq.Eq{"u.id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	var dbRow dbUser
	err = r.storage.QueryRow(ctx, query, args...).Scan(&dbRow.ID, &dbRow.Name, &dbRow.Surname, &dbRow.Email, &dbRow.TeamID, &dbRow.TeamName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	userDTO := dbRow.ToDTO()
	return &userDTO, nil
}

func (r *userRepository) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	query := "INSERT INTO users (name, surname, email, team_id) VALUES ($1, $2, $3, $4) RETURNING id"

	var id uint64
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.Surname, payload.Email, payload.TeamID).Scan(&id)
	if err != nil {
		return nil, wrapPgError(err)
	}
	return r.FindUser(ctx, id)
}

func (r *userRepository) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argId))
		args = append(args, *payload.Name)
		argId++
	}
	if payload.Surname != nil {
		setClauses = append(setClauses, fmt.Sprintf("surname = $%d", argId))
		args = append(args, *payload.Surname)
		argId++
	}
	if payload.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argId))
		args = append(args, *payload.Email)
		argId++
	}
	if payload.TeamID.Valid {
		setClauses = append(setClauses, fmt.Sprintf("team_id = $%d", argId))
		args = append(args, payload.TeamID)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindUser(ctx, id)
	}

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING id",
		strings.Join(setClauses, ", "), argId)
	args = append(args, id)

	var updatedID uint64
	err := r.storage.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapPgError(err)
	}
	return r.FindUser(ctx, updatedID)
}

func (r *userRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return wrapPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
