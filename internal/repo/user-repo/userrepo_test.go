package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/seoforge/seoforge/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, email, name, password_hash, is_admin FROM users WHERE email = $1`)

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing user",
			email: "ada@example.com",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "email", "name", "password_hash", "is_admin"}).
					AddRow(1, "ada@example.com", "Ada", "hashed", true)
				mock.ExpectQuery(query).WithArgs("ada@example.com").WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           1,
				Email:        "ada@example.com",
				Name:         "Ada",
				PasswordHash: "hashed",
				IsAdmin:      true,
			},
		},
		{
			name:  "Unknown email returns nil",
			email: "nobody@example.com",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("nobody@example.com").WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "ada@example.com",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("ada@example.com").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
			INSERT INTO users (email, name, password_hash)
			VALUES ($1, $2, $3)
			RETURNING id
		`)

	t.Run("Successfully creates user", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("ada@example.com", "Ada", "hashed").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		user, err := repo.Create(context.Background(), &domain.User{
			Email:        "ada@example.com",
			Name:         "Ada",
			PasswordHash: "hashed",
		})
		assert.NoError(t, err)
		assert.Equal(t, 7, user.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("ada@example.com", "Ada", "hashed").
			WillReturnError(errors.New("database error"))

		user, err := repo.Create(context.Background(), &domain.User{
			Email:        "ada@example.com",
			Name:         "Ada",
			PasswordHash: "hashed",
		})
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}
