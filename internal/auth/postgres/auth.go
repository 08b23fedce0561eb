package postgres

import (
	"gorm.io/gorm"

	"github.com/hgiang7193/hr-management/internal/auth"
	"github.com/hgiang7193/hr-management/internal/employee"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) auth.UserRepository {
	return &AuthRepository{db: db}
}

// GetCredentialsByUsername loads a user case-insensitively together with the
// role names held right now. A missing user returns nil, nil so the service
// can collapse it into the generic invalid-credentials failure.
func (r *AuthRepository) GetCredentialsByUsername(username string) (*auth.Credentials, error) {
	var user employee.User
	err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	var roles []string
	err = r.db.Table("user_roles").
		Select("roles.name").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ?", user.ID).
		Scan(&roles).Error
	if err != nil {
		return nil, err
	}

	return &auth.Credentials{
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PasswordHash: user.PasswordHash,
		Roles:        roles,
	}, nil
}
