package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Kingcxp/auth-service/internal/domain"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateName  = errors.New("user name already exists")
	ErrDuplicateEmail = errors.New("user email already exists")
)

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(uid uint) (*domain.User, error)
	FindByName(name string) (*domain.User, error)
	List(skip, limit int) ([]domain.User, error)
	UpdateToken(uid uint, token string) error
	UpdateName(uid uint, name string) error
	DeleteByName(name string) error
}

type GormUserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user. The name is pre-checked so a duplicate is
// reported cleanly; the database unique constraint remains the backstop for
// the race between two concurrent registrations with the same name.
func (r *GormUserRepository) Create(user *domain.User) error {
	if _, err := r.FindByName(user.Name); err == nil {
		return ErrDuplicateName
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, nameErr := r.FindByName(user.Name); nameErr == nil {
				return ErrDuplicateName
			}
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *GormUserRepository) FindByID(uid uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByName(name string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("name = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) List(skip, limit int) ([]domain.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 25565
	}
	var users []domain.User
	if err := r.db.Order("uid asc").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormUserRepository) UpdateToken(uid uint, token string) error {
	return r.updateColumn(uid, "token", token)
}

func (r *GormUserRepository) UpdateName(uid uint, name string) error {
	err := r.updateColumn(uid, "name", name)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	return err
}

func (r *GormUserRepository) updateColumn(uid uint, column string, value string) error {
	res := r.db.Model(&domain.User{}).Where("uid = ?", uid).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *GormUserRepository) DeleteByName(name string) error {
	res := r.db.Where("name = ?", name).Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
