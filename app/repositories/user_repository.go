package repositories

import (
	"github.com/atelierhq/atelier/app/models"
	"github.com/atelierhq/atelier/pkg/orm"
)

// UserRepository handles database operations for User.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("email = ?", email).First(&user)
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	return orm.DB().Save(user)
}

// All returns every user, oldest first.
func (r *UserRepository) All() ([]models.User, error) {
	var users []models.User
	err := orm.DB().Model(&models.User{}).Order("created_at asc").Get(&users)
	return users, err
}

// Recent returns the n newest signups.
func (r *UserRepository) Recent(n int) ([]models.User, error) {
	var users []models.User
	err := orm.DB().Model(&models.User{}).Order("created_at desc").Limit(n).Get(&users)
	return users, err
}

// Count returns the total number of registered users.
func (r *UserRepository) Count() (int64, error) {
	return orm.DB().Model(&models.User{}).Count()
}
