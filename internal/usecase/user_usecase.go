package usecase

import (
	"errors"
	"time"

	"escala-backend/config"
	"escala-backend/internal/model"
	"escala-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrUsernameTaken is the explicit registration conflict; callers translate
// it into a 409 instead of a generic failure.
var ErrUsernameTaken = errors.New("username already registered")

var ErrInvalidCredentials = errors.New("invalid username or password")

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(username, name, role, password string, employeeID *uint) error {
	taken, err := u.repo.UsernameExists(username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Username:   username,
		Name:       name,
		Role:       role,
		Password:   string(hashedPassword),
		EmployeeID: employeeID,
	}
	return u.repo.Create(&user)
}

func (u *UserUsecase) Login(username, password string) (string, *model.User, error) {
	user, err := u.repo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour * 24).Unix(), // token expires in 24h
	}
	if user.EmployeeID != nil {
		claims["employee_id"] = *user.EmployeeID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", nil, err
	}

	return t, user, nil
}
