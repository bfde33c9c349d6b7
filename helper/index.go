package helper

import (
	"errors"
	"fmt"
	"log"
	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// jwtSecret reads JWT_SECRET at call time so the .env loader has run first.
func jwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByUsername(u string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Username: u}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(jwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})

	return token, err
}

// GetInfoUserFromToken resolves the caller and their role from the parsed JWT
// in Locals. Anonymous callers get (nil, RoleAnonymous).
func GetInfoUserFromToken(c *fiber.Ctx) (*model.User, model.Role) {
	u := c.Locals("user")
	if u == nil {
		return nil, model.RoleAnonymous
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return nil, model.RoleAnonymous
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.RoleAnonymous
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok || userIdFloat == 0 {
		return nil, model.RoleAnonymous
	}

	var user model.User
	db := database.DB
	if err := db.Preload("Groups").First(&user, uint(userIdFloat)).Error; err != nil {
		log.Printf("user from token not found (id=%d): %v", uint(userIdFloat), err)
		return nil, model.RoleAnonymous
	}

	return &user, ResolveRole(&user)
}
