package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt молча обрезает вход после 72 байт, длину пароля
// ограничивает валидация на уровне обработчиков.
const passwordHashCost = bcrypt.DefaultCost

// HashPassword хэширует пароль домохозяйства через bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// ComparePassword проверяет пароль против сохраненного bcrypt-хэша.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
