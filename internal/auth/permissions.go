package auth

import "freelancehub_backend/internal/models"

// IsClient проверяет, что токен принадлежит клиенту
func IsClient(claims *Claims) bool {
	return claims != nil && models.UserType(claims.UserType) == models.UserTypeClient
}

// IsFreelancer проверяет, что токен принадлежит фрилансеру
func IsFreelancer(claims *Claims) bool {
	return claims != nil && models.UserType(claims.UserType) == models.UserTypeFreelancer
}

// HasUserType проверяет тип пользователя по списку допустимых
func HasUserType(claims *Claims, types ...models.UserType) bool {
	if claims == nil {
		return false
	}
	for _, t := range types {
		if models.UserType(claims.UserType) == t {
			return true
		}
	}
	return false
}
