package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted one-way hash of the password. The salt is
// generated fresh on every call and embedded in the printable output.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches storedHash. Comparison is
// constant time; a malformed storedHash verifies false.
func CheckPassword(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
