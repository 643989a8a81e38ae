package password

import "golang.org/x/crypto/bcrypt"

// BcryptHasher implements port.PasswordHasher with bcrypt. A zero Cost
// uses bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (b BcryptHasher) Hash(pw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b BcryptHasher) Verify(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
