package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt implements service.PasswordHasher. Hashes written with another
// cost still verify; the cost is read back from the hash itself.
type Bcrypt struct {
	cost int
}

// NewBcrypt clamps cost into the range bcrypt accepts. Zero picks the
// library default, which matches hashes produced by the seeder.
func NewBcrypt(cost int) *Bcrypt {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Cost() int { return b.cost }

func (b *Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func (b *Bcrypt) Compare(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
