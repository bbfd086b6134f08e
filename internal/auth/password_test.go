package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	p := NewPasswordHasherWithCost(bcrypt.MinCost)

	for _, password := range []string{"Aa1!aaaa", "correct horse battery staple", "ünïcødé-Pässwörd1"} {
		hash, err := p.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)

		assert.NoError(t, p.Verify(hash, password))
		assert.ErrorIs(t, p.Verify(hash, password+"x"), ErrPasswordMismatch)
		assert.ErrorIs(t, p.Verify(hash, strings.ToUpper(password)), ErrPasswordMismatch)
	}
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	p := NewPasswordHasherWithCost(bcrypt.MinCost)

	first, err := p.Hash("Aa1!aaaa")
	require.NoError(t, err)
	second, err := p.Hash("Aa1!aaaa")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_DefaultCost(t *testing.T) {
	hash, err := NewPasswordHasher().Hash("Aa1!aaaa")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestPasswordHasher_RejectsLongInput(t *testing.T) {
	_, err := NewPasswordHasherWithCost(bcrypt.MinCost).Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestPasswordHasher_EmptyHashNeverMatches(t *testing.T) {
	p := NewPasswordHasherWithCost(bcrypt.MinCost)
	assert.ErrorIs(t, p.Verify("", ""), ErrPasswordMismatch)
	assert.ErrorIs(t, p.Verify("", "anything"), ErrPasswordMismatch)
}
