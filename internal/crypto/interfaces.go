package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way hashes and checks
// candidates against them. Implementations never return or log plaintext.
type PasswordHasher interface {
	// Hash returns the encoded hash of password. The result embeds its own
	// salt and cost, so hashing the same password twice yields different
	// strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. Any failure, including a
	// malformed hash, is reported as false.
	Verify(password, hash string) bool
}
