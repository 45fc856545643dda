package contract

// IHasher defines one-way credential hashing. Hashing salts per call,
// so two hashes of the same plaintext differ while both verify.
type IHasher interface {
	HashPassword(password string) (string, error)
	// ComparePasswordHash returns an error for any mismatch, including
	// malformed stored hashes. Callers must treat every error the same
	// way and never surface the distinction.
	ComparePasswordHash(password, hashedPassword string) error
}

// IUUIDGenerator generates unique identifiers for new entities.
type IUUIDGenerator interface {
	NewUUID() string
}
