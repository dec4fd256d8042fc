// Package password hashes and verifies passwords with argon2id.
//
// Hashes are PHC strings ($argon2id$v=19$m=...,t=...,p=...$salt$key) with a
// fresh random salt per call, so the cost parameters travel with the hash and
// can change without invalidating stored passwords.
package password

import (
	"github.com/alexedwards/argon2id"
	"github.com/jasimjamil/course-feedbig-system/internal/config"
	"github.com/jasimjamil/course-feedbig-system/internal/errs"
	"github.com/pkg/errors"
)

// Fixed messages for the three failure modes.
const (
	MsgHashingFailed = "Password hashing failed"
	MsgInvalidHash   = "Invalid password hash"
	MsgAuthFailed    = "Authentication failed"
)

// Hasher computes and checks argon2id hashes with a fixed parameter set.
type Hasher struct {
	params *argon2id.Params
}

// NewHasher returns a Hasher using argon2id.DefaultParams, with any non-zero
// field of cfg overriding the default.
func NewHasher(cfg config.PasswordConfig) *Hasher {
	params := *argon2id.DefaultParams
	if cfg.Memory > 0 {
		params.Memory = cfg.Memory
	}
	if cfg.Iterations > 0 {
		params.Iterations = cfg.Iterations
	}
	if cfg.Parallelism > 0 {
		params.Parallelism = cfg.Parallelism
	}
	if cfg.SaltLength > 0 {
		params.SaltLength = cfg.SaltLength
	}
	if cfg.KeyLength > 0 {
		params.KeyLength = cfg.KeyLength
	}
	return &Hasher{params: &params}
}

// Hash returns the encoded hash of plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := argon2id.CreateHash(plaintext, h.params)
	if err != nil {
		return "", errs.NewInternalError(MsgHashingFailed, errors.Wrap(err, "creating argon2id hash"))
	}
	return hash, nil
}

// Verify checks plaintext against an encoded hash. The comparison is
// constant-time. A malformed hash is INTERNAL, a mismatch UNAUTHORIZED.
func (h *Hasher) Verify(plaintext, encodedHash string) error {
	match, err := argon2id.ComparePasswordAndHash(plaintext, encodedHash)
	if err != nil {
		return errs.NewInternalError(MsgInvalidHash, errors.Wrap(err, "parsing stored hash"))
	}
	if !match {
		return errs.NewUnauthorizedError(MsgAuthFailed, true)
	}
	return nil
}
