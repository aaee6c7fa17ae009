package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

var ErrInvalidHash = errors.New("invalid password hash")

type (
	PasswordHasher interface {
		Hash(password string) (string, error)
		Verify(hash, password string) (bool, error)
	}

	Argon2Params struct {
		Memory     uint32
		Iterations uint32
		Threads    uint8
		SaltLength uint32
		KeyLength  uint32
	}

	// Argon2Hasher produces argon2id hashes in the PHC string format:
	// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<key>
	Argon2Hasher struct {
		params Argon2Params
	}
)

var DefaultArgon2Params = Argon2Params{
	Memory:     64 * 1024,
	Iterations: 3,
	Threads:    4,
	SaltLength: 16,
	KeyLength:  32,
}

func NewArgon2Hasher(params Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{
		params: params,
	}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	p := h.params
	key := argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Threads, p.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Iterations, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the key with the parameters stored in hash, so hashes
// made with older parameters keep verifying.
func (h *Argon2Hasher) Verify(hash, password string) (bool, error) {
	p, salt, key, err := decodeArgon2Hash(hash)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Threads, p.KeyLength)
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decodeArgon2Hash(hash string) (*Argon2Params, []byte, []byte, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, errors.Wrap(ErrInvalidHash, err.Error())
	}
	if version != argon2.Version {
		return nil, nil, nil, errors.Wrapf(ErrInvalidHash, "unsupported version %d", version)
	}

	p := Argon2Params{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Threads); err != nil {
		return nil, nil, nil, errors.Wrap(ErrInvalidHash, err.Error())
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, errors.Wrap(ErrInvalidHash, "decode salt")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, errors.Wrap(ErrInvalidHash, "decode key")
	}
	if p.Memory == 0 || p.Iterations == 0 || p.Threads == 0 || len(key) == 0 {
		return nil, nil, nil, errors.Wrap(ErrInvalidHash, "empty parameter")
	}
	p.SaltLength = uint32(len(salt))
	p.KeyLength = uint32(len(key))

	return &p, salt, key, nil
}
