package services

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

const (
	batchIDLength   = 6
	batchIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewBatchID returns a random 6-character uppercase alphanumeric code.
func NewBatchID() (string, error) {
	base := big.NewInt(int64(len(batchIDAlphabet)))
	id := make([]byte, batchIDLength)
	for i := range id {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate batch id")
		}
		id[i] = batchIDAlphabet[n.Int64()]
	}
	return string(id), nil
}
