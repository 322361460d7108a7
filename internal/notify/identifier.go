package notify

import (
	"crypto/rand"
	"math/big"
)

// identifierAlphabet leaves out 0/O, 1/l and I so identifiers survive being
// read aloud or copied from logs.
const identifierAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const identifierLength = 16

// newIdentifier draws an unbiased random identifier for an armed
// notification. rand.Int rejects values past the last whole multiple of the
// alphabet size, so no character is favored.
func newIdentifier() (string, error) {
	limit := big.NewInt(int64(len(identifierAlphabet)))
	value := make([]byte, identifierLength)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = identifierAlphabet[position.Int64()]
	}
	return string(value), nil
}
