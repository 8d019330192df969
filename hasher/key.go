package hasher

import (
	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

// KeyString returns the text form of a dynamic key. Only string keys are
// accepted; everything else (including []byte and *string) is InvalidKeyType.
func KeyString(keyI I.Key) (string, error) {
	key, ok := keyI.(string)
	if !ok {
		return "", errors.InvalidKeyType
	}
	return key, nil
}

func IsEqualKey(keyA, keyB string) bool {
	return keyA == keyB
}
