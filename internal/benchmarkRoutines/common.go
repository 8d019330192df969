package benchmarkRoutines

import (
	"encoding/hex"
	"math/rand"

	I "github.com/xaionaro-go/chainmap/interfaces"
)

type mapFactoryFunc func(loadFactor float64, blockSize uint64) I.Map
type hashFunc func(blockSize uint64, key string) uint64

type keyStruct struct {
	Key uint32
}

// generateKeys returns keyAmount unique keys. Only "string" keys are
// accepted by the maps; the other types are used to check the rejection.
func generateKeys(keyAmount uint64, keyType string) []interface{} {
	resultMap := map[string]bool{}
	for uint64(len(resultMap)) < keyAmount {
		newKey := make([]byte, 4)
		rand.Read(newKey)
		resultMap[hex.EncodeToString(newKey)] = true
	}

	i := 0
	result := make([]interface{}, keyAmount)
	for newKey := range resultMap {
		switch keyType {
		case "string":
			result[i] = newKey
		case "bytes":
			result[i] = []byte(newKey)
		case "int":
			result[i] = i
		case "struct":
			result[i] = keyStruct{Key: uint32(i)}
		default:
			panic("Unknown key type: " + keyType)
		}
		i++
	}
	return result
}

func generateStringKeys(keyAmount uint64) []string {
	keys := generateKeys(keyAmount, "string")
	result := make([]string, len(keys))
	for i, key := range keys {
		result[i] = key.(string)
	}
	return result
}
