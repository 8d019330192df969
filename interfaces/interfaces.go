package interfaces

// Key is a key of the dynamic Map surface. Only string keys are accepted,
// anything else is rejected with errors.InvalidKeyType.
type Key interface{}

type Map interface {
	Set(key Key, value interface{}) error
	Get(key Key) (value interface{}, err error)
	Has(key Key) (bool, error)
	Unset(key Key) error
	Len() int
	Reset()
	Keys() []interface{}
	Values() []interface{}
	ToSTDMap() map[Key]interface{}
	FromSTDMap(map[Key]interface{})
	CheckConsistency() error
	SetForbidGrowing(bool)
}

type Hasher interface {
	// Hash returns the bucket index of the key for the given bucket count.
	Hash(blockSize uint64, key string) uint64
	// KeyString validates a dynamic key and returns its text form.
	KeyString(key Key) (string, error)
}
