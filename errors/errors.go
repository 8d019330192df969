package errors

import (
	"fmt"
)

var (
	NotFound        = fmt.Errorf("not found")
	InvalidKeyType  = fmt.Errorf("invalid key type: keys must be strings")
	NoSpaceLeft     = fmt.Errorf("no space left")
	ForbiddenToGrow = fmt.Errorf("forbidden to grow")
)
