package chainmap

import (
	"github.com/xaionaro-go/chainmap/errors"
)

var (
	NotFound        = errors.NotFound
	InvalidKeyType  = errors.InvalidKeyType
	NoSpaceLeft     = errors.NoSpaceLeft
	ForbiddenToGrow = errors.ForbiddenToGrow
)
