package chainmap

import (
	"github.com/xaionaro-go/chainmap/errors"
)

var (
	NotFound    = errors.NotFound
	NoSpaceLeft = errors.NoSpaceLeft
)
