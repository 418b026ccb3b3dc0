package peers

import "errors"

var (
	ErrPeerNotFound = errors.New("peer not found")
)
