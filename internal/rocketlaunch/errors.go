package rocketlaunch

import "errors"

// ErrTransport covers network failures and unexpected HTTP statuses while
// fetching the feed; ErrFormat covers a payload that does not decode.
// The worker treats both as cycle failures, but logs distinguish them.
var (
	ErrTransport = errors.New("feed transport")
	ErrFormat    = errors.New("feed format")
)
