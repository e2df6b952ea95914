package server

import "errors"

var (
	errNoServerIsCreated = errors.New("no server is created")
)
