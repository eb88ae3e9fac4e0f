package main

import "errors"

var (
	errCommandUnknown   = errors.New("command is unknown")
	errShutdownTimedOut = errors.New("shutdown timed out")
)
