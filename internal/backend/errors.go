package backend

import "errors"

// ErrRequestFailed is the single failure kind of the backend client.
// It covers transport errors, unexpected status codes and
// response bodies which are not a JSON array of strings.
var ErrRequestFailed = errors.New("request failed")
