package middlewares

import "errors"

var errTooManyRequests = errors.New("too many requests, please slow down")
