package service

import "errors"

var (
	ErrVersionIsNotSpecified     = errors.New("app version is not specified")
	ErrServiceNameIsNotSpecified = errors.New("service name is not specified")
)
