package service

import "errors"

var (
	ErrInvalidSignRequest    = errors.New("invalid sign request")
	ErrBuildingEnvelope      = errors.New("error building soap envelope")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
