package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrInvalidRepository = goerr.New("invalid repository reference")
	ErrInvalidResponse   = goerr.New("invalid response")
)
