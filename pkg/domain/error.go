package domain

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidInput  = goerr.New("invalid input")
	ErrConfiguration = goerr.New("configuration error")
	ErrSlackDelivery = goerr.New("slack delivery failed")
)
