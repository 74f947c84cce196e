package domain

import "errors"

var (
	ErrNoRateSample        = errors.New("no fx rate sample for currency")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidEvent        = errors.New("invalid event payload")
)
