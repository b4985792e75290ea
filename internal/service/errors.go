package service

import "errors"

var (
	ErrBatchNotFound   = errors.New("batch not found")
	ErrBatchExists     = errors.New("batch already exists")
	ErrEmptyBatchName  = errors.New("batch name cannot be empty")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrUnknownKind     = errors.New("unknown product kind")
	ErrArchiveDisabled = errors.New("order archive is disabled")
)
