package store

import (
	"context"
)

//go:generate mockgen -destination=mock/store.go -package=mock . Store

type Store interface {
	ListContacts(ctx context.Context, userID string) ([]Contact, error)
}

type Contact struct {
	Name   string
	MSISDN int64
}
