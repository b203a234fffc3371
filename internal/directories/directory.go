package directories

import (
	"context"
	"errors"
)

var (
	ErrDirectoryUnavailable = errors.New("directory unavailable")
)

// Directory resolves a Windows user name to the names of the groups the user belongs to.
// A user unknown to the directory belongs to no group.
//
//go:generate mockgen -source=directory.go -destination=./mocks/directory_mock.go -package=mocks
type Directory interface {
	GroupsOf(ctx context.Context, user string) ([]string, error)
}
