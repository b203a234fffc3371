package directories

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"printer-report/internal/shared/filestorages"

	"gopkg.in/yaml.v3"
)

// groupFile is the static membership list, for sites without Active Directory:
//
//	groups:
//	  - name: Finance
//	    members: [alice, bob]
//	  - name: Staff
//	    members: [alice, bob, carol]
type groupFile struct {
	Groups []struct {
		Name    string   `yaml:"name"`
		Members []string `yaml:"members"`
	} `yaml:"groups"`
}

type fileDirectory struct {
	groupsByUser map[string][]string
}

// NewFileDirectory loads a group file. User names are matched case-insensitively, as Windows does.
func NewFileDirectory(ctx context.Context, path string) (Directory, error) {
	storage, err := filestorages.NewFileStorage(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}
	rc, err := storage.Get(ctx, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryUnavailable, path, err)
	}
	defer rc.Close()

	var file groupFile
	if err := yaml.NewDecoder(rc).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: invalid group file %s: %w", ErrDirectoryUnavailable, path, err)
	}

	groupsByUser := make(map[string][]string)
	for _, group := range file.Groups {
		if group.Name == "" {
			return nil, fmt.Errorf("%w: group file %s has a group without a name", ErrDirectoryUnavailable, path)
		}
		for _, member := range group.Members {
			key := strings.ToLower(member)
			groupsByUser[key] = appendUnique(groupsByUser[key], group.Name)
		}
	}
	return &fileDirectory{groupsByUser: groupsByUser}, nil
}

func (d *fileDirectory) GroupsOf(ctx context.Context, user string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.groupsByUser[strings.ToLower(user)], nil
}

func appendUnique(names []string, name string) []string {
	for _, existing := range names {
		if existing == name {
			return names
		}
	}
	return append(names, name)
}
