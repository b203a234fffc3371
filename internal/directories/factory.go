package directories

import (
	"context"
	"fmt"

	"printer-report/internal/shared/configs"
)

const (
	KindNone = "none"
	KindFile = "file"
	KindLDAP = "ldap"
)

// New builds the directory selected by cfg. It returns ErrDirectoryUnavailable when none is configured or
// the configured one cannot be used; callers then run without group summaries.
func New(ctx context.Context, cfg configs.DirectoryConfig) (Directory, error) {
	switch cfg.Kind {
	case KindFile:
		return NewFileDirectory(ctx, cfg.File)
	case KindLDAP:
		directory, err := NewLDAPDirectory(LDAPConfig{
			URL:          cfg.LDAPURL,
			BindDN:       cfg.LDAPBindDN,
			BindPassword: cfg.LDAPBindPassword,
			BaseDN:       cfg.LDAPBaseDN,
			UserFilter:   cfg.LDAPUserFilter,
		})
		if err != nil {
			return nil, err
		}
		return directory, nil
	case KindNone, "":
		return nil, fmt.Errorf("%w: no directory configured", ErrDirectoryUnavailable)
	default:
		return nil, fmt.Errorf("%w: unknown directory kind %q", ErrDirectoryUnavailable, cfg.Kind)
	}
}
