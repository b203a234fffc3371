package directories

import (
	"context"
	"fmt"
	"strings"

	"printer-report/internal/shared/loggers"

	"github.com/go-ldap/ldap/v3"
)

// LDAPConfig locates the Active Directory domain and the user objects in it.
type LDAPConfig struct {
	URL          string
	BindDN       string
	BindPassword string
	BaseDN       string
	UserFilter   string // contains one %s for the escaped user name
}

// ldapConn is the part of *ldap.Conn the directory uses.
type ldapConn interface {
	Search(req *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
}

var dialLDAP = func(cfg LDAPConfig) (ldapConn, error) {
	conn, err := ldap.DialURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.BindDN != "" {
		err = conn.Bind(cfg.BindDN, cfg.BindPassword)
	} else {
		err = conn.UnauthenticatedBind("")
	}
	if err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// LDAPDirectory looks users up in Active Directory.
type LDAPDirectory struct {
	conn   ldapConn
	baseDN string
	filter string
}

// NewLDAPDirectory connects and binds to the directory; it fails with ErrDirectoryUnavailable when the
// server cannot be reached or rejects the credentials. Close releases the connection.
func NewLDAPDirectory(cfg LDAPConfig) (*LDAPDirectory, error) {
	conn, err := dialLDAP(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryUnavailable, cfg.URL, err)
	}
	return &LDAPDirectory{conn: conn, baseDN: cfg.BaseDN, filter: cfg.UserFilter}, nil
}

// GroupsOf returns the common names of the groups listed in the user's memberOf attribute.
func (d *LDAPDirectory) GroupsOf(ctx context.Context, user string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := ldap.NewSearchRequest(
		d.baseDN,
		ldap.ScopeWholeSubtree, ldap.NeverDerefAliases, 1, 0, false,
		fmt.Sprintf(d.filter, ldap.EscapeFilter(user)),
		[]string{"memberOf"},
		nil,
	)
	result, err := d.conn.Search(req)
	if err != nil {
		if ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject) {
			return nil, nil
		}
		return nil, fmt.Errorf("search for %s failed: %w", user, err)
	}
	if len(result.Entries) == 0 {
		return nil, nil
	}

	var groups []string
	for _, groupDN := range result.Entries[0].GetAttributeValues("memberOf") {
		name, err := commonName(groupDN)
		if err != nil {
			loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldUser, user).Msg("Skipping unparseable group DN")
			continue
		}
		groups = appendUnique(groups, name)
	}
	return groups, nil
}

func (d *LDAPDirectory) Close() error {
	return d.conn.Close()
}

// commonName returns the leading CN of a distinguished name such as
// "CN=Finance,OU=Groups,DC=corp,DC=example".
func commonName(dn string) (string, error) {
	parsed, err := ldap.ParseDN(dn)
	if err != nil {
		return "", err
	}
	for _, rdn := range parsed.RDNs {
		for _, attr := range rdn.Attributes {
			if strings.EqualFold(attr.Type, "CN") {
				return attr.Value, nil
			}
		}
	}
	return "", fmt.Errorf("no CN in %q", dn)
}
