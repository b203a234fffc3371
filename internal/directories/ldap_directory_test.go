package directories

import (
	"context"
	"errors"
	"testing"

	"printer-report/internal/shared/configs"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLDAPConn struct {
	requests []*ldap.SearchRequest
	entries  []*ldap.Entry
	err      error
	closed   bool
}

func (c *fakeLDAPConn) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	return &ldap.SearchResult{Entries: c.entries}, nil
}

func (c *fakeLDAPConn) Close() error {
	c.closed = true
	return nil
}

func newTestLDAPDirectory(conn *fakeLDAPConn) *LDAPDirectory {
	return &LDAPDirectory{
		conn:   conn,
		baseDN: "DC=corp,DC=example",
		filter: "(&(objectClass=user)(sAMAccountName=%s))",
	}
}

func TestLDAPDirectory_GroupsOf(t *testing.T) {
	t.Parallel()

	conn := &fakeLDAPConn{entries: []*ldap.Entry{
		ldap.NewEntry("CN=Alice,OU=Users,DC=corp,DC=example", map[string][]string{
			"memberOf": {
				"CN=Finance,OU=Groups,DC=corp,DC=example",
				"CN=Print Operators\\, Floor 2,OU=Groups,DC=corp,DC=example",
				"not a dn",
			},
		}),
	}}
	directory := newTestLDAPDirectory(conn)

	groups, err := directory.GroupsOf(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Finance", "Print Operators, Floor 2"}, groups)

	require.Len(t, conn.requests, 1)
	assert.Equal(t, "DC=corp,DC=example", conn.requests[0].BaseDN)
	assert.Equal(t, "(&(objectClass=user)(sAMAccountName=alice))", conn.requests[0].Filter)
	assert.Equal(t, []string{"memberOf"}, conn.requests[0].Attributes)

	require.NoError(t, directory.Close())
	assert.True(t, conn.closed)
}

func TestLDAPDirectory_GroupsOf_EscapesFilter(t *testing.T) {
	t.Parallel()

	conn := &fakeLDAPConn{}
	directory := newTestLDAPDirectory(conn)

	groups, err := directory.GroupsOf(context.Background(), "a*)(x")
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.Equal(t, `(&(objectClass=user)(sAMAccountName=a\2a\29\28x))`, conn.requests[0].Filter)
}

func TestLDAPDirectory_GroupsOf_Errors(t *testing.T) {
	t.Parallel()

	noSuchObject := ldap.NewError(ldap.LDAPResultNoSuchObject, errors.New("no such object"))
	groups, err := newTestLDAPDirectory(&fakeLDAPConn{err: noSuchObject}).GroupsOf(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, groups)

	down := ldap.NewError(ldap.ErrorNetwork, errors.New("connection reset"))
	_, err = newTestLDAPDirectory(&fakeLDAPConn{err: down}).GroupsOf(context.Background(), "alice")
	assert.Error(t, err)
}

func TestCommonName(t *testing.T) {
	t.Parallel()

	name, err := commonName("cn=Staff,OU=Groups,DC=corp,DC=example")
	require.NoError(t, err)
	assert.Equal(t, "Staff", name)

	_, err = commonName("OU=Groups,DC=corp,DC=example")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), configsFor("none"))
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)

	_, err = New(context.Background(), configsFor("nis"))
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
}

func configsFor(kind string) configs.DirectoryConfig {
	return configs.DirectoryConfig{Kind: kind}
}
