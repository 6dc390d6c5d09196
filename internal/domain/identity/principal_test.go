//go:build unit
// +build unit

package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipal_Roles(t *testing.T) {
	p := &Principal{ID: "u1", Roles: []string{RoleStudent, RoleTeacher}}

	assert.True(t, p.HasRole(RoleTeacher))
	assert.False(t, p.HasRole(RoleAdmin))
	assert.True(t, p.HasAnyRole(RoleAdmin, RoleStudent))
	assert.False(t, p.HasAnyRole(RoleAdmin, RoleMentor))
	assert.Equal(t, RoleTeacher, p.PrimaryRole())
	assert.Equal(t, "", (&Principal{Roles: []string{"ROLE_GUEST"}}).PrimaryRole())
}

func TestPrincipal_Username(t *testing.T) {
	assert.Equal(t, "Marie Curie", (&Principal{ID: "u1", Name: "Marie Curie"}).Username())
	assert.Equal(t, "u1", (&Principal{ID: "u1"}).Username())
}

func TestPrincipal_Context(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	p := &Principal{ID: "u1"}
	got, ok := FromContext(WithPrincipal(context.Background(), p))
	assert.True(t, ok)
	assert.Same(t, p, got)
}
