package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionDirtyProtocol(t *testing.T) {
	session := newSession()
	assert.False(t, session.Dirty())

	session.MarkDirty()
	assert.True(t, session.Dirty())

	session.CompleteRefresh()
	assert.False(t, session.Dirty())
}

func TestSessionSearchTermMarksDirty(t *testing.T) {
	session := newSession()

	session.SetSearchTerm("rex")
	assert.Equal(t, "rex", session.SearchTerm())
	assert.True(t, session.Dirty())

	session.CompleteRefresh()
	session.SetSearchTerm("")
	assert.True(t, session.Dirty(), "clearing the term is still a new search")
}

func TestSessionLoadingIsPerTarget(t *testing.T) {
	session := newSession()

	session.SetLoading("card-1", true)
	session.SetLoading("card-2", true)
	session.SetLoading("card-1", false)

	assert.False(t, session.Loading("card-1"))
	assert.True(t, session.Loading("card-2"))
	assert.False(t, session.Loading("card-3"))
}

func TestRegistryKeepsOneSessionPerUser(t *testing.T) {
	registry := NewSessionRegistry()

	a := registry.Session("owner-a")
	b := registry.Session("owner-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, registry.Session("owner-a"))

	a.MarkDirty()
	assert.False(t, b.Dirty())
}

func TestRegistryDrop(t *testing.T) {
	registry := NewSessionRegistry()

	registry.Session("owner-a").MarkDirty()
	registry.Drop("owner-a")

	assert.False(t, registry.Session("owner-a").Dirty(), "dropped session state must not survive")
}
