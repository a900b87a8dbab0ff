package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]Role{
		"Client":        Client,
		"Cliente":       Client,
		"cliente":       Client,
		" CLIENTE ":     Client,
		"Barber":        Barber,
		"Barbero":       Barber,
		"Administrator": Admin,
		"Administrador": Admin,
		"Manager":       Admin,
		"owner":         Unknown,
		"":              Unknown,
	}

	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "%q", in)
	}
}

func TestRedirectTarget(t *testing.T) {
	assert.Equal(t, "/cliente/dashboard", Client.RedirectTarget())
	assert.Equal(t, "/barbero/dashboard", Barber.RedirectTarget())
	assert.Equal(t, "/admin/dashboard", Admin.RedirectTarget())
	assert.Equal(t, "/", Unknown.RedirectTarget())
}

func TestIn(t *testing.T) {
	assert.True(t, Client.In("Cliente"))
	assert.True(t, Client.In("Client", "Barbero"))
	assert.True(t, Admin.In("Manager"))
	assert.False(t, Barber.In("Client", "Cliente"))
	assert.False(t, Unknown.In("Client", "Barber", "Administrator"))
}

func TestFromID(t *testing.T) {
	assert.Equal(t, Client, FromID(1))
	assert.Equal(t, Barber, FromID(2))
	assert.Equal(t, Admin, FromID(3))
	assert.Equal(t, Unknown, FromID(9))

	assert.Equal(t, uint(1), Client.ID())
	assert.Equal(t, uint(0), Unknown.ID())
}
