package store

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(DefaultContacts)
	ctx := context.Background()

	contacts, err := s.ListContacts(ctx, "anyone")
	require.NoError(t, err)
	assert.Equal(t, DefaultContacts, contacts)

	s.SetContacts("lea", []Contact{{Name: "Papa", MSISDN: 33600000000}})
	contacts, err = s.ListContacts(ctx, "lea")
	require.NoError(t, err)
	assert.Equal(t, []Contact{{Name: "Papa", MSISDN: 33600000000}}, contacts)

	// returned slice is a copy
	contacts[0].Name = "changed"
	again, err := s.ListContacts(ctx, "lea")
	require.NoError(t, err)
	assert.Equal(t, "Papa", again[0].Name)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.ListContacts(cctx, "lea")
	assert.ErrorIs(t, err, context.Canceled)
}
