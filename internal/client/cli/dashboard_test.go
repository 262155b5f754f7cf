package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdcable/portal/internal/client/api"
	"github.com/cmdcable/portal/internal/common"
)

func TestDashboard_NotLoggedIn(t *testing.T) {
	auth := &fakeAuthSvc{}
	portal := &fakePortalSvc{sub: testSubscriber()}
	a, out := newTestApp(auth, portal, "")

	err := a.Dashboard(context.Background())

	require.ErrorIs(t, err, common.ErrNoCredential)
	assert.Contains(t, out.String(), msgNotLoggedIn)
	assert.Equal(t, 0, portal.calls, "protected screen must not hit the network without a credential")
}

func TestDashboard_RendersSubscriber(t *testing.T) {
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{sub: testSubscriber()}
	a, out := newTestApp(auth, portal, "")

	err := a.Dashboard(context.Background())

	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "Amount Due")
	assert.Contains(t, s, "₱2,299.00")
	assert.Contains(t, s, "Due by November 30, 2025")
	assert.Contains(t, s, "Princess Connie Tamayao")
	assert.Contains(t, s, "105959-210")
	assert.Contains(t, s, "Up to 320 Mbps")
}

func TestDashboard_SessionExpired(t *testing.T) {
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{subErr: common.ErrUnauthorized}
	a, out := newTestApp(auth, portal, "")

	err := a.Dashboard(context.Background())

	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.True(t, auth.logoutCalled, "credential rejection must clear the session")
	assert.Contains(t, out.String(), "Your session has expired. Please log in again.")
}

func TestDashboard_TransientFailureKeepsSession(t *testing.T) {
	auth := &fakeAuthSvc{loggedIn: true}
	portal := &fakePortalSvc{subErr: &api.FetchError{Resource: "subscriber", Status: 500}}
	a, out := newTestApp(auth, portal, "")

	err := a.Dashboard(context.Background())

	require.Error(t, err)
	assert.False(t, auth.logoutCalled, "transient failures must not log the user out")
	assert.Contains(t, out.String(), "Error: subscriber fetch failed: 500")
}
