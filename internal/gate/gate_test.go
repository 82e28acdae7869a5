// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gate_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-gate/internal/gate"
	"github.com/taibuivan/yomira-gate/internal/platform/ctxutil"
)

const (
	gateUser = "svc"
	gatePass = "hunter2"
)

func requestWith(setup func(*http.Request)) *http.Request {
	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	if setup != nil {
		setup(request)
	}
	return request
}

/*
TestGate_Admit covers every way a credential pair can be presented.
*/
func TestGate_Admit(t *testing.T) {
	g := gate.New(gateUser, gatePass)

	tests := []struct {
		name    string
		setup   func(*http.Request)
		outcome gate.Outcome
		cause   error
	}{
		{"valid_pair", func(r *http.Request) { r.SetBasicAuth(gateUser, gatePass) }, gate.Admitted, nil},
		{"no_header", nil, gate.Rejected, gate.ErrMissingCredentials},
		{"wrong_secret", func(r *http.Request) { r.SetBasicAuth(gateUser, "wrongpass") }, gate.Rejected, gate.ErrCredentialMismatch},
		{"wrong_name", func(r *http.Request) { r.SetBasicAuth("root", gatePass) }, gate.Rejected, gate.ErrCredentialMismatch},
		{"both_wrong", func(r *http.Request) { r.SetBasicAuth("root", "toor") }, gate.Rejected, gate.ErrCredentialMismatch},
		{"prefix_of_secret", func(r *http.Request) { r.SetBasicAuth(gateUser, "hunter") }, gate.Rejected, gate.ErrCredentialMismatch},
		{"case_differs", func(r *http.Request) { r.SetBasicAuth("SVC", gatePass) }, gate.Rejected, gate.ErrCredentialMismatch},
		{"bearer_scheme", func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc") }, gate.Rejected, gate.ErrMissingCredentials},
		{"bad_base64", func(r *http.Request) { r.Header.Set("Authorization", "Basic !!!") }, gate.Rejected, gate.ErrMissingCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := g.Admit(requestWith(tt.setup))
			assert.Equal(t, tt.outcome, verdict.Outcome)
			assert.ErrorIs(t, verdict.Cause, tt.cause)
			if tt.cause == nil {
				assert.NoError(t, verdict.Cause)
			}
		})
	}
}

/*
TestGate_Middleware verifies the downstream handler only runs when admitted.
*/
func TestGate_Middleware(t *testing.T) {
	g := gate.New(gateUser, gatePass)

	t.Run("admitted_reaches_handler", func(t *testing.T) {
		var called bool
		var seenUser string
		handler := g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			seenUser = ctxutil.GetGateUser(r.Context())
			w.WriteHeader(http.StatusTeapot)
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, requestWith(func(r *http.Request) { r.SetBasicAuth(gateUser, gatePass) }))

		assert.True(t, called)
		assert.Equal(t, gateUser, seenUser)
		assert.Equal(t, http.StatusTeapot, recorder.Code)
	})

	rejected := map[string]func(*http.Request){
		"missing":  nil,
		"mismatch": func(r *http.Request) { r.SetBasicAuth(gateUser, "wrongpass") },
	}

	// Both rejection paths must be indistinguishable to the caller.
	var bodies []string
	for name, setup := range rejected {
		t.Run(name, func(t *testing.T) {
			var called bool
			handler := g.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			}))

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, requestWith(setup))

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			bodies = append(bodies, recorder.Body.String())
		})
	}

	assert.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, "Unauthorized", bodies[0])
}

/*
TestOutcome_String checks the log-friendly names.
*/
func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "admitted", gate.Admitted.String())
	assert.Equal(t, "rejected", gate.Rejected.String())
}
