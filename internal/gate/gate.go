// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gate implements the transport-level credential gate.

Every protected route is wrapped by [Gate.Middleware]. The gate checks the
HTTP Basic credentials of the request against a single configured pair and
either lets the request through untouched or ends it with a bare 401.

# Security

Callers only ever see "401 Unauthorized". Whether the header was missing,
malformed, or carried the wrong name or secret is recorded in operator logs
alone.
*/
package gate

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/yomira-gate/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-gate/internal/platform/respond"
)

// # Verdicts

// Outcome is the result of evaluating a request at the gate.
type Outcome int

const (
	// Rejected means the request must not reach any route logic.
	Rejected Outcome = iota

	// Admitted means both the name and the secret matched.
	Admitted
)

// String implements [fmt.Stringer].
func (o Outcome) String() string {
	if o == Admitted {
		return "admitted"
	}
	return "rejected"
}

var (
	// ErrMissingCredentials means no parseable Basic credentials were sent.
	ErrMissingCredentials = errors.New("gate: missing or malformed basic credentials")

	// ErrCredentialMismatch means the credentials were parsed but did not match.
	ErrCredentialMismatch = errors.New("gate: credential mismatch")
)

// Verdict is the discriminated result of [Gate.Admit].
type Verdict struct {
	Outcome Outcome

	// Name is the transport name presented by the client, if any.
	Name string

	// Cause explains a rejection for operator logs. Nil when admitted.
	Cause error
}

// # Gate

// Gate holds the expected Basic credential pair. It is immutable after
// construction and safe for concurrent use.
type Gate struct {
	user []byte
	pass []byte
}

// New constructs a [Gate] expecting exactly user and pass.
func New(user, pass string) *Gate {
	return &Gate{user: []byte(user), pass: []byte(pass)}
}

// Admit evaluates the Basic credentials carried by request.
//
// Both fields are compared in constant time and both comparisons always run,
// so the response timing does not reveal which one failed.
func (g *Gate) Admit(request *http.Request) Verdict {
	name, secret, ok := request.BasicAuth()
	if !ok {
		return Verdict{Outcome: Rejected, Cause: ErrMissingCredentials}
	}

	nameOK := subtle.ConstantTimeCompare([]byte(name), g.user)
	secretOK := subtle.ConstantTimeCompare([]byte(secret), g.pass)

	if nameOK&secretOK != 1 {
		return Verdict{Outcome: Rejected, Name: name, Cause: ErrCredentialMismatch}
	}

	return Verdict{Outcome: Admitted, Name: name}
}

// Middleware guards next with [Gate.Admit].
//
// A rejected request receives a bare 401 and next is never invoked. An
// admitted request is forwarded with the admitted name recorded in its
// context for request logging.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		verdict := g.Admit(request)

		if verdict.Outcome != Admitted {
			ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "gate_rejected",
				slog.String("reason", verdict.Cause.Error()),
			)
			respond.Status(writer, http.StatusUnauthorized)
			return
		}

		ctx := ctxutil.WithGateUser(request.Context(), verdict.Name)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
