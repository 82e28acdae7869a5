// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/yomira-gate/internal/platform/request"
	"github.com/taibuivan/yomira-gate/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the login and profile HTTP endpoints.
//
// # Scope
//
// Handler assumes the credential gate already admitted the request; it
// must only be registered on a router that applies the gate.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes registers the authentication routes on router.
//
// # Endpoints
//   - POST /login : Verifies the principal's password and returns a JWT.
//   - GET  /user  : Returns the principal's public claim set.
func (handler *Handler) Routes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Get("/user", handler.profile)
}

// # Request Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

/*
Login authenticates the principal and issues an access token.

POST /login

Request:
  - Body: loginRequest (Username, Password)

Response:
  - 200: loginResponse: Signed access token, valid for one hour
  - 400: ErrInvalidJSON: Body is not a JSON object of strings
  - 401: ErrInvalidCredentials: Username or password wrong
  - 500: Internal: Hashing or signing failed
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(LoginInput{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{AccessToken: result.AccessToken})
}

/*
Profile returns the public claim set of the principal.

GET /user

Response:
  - 200: ClaimSet
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.authService.Profile())
}
