// Package rest implements a generic, entity-scoped REST client: typed
// get/list/create/update/delete verbs against one backend resource
// collection, with a bearer token attached from persisted storage on
// every request.
//
//	tokens := token.NewMemory()
//	client, err := rest.New(
//	    endpoint.Endpoint{Entity: "users"},
//	    endpoint.Defaults{Host: "api.example.com"},
//	    tokens,
//	)
//
//	user, err := rest.Get[User](ctx, client, "123")
//	page, err := rest.List[[]User](ctx, client,
//	    rest.WithFilter(rest.Filter{"active": true}),
//	    rest.WithNavigation(1, 20),
//	)
//	id, err := rest.Create(ctx, client, NewUser{Name: "Alice"})
//
// # Result contract
//
// Only a 200 response with a non-empty body decodes into the requested
// type. Any other status, or an empty body, yields the zero value with a
// nil error. Callers therefore cannot distinguish "no data" from a soft
// failure without inspecting the value; use Call with a pointer type or
// the httpclient package directly when that distinction matters.
// Transport failures and hook errors are returned unchanged.
package rest
