// Package httpclient provides the base HTTP transport for restkit: a thin
// client around net/http with a base URL, default headers, a per-client
// timeout, and a chain of outbound-request hooks.
//
// The transport deliberately does not retry, classify response statuses,
// or stream — callers get the raw status code and body back and decide
// what they mean. The rest package builds its permissive result contract
// on top of exactly that.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com/users/",
//	    Timeout: 15 * time.Second,
//	    Headers: map[string]string{"Content-Type": "application/json"},
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "123",
//	})
package httpclient
