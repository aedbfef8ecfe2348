/*
The router package routes HTTP requests to the resolvable values handlers produce.

A [Route] names a path and method and the [resolve.HandlerFunc] answering it.
[Router] registers Routes on a [github.com/gorilla/mux.Router],
chains [middleware.Adapter] stacks around them,
and funnels unmatched requests through the resolver's catcher registry.

Path variables captured by the router are the read-only routing context
resolution consumes; retrieve them with [Params].
*/
package router
