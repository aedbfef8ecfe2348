/*
Package waypoint boots a switchback application.

A Waypoint gathers the pieces an application needs at startup,
the logger, the value resolver, and the router,
constructs sensible defaults for whatever the caller does not supply,
and runs the web server until told to stop.

An application needs only this to serve requests:

	wp, err := waypoint.New()
	if err != nil {
		os.Exit(1)
	}

	wp.Handle(router.Route{Path: "/", Method: http.MethodGet, Handler: home})

	if err := wp.Serve(); err != nil {
		os.Exit(1)
	}

Configuration comes from environment variables, loaded from a .env file
when one exists. Confer default.go for the variables read.
*/
package waypoint
