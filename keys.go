package switchback

// A Key stashes switchback-owned values in a context.Context,
// avoiding collisions with keys other packages may set.
type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by switchback.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "switchback context key: " + string(k)
}
