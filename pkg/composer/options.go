package composer

type Option func(c *Composer)

// WithExactHeaderNames merges header entries by exact name, so
// "content-type" and "Content-Type" are kept as two headers.
func WithExactHeaderNames() Option {
	return func(c *Composer) {
		c.exactHeaderNames = true
	}
}

// WithTarget sets the initial target URL.
func WithTarget(url string) Option {
	return func(c *Composer) {
		c.target = url
	}
}
