package jwt

import "time"

// DefaultLeeway tolerates small clock skew against the issuer.
const DefaultLeeway = 5 * time.Second
