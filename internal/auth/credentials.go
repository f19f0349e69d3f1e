package auth

import "net/http"

const (
	AuthorizationHeader = "Authorization"
	ServerURLHeader     = "BWS-Server"
)

// Credentials are the bws access settings supplied by the caller
type Credentials struct {
	Token     string // access token, passed to bws as-is
	ServerURL string // optional server override
}

// CredentialsFromRequest reads the bws headers. The token is not parsed or validated here;
// an empty Token means the header was missing.
func CredentialsFromRequest(r *http.Request) Credentials {
	return Credentials{
		Token:     r.Header.Get(AuthorizationHeader),
		ServerURL: r.Header.Get(ServerURLHeader),
	}
}
