package common

// AccessTokenHeaderName is the HTTP header carrying the bearer token. The token
// is sent as-is, without a "Bearer " prefix.
const AccessTokenHeaderName = "Authorization"
