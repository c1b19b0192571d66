package errors

import "net/http"

// TokenErrorKind classifies why a bearer token was rejected.
type TokenErrorKind int

const (
	TokenAbsent TokenErrorKind = iota + 1
	TokenExpired
	TokenNotYetValid
	TokenInvalid
	TokenStale
)

// Token failure codes sent to clients. Game clients branch on these values.
const (
	CodeTokenAbsent      = "ABS"
	CodeTokenExpired     = "EXP"
	CodeTokenNotYetValid = "EAR"
	CodeTokenInvalid     = "INV"
	CodeTokenStale       = "NPF"
)

var tokenErrorText = map[TokenErrorKind]struct {
	code    string
	message string
}{
	TokenAbsent:      {CodeTokenAbsent, "Token is missing."},
	TokenExpired:     {CodeTokenExpired, "Token is expired!"},
	TokenNotYetValid: {CodeTokenNotYetValid, "It is too early to use this token!"},
	TokenInvalid:     {CodeTokenInvalid, "Token could not be parsed."},
	TokenStale:       {CodeTokenStale, "Token does not represent a valid player account."},
}

// TokenError is returned when a bearer token fails verification or no longer
// resolves to exactly one player. It always maps to 401.
type TokenError struct {
	kind  TokenErrorKind
	cause error
}

// NewTokenError creates a token error of the given kind. cause may be nil.
func NewTokenError(kind TokenErrorKind, cause error) *TokenError {
	return &TokenError{kind: kind, cause: cause}
}

// Kind returns the classification of the failure.
func (e *TokenError) Kind() TokenErrorKind {
	return e.kind
}

func (e *TokenError) Error() string {
	if e.cause != nil {
		return e.Message() + ": " + e.cause.Error()
	}

	return e.Message()
}

func (e *TokenError) Unwrap() error {
	return e.cause
}

// Is matches another TokenError of the same kind.
func (e *TokenError) Is(target error) bool {
	t, ok := target.(*TokenError)

	return ok && t.kind == e.kind
}

func (e *TokenError) HTTPCode() int {
	return http.StatusUnauthorized
}

func (e *TokenError) ErrorCode() string {
	return tokenErrorText[e.kind].code
}

func (e *TokenError) Message() string {
	return tokenErrorText[e.kind].message
}

func (e *TokenError) Details() string {
	return ""
}

// Sentinels for errors.Is checks.
var (
	ErrTokenAbsent      = NewTokenError(TokenAbsent, nil)
	ErrTokenExpired     = NewTokenError(TokenExpired, nil)
	ErrTokenNotYetValid = NewTokenError(TokenNotYetValid, nil)
	ErrTokenInvalid     = NewTokenError(TokenInvalid, nil)
	ErrTokenStale       = NewTokenError(TokenStale, nil)
)
