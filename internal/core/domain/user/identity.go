package user

// AccessToken is a signed stateless identity token embedding the
// user's id and email. Tokens carry no expiration claim.
type AccessToken string

type AccessTokenIssuer interface {
	Sign(user User) (AccessToken, error)
}
