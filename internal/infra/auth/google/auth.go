package google

import (
	"strings"

	"identity/internal/domain/entity"
	"identity/internal/errors"

	"google.golang.org/api/idtoken"
)

const (
	issuerShort = "accounts.google.com"
	issuerLong  = "https://accounts.google.com"
)

// assertionFromPayload maps a validated ID token payload to a federated assertion.
func assertionFromPayload(payload *idtoken.Payload) (*entity.FederatedAssertion, error) {
	if payload.Issuer != issuerShort && payload.Issuer != issuerLong {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if payload.Subject == "" {
		return nil, errors.New("id token missing subject")
	}

	email := stringClaim(payload.Claims, "email")
	if email == "" {
		return nil, errors.New("id token missing email")
	}

	assertion := &entity.FederatedAssertion{
		ProviderID:    payload.Subject,
		Email:         email,
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
		GivenName:     stringClaim(payload.Claims, "given_name"),
		FamilyName:    stringClaim(payload.Claims, "family_name"),
	}

	// Some accounts carry only a display name.
	if assertion.GivenName == "" && assertion.FamilyName == "" {
		if name := stringClaim(payload.Claims, "name"); name != "" {
			first, last, _ := strings.Cut(name, " ")
			assertion.GivenName, assertion.FamilyName = first, last
		}
	}

	return assertion, nil
}

func stringClaim(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// boolClaim accepts both JSON booleans and the "true" string some issuers emit.
func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
