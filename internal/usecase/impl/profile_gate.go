// Package impl contains the implementation of the application's business logic.
package impl

import (
	"net/url"

	"identity/config"
	"identity/internal/domain/entity"
	"identity/internal/domain/service"
	"identity/internal/usecase"

	"github.com/pkg/errors"
)

// profileGate issues a session only for complete profiles. Incomplete ones get
// a profile completion proof and the completion URL instead.
type profileGate struct {
	tokenService   service.TokenService
	landingPath    string
	completionPath string
}

func newProfileGate(tokenService service.TokenService, cfg *config.Config) *profileGate {
	gate := &profileGate{
		tokenService:   tokenService,
		landingPath:    config.DefaultLandingPath,
		completionPath: config.DefaultProfileCompletionPath,
	}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.LandingPath != "" {
			gate.landingPath = cfg.Auth.LandingPath
		}
		if cfg.Auth.ProfileCompletionPath != "" {
			gate.completionPath = cfg.Auth.ProfileCompletionPath
		}
	}

	return gate
}

func (g *profileGate) apply(identity *entity.Identity) (*usecase.AuthResult, error) {
	result := &usecase.AuthResult{
		Identity: identity,
		State:    identity.ProfileState(),
	}

	if result.State == entity.ProfileComplete {
		session, err := g.tokenService.IssueSession(identity.Snapshot())
		if err != nil {
			return nil, errors.Wrap(err, "failed to issue session")
		}
		result.Session = session
		result.RedirectURL = g.landingPath

		return result, nil
	}

	pending, err := g.tokenService.IssueProfileCompletion(identity.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue profile completion token")
	}
	result.PendingProfile = pending
	result.RedirectURL = g.completionURL(identity)

	return result, nil
}

func (g *profileGate) completionURL(identity *entity.Identity) string {
	query := url.Values{}
	query.Set("userId", identity.ID.String())

	return g.completionPath + "?" + query.Encode()
}
