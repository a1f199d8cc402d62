package auth

import (
	"time"

	"identity/config"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	audienceSession           = "session"
	audienceProfileCompletion = "profile_completion"
)

// sessionUser is the identity snapshot embedded under the "user" claim.
type sessionUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Gender    string    `json:"gender"`
}

type sessionClaims struct {
	User sessionUser `json:"user"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret     []byte
	sessionTTL time.Duration
	pendingTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.SecretKey.Session, cfg.Auth.SessionTTL, cfg.Auth.PendingProfileTTL, time.Now)
}

func newJWTService(secret string, sessionTTL, pendingTTL time.Duration, now func() time.Time) (*jwtService, error) {
	if len(secret) < config.MinSessionSecretLength {
		return nil, errors.Errorf("session secret must be at least %d bytes", config.MinSessionSecretLength)
	}
	if sessionTTL <= 0 || pendingTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	return &jwtService{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		pendingTTL: pendingTTL,
		now:        now,
	}, nil
}

// IssueSession signs a session token for the snapshot.
func (s *jwtService) IssueSession(snapshot entity.SessionSnapshot) (*service.IssuedToken, error) {
	registered := s.registeredClaims(snapshot.ID, audienceSession, s.sessionTTL)
	claims := sessionClaims{
		User: sessionUser{
			ID:        snapshot.ID,
			FirstName: snapshot.FirstName,
			LastName:  snapshot.LastName,
			Gender:    snapshot.Gender.String(),
		},
		RegisteredClaims: registered,
	}

	return s.sign(claims, registered)
}

// VerifySession parses a session token and returns its embedded snapshot.
func (s *jwtService) VerifySession(tokenString string) (*service.VerifiedSession, error) {
	claims := &sessionClaims{}
	if err := s.parse(tokenString, claims, audienceSession); err != nil {
		return nil, err
	}
	if claims.User.ID == uuid.Nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("missing session claims")
	}

	return &service.VerifiedSession{
		Snapshot: entity.SessionSnapshot{
			ID:        claims.User.ID,
			FirstName: claims.User.FirstName,
			LastName:  claims.User.LastName,
			Gender:    entity.Gender(claims.User.Gender),
		},
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IssueProfileCompletion signs a short-lived token bound to identityID.
func (s *jwtService) IssueProfileCompletion(identityID uuid.UUID) (*service.IssuedToken, error) {
	registered := s.registeredClaims(identityID, audienceProfileCompletion, s.pendingTTL)

	return s.sign(registered, registered)
}

// VerifyProfileCompletion returns the identity id a profile completion token is bound to.
func (s *jwtService) VerifyProfileCompletion(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	if err := s.parse(tokenString, claims, audienceProfileCompletion); err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrTokenInvalid.WithDetails("malformed subject")
	}

	return id, nil
}

func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *jwtService) ProfileCompletionTTL() time.Duration {
	return s.pendingTTL
}

func (s *jwtService) registeredClaims(subject uuid.UUID, audience string, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()

	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject.String(),
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtService) sign(claims jwt.Claims, registered jwt.RegisteredClaims) (*service.IssuedToken, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, domainerrors.ErrTokenSigningFailed.WrapMessage(err.Error())
	}

	return &service.IssuedToken{
		Value:     signed,
		JTI:       registered.ID,
		ExpiresAt: registered.ExpiresAt.Time,
	}, nil
}

// parse verifies signature, expiry and audience. Expiry is reported as
// ErrTokenExpired only when the signature is otherwise valid.
func (s *jwtService) parse(tokenString string, claims jwt.Claims, audience string) error {
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	default:
		return domainerrors.ErrTokenInvalid.WithDetails(err.Error())
	}
}
