package handler

import (
	"log/slog"
	"net/http"

	"identity/internal/delivery/api/cookie"
	apimiddleware "identity/internal/delivery/api/middleware"
	"identity/internal/delivery/api/response"
	deliverycontext "identity/internal/delivery/context"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandler serves registration, login, federation and logout.
type AuthHandler struct {
	identityUC   usecase.IdentityUsecase
	federationUC usecase.FederationUsecase
	sessionUC    usecase.SessionUsecase
	jar          *cookie.Jar
	logger       *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC   usecase.IdentityUsecase
	FederationUC usecase.FederationUsecase
	SessionUC    usecase.SessionUsecase
	Jar          *cookie.Jar
	Logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		identityUC:   params.IdentityUC,
		federationUC: params.FederationUC,
		sessionUC:    params.SessionUC,
		jar:          params.Jar,
		logger:       params.Logger,
	}
}

// Register handles local registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	output, err := h.identityUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newIdentityResponse(output.Identity))
}

// Login handles local login. An incomplete profile receives the completion
// proof and URL with 202 instead of a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.identityUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !result.Complete() {
		h.jar.SetPendingProfile(c, result.PendingProfile)

		return response.Success(c, http.StatusAccepted, &loginResponse{
			ProfileState:  string(result.State),
			CompletionURL: result.RedirectURL,
		})
	}

	h.jar.SetSession(c, result.Session)

	return response.Success(c, http.StatusOK, &loginResponse{
		Identity:     newIdentityResponse(result.Identity),
		ProfileState: string(result.State),
		RedirectURL:  result.RedirectURL,
	})
}

// GoogleLogin redirects to the Google consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	output, err := h.federationUC.BeginGoogleLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	h.jar.SetOAuthState(c, output.State, output.Verifier)

	return c.Redirect(http.StatusFound, output.AuthURL)
}

// GoogleCallback handles the provider redirect and applies the profile completion gate.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	expectedState, verifier := h.jar.OAuthState(c)
	h.jar.ClearOAuthState(c)

	if providerErr := c.QueryParam("error"); providerErr != "" {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Google consent not granted", slog.String("error", providerErr))

		return domainerrors.ErrOAuthFailed.WithDetails(providerErr)
	}

	result, err := h.federationUC.GoogleCallback(c.Request().Context(), &usecase.FederationCallbackInput{
		Code:          c.QueryParam("code"),
		State:         c.QueryParam("state"),
		ExpectedState: expectedState,
		Verifier:      verifier,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if result.Complete() {
		h.jar.ClearPendingProfile(c)
		h.jar.SetSession(c, result.Session)
	} else {
		h.jar.SetPendingProfile(c, result.PendingProfile)
	}

	return c.Redirect(http.StatusFound, result.RedirectURL)
}

// Logout revokes the presented session and clears the cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := apimiddleware.SessionToken(c, h.jar)
	if err := h.sessionUC.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	h.jar.ClearSession(c)
	h.jar.ClearPendingProfile(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}
