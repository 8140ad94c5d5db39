package session

import (
	"context"
	"sync"

	"docnet-client/internal/app/models"
	"docnet-client/internal/app/services/shared/restclient"
	"docnet-client/internal/app/services/shared/tokenstore"
	"docnet-client/internal/pkg/constvars"
	"docnet-client/internal/pkg/dto/requests"
	"docnet-client/internal/pkg/dto/responses"
	"docnet-client/internal/pkg/exceptions"
	"docnet-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	Rest   restclient.RestClient
	Tokens tokenstore.TokenStore
	Log    *zap.Logger

	mu    sync.RWMutex
	state models.SessionState
	user  *models.User
}

func NewSessionUsecase(rest restclient.RestClient, tokens tokenstore.TokenStore, logger *zap.Logger) SessionUsecase {
	return &sessionUsecase{
		Rest:   rest,
		Tokens: tokens,
		Log:    logger,
		state:  models.SessionUnresolved,
	}
}

func (uc *sessionUsecase) Restore(ctx context.Context) {
	token, _ := uc.Tokens.Load()
	if token == "" {
		uc.setSession(models.SessionAnonymous, nil)
		return
	}

	uc.setSession(models.SessionValidating, nil)

	profile := new(models.User)
	err := uc.Rest.DoJSON(ctx, constvars.MethodGet, constvars.EndpointMe, nil, nil, profile)
	if err != nil {
		uc.Log.Warn("sessionUsecase.Restore persisted token rejected",
			zap.Int(constvars.LoggingStatusKey, exceptions.StatusOf(err)),
			zap.Error(err),
		)
		uc.Tokens.Clear()
		uc.setSession(models.SessionAnonymous, nil)
		return
	}

	// The server's representation is authoritative; the cached profile is
	// replaced with the refreshed one.
	uc.Tokens.Save(token, profile)
	uc.setSession(models.SessionAuthenticated, profile)

	uc.Log.Info("sessionUsecase.Restore session restored",
		zap.String(constvars.LoggingUserIDKey, profile.ID),
		zap.String(constvars.LoggingRoleKey, string(profile.Role)),
	)
}

func (uc *sessionUsecase) Login(ctx context.Context, request *requests.Login) error {
	auth := new(responses.Auth)
	err := uc.Rest.DoJSON(ctx, constvars.MethodPost, constvars.EndpointLogin, nil, request, auth)
	if err != nil {
		// Wrong password, wrong role and unknown account all collapse into
		// the same answer so account existence never leaks.
		uc.Log.Warn("sessionUsecase.Login failed",
			zap.Int(constvars.LoggingStatusKey, exceptions.StatusOf(err)),
		)
		if exceptions.IsNetworkFailure(err) {
			return err
		}
		return exceptions.ErrInvalidCredentials(err)
	}

	user := auth.User()
	uc.Tokens.Save(auth.Token, user)
	uc.setSession(models.SessionAuthenticated, user)

	uc.Log.Info("sessionUsecase.Login succeeded",
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, string(user.Role)),
	)
	return nil
}

func (uc *sessionUsecase) Register(ctx context.Context, request *requests.Register) error {
	auth := new(responses.Auth)
	err := uc.Rest.DoJSON(ctx, constvars.MethodPost, constvars.EndpointRegister, nil, request, auth)
	if err != nil {
		uc.Log.Warn("sessionUsecase.Register failed",
			zap.Int(constvars.LoggingStatusKey, exceptions.StatusOf(err)),
		)
		if exceptions.IsConflict(err) {
			return exceptions.ErrEmailAlreadyInUse(err)
		}
		return err
	}

	user := auth.User()
	uc.Tokens.Save(auth.Token, user)
	uc.setSession(models.SessionAuthenticated, user)

	uc.Log.Info("sessionUsecase.Register succeeded",
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, string(user.Role)),
	)
	return nil
}

func (uc *sessionUsecase) VerifyDoctor(ctx context.Context, nmcNumber string) (bool, error) {
	request := &requests.VerifyNMC{NMCNumber: nmcNumber}
	utils.SanitizeVerifyNMCRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return false, exceptions.ErrInputValidation(err)
	}

	result := new(responses.VerifyNMC)
	err := uc.Rest.DoJSON(ctx, constvars.MethodPost, constvars.EndpointVerifyNMC, nil, request, result)
	if err != nil {
		return false, err
	}
	return result.IsValid, nil
}

func (uc *sessionUsecase) Logout(ctx context.Context) {
	err := uc.Rest.DoJSON(ctx, constvars.MethodPost, constvars.EndpointLogout, nil, nil, nil)
	if err != nil {
		// Best effort only. Local teardown still runs, otherwise a network
		// error could leave the client stuck logged in.
		uc.Log.Warn("sessionUsecase.Logout server-side invalidation failed",
			zap.Error(err),
		)
	}

	uc.Tokens.Clear()
	uc.setSession(models.SessionAnonymous, nil)
	uc.Log.Info("sessionUsecase.Logout local session cleared")
}

func (uc *sessionUsecase) State() models.SessionState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

func (uc *sessionUsecase) CurrentUser() *models.User {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.user
}

func (uc *sessionUsecase) setSession(state models.SessionState, user *models.User) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state = state
	uc.user = user
}
