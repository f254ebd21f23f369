package controllers

import (
	"context"
	"errors"
	"medical-portal/internal/app/config"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/requests"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log               *zap.Logger
	AuthUsecase       contracts.AuthUsecase
	SessionStores     contracts.SessionStoreProvider
	InternalConfig    *config.InternalConfig
	RotationListeners []contracts.ClientRotationListener
}

func NewAuthController(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	sessionStores contracts.SessionStoreProvider,
	internalConfig *config.InternalConfig,
	rotationListeners ...contracts.ClientRotationListener,
) *AuthController {
	return &AuthController{
		Log:               logger,
		AuthUsecase:       authUsecase,
		SessionStores:     sessionStores,
		InternalConfig:    internalConfig,
		RotationListeners: rotationListeners,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if request.Redirect == "" {
		request.Redirect = r.URL.Query().Get(constvars.QueryParamRedirect)
	}

	// Sanitize request
	utils.SanitizeLoginRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	previousStore := utils.GetSessionStore(r.Context())
	if previousStore == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerProcess(errors.New("session store missing from request context")))
		return
	}

	// A successful login always lands in a freshly minted client slot, so a
	// client id known before login never carries the authenticated session.
	clientID := utils.GenerateClientID()
	store := ctrl.SessionStores.ForClient(clientID)
	ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLIENT_ID_KEY, clientID)
	ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_STORE_KEY, store)

	// Send it to be processed by usecase
	err = ctrl.AuthUsecase.Login(ctx, store, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = utils.SetClientCookie(w, clientID, ctrl.InternalConfig.ClientCookieOptions())
	if err != nil {
		ctrl.Log.Error("AuthController.Login error signing rotated client cookie",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		store.Clear(ctx)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	err = previousStore.Clear(r.Context())
	if err != nil {
		ctrl.Log.Warn("AuthController.Login error clearing previous client slot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
	previousClientID := utils.GetClientID(r.Context())
	for _, listener := range ctrl.RotationListeners {
		listener.ClientRotated(ctx, previousClientID, clientID)
	}

	// Send response
	response := &responses.Login{
		RedirectTo: utils.SanitizeRedirectPath(request.Redirect, ctrl.InternalConfig.App.LoginPath, constvars.DefaultAfterLogin),
		Session:    responses.NewSession(store.Current()),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	store := utils.GetSessionStore(r.Context())
	if store == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerProcess(errors.New("session store missing from request context")))
		return
	}

	err := ctrl.AuthUsecase.Logout(r.Context(), store)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	maxMemory := int64(ctrl.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxMemory)

	err := r.ParseMultipartForm(maxMemory)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	// Bind form to request
	request := &requests.RegisterUser{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Role:     r.FormValue("role"),
		Phone:    r.FormValue("phone"),
		Address:  r.FormValue("address"),
	}
	for _, field := range constvars.RegisterAttachmentFields {
		files := r.MultipartForm.File[field]
		if len(files) == 0 {
			continue
		}
		request.Attachments = append(request.Attachments, requests.RegisterAttachment{
			FieldName: field,
			Header:    files[0],
		})
	}

	// Sanitize request
	utils.SanitizeRegisterUserRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	// Send it to be processed by usecase
	response, err := ctrl.AuthUsecase.Register(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	response.RedirectTo = ctrl.InternalConfig.App.LoginPath

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, response)
}

// Session returns the current session, or null data when logged out.
func (ctrl *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	var session *responses.Session
	if store := utils.GetSessionStore(r.Context()); store != nil {
		session = responses.NewSession(store.Current())
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, session)
}
