package controllers

import (
	"errors"
	"medical-portal/internal/app/config"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

const (
	PageNotFound          = "not-found"
	pageContentRedirect   = "redirect"
	pageContentDirectory  = "directory"
	defaultDirectoryError = "failed to load directory"
)

type PageController struct {
	Log              *zap.Logger
	DirectoryUsecase contracts.DirectoryUsecase
	InternalConfig   *config.InternalConfig
}

func NewPageController(logger *zap.Logger, directoryUsecase contracts.DirectoryUsecase, internalConfig *config.InternalConfig) *PageController {
	return &PageController{
		Log:              logger,
		DirectoryUsecase: directoryUsecase,
		InternalConfig:   internalConfig,
	}
}

// Render serves a static page view model.
func (ctrl *PageController) Render(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := buildPage(r, name, title)
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPageSuccessMessage, page)
	}
}

// RenderLogin exposes the sanitized post-login destination so the login form
// can send it back with the credentials.
func (ctrl *PageController) RenderLogin(name, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := buildPage(r, name, title)
		page.Content = map[string]interface{}{
			pageContentRedirect: utils.SanitizeRedirectPath(r.URL.Query().Get(constvars.QueryParamRedirect), ctrl.InternalConfig.App.LoginPath, constvars.DefaultAfterLogin),
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPageSuccessMessage, page)
	}
}

// RenderDirectory embeds a directory listing. A failed fetch is reported on
// the page itself and the page still renders.
func (ctrl *PageController) RenderDirectory(name, title, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := buildPage(r, name, title)

		directory, err := ctrl.DirectoryUsecase.List(r.Context(), kind)
		if err != nil {
			ctrl.Log.Warn("PageController.RenderDirectory error loading listing",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingDirectoryKindKey, kind),
				zap.Error(err),
			)
			page.Error = defaultDirectoryError
			var customErr *exceptions.CustomError
			if errors.As(err, &customErr) {
				page.Error = customErr.ClientMessage
			}
			utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPageSuccessMessage, page)
			return
		}

		page.Content = map[string]interface{}{pageContentDirectory: directory}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPageSuccessMessage, page)
	}
}

func (ctrl *PageController) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.BuildPageResponse(w, constvars.StatusNotFound, constvars.NotFoundPageMessage, buildPage(r, PageNotFound, "Not Found"))
}

func buildPage(r *http.Request, name, title string) *responses.Page {
	page := &responses.Page{
		Name:  name,
		Title: title,
		Path:  r.URL.Path,
	}
	if store := utils.GetSessionStore(r.Context()); store != nil {
		page.Session = responses.NewSession(store.Current())
	}
	return page
}
