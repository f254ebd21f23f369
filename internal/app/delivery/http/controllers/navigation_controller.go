package controllers

import (
	"medical-portal/internal/app/models"
	"medical-portal/internal/app/services/core/navigation"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type NavigationController struct {
	Log  *zap.Logger
	Menu []models.NavigationGroup
}

func NewNavigationController(logger *zap.Logger, menu []models.NavigationGroup) *NavigationController {
	return &NavigationController{
		Log:  logger,
		Menu: menu,
	}
}

func (ctrl *NavigationController) GetNavigation(w http.ResponseWriter, r *http.Request) {
	var session *models.Session
	if store := utils.GetSessionStore(r.Context()); store != nil {
		session = store.Current()
	}

	groups := navigation.Filter(ctrl.Menu, session)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNavigationSuccessMessage, groups)
}
