package controllers

import (
	"fmt"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DirectoryController struct {
	Log              *zap.Logger
	DirectoryUsecase contracts.DirectoryUsecase
}

func NewDirectoryController(logger *zap.Logger, directoryUsecase contracts.DirectoryUsecase) *DirectoryController {
	return &DirectoryController{
		Log:              logger,
		DirectoryUsecase: directoryUsecase,
	}
}

func (ctrl *DirectoryController) List(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, constvars.URLParamDirectoryKind)

	result, err := ctrl.DirectoryUsecase.List(r.Context(), kind)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetDirectorySuccessMessage, kind), result)
}
