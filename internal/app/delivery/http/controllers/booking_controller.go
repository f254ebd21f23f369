package controllers

import (
	"context"
	"io"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/requests"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) Start(w http.ResponseWriter, r *http.Request) {
	// An empty body starts a blank wizard
	request := new(requests.StartBooking)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && err != io.EOF {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	response, err := ctrl.BookingUsecase.Start(r.Context(), utils.GetClientID(r.Context()), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookingStartedMessage, response)
}

func (ctrl *BookingController) Get(w http.ResponseWriter, r *http.Request) {
	response, err := ctrl.BookingUsecase.Get(r.Context(), utils.GetClientID(r.Context()), chi.URLParam(r, constvars.URLParamBookingID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingStateMessage, response)
}

// UpdateStep stores the data of one step. Incomplete data is accepted and
// reported through field errors.
func (ctrl *BookingController) UpdateStep(w http.ResponseWriter, r *http.Request) {
	step, err := parseBookingStep(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx := r.Context()
	clientID := utils.GetClientID(ctx)
	bookingID := chi.URLParam(r, constvars.URLParamBookingID)
	decoder := json.NewDecoder(r.Body)

	var response *responses.BookingState
	switch step {
	case models.BookingStepSpecialization:
		request := new(requests.BookingSpecialization)
		if err = decoder.Decode(request); err == nil {
			response, err = ctrl.BookingUsecase.SetSpecialization(ctx, clientID, bookingID, request)
		} else {
			err = exceptions.ErrCannotParseJSON(err)
		}
	case models.BookingStepDoctor:
		request := new(requests.BookingDoctor)
		if err = decoder.Decode(request); err == nil {
			response, err = ctrl.BookingUsecase.SetDoctor(ctx, clientID, bookingID, request)
		} else {
			err = exceptions.ErrCannotParseJSON(err)
		}
	case models.BookingStepSchedule:
		request := new(requests.BookingSchedule)
		if err = decoder.Decode(request); err == nil {
			response, err = ctrl.BookingUsecase.SetSchedule(ctx, clientID, bookingID, request)
		} else {
			err = exceptions.ErrCannotParseJSON(err)
		}
	case models.BookingStepPatientInfo:
		request := new(requests.BookingPatientInfo)
		if err = decoder.Decode(request); err == nil {
			utils.SanitizeBookingPatientInfo(request)
			response, err = ctrl.BookingUsecase.SetPatientInfo(ctx, clientID, bookingID, request)
		} else {
			err = exceptions.ErrCannotParseJSON(err)
		}
	}
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingUpdatedMessage, response)
}

func (ctrl *BookingController) Next(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.BookingUsecase.Next)
}

func (ctrl *BookingController) Back(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.BookingUsecase.Back)
}

func (ctrl *BookingController) Confirm(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.BookingUsecase.Confirm)
}

func (ctrl *BookingController) Reset(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, ctrl.BookingUsecase.Reset)
}

func (ctrl *BookingController) JumpTo(w http.ResponseWriter, r *http.Request) {
	step, err := parseBookingStep(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.BookingUsecase.JumpTo(r.Context(), utils.GetClientID(r.Context()), chi.URLParam(r, constvars.URLParamBookingID), step)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	writeTransition(w, response)
}

func (ctrl *BookingController) Abandon(w http.ResponseWriter, r *http.Request) {
	err := ctrl.BookingUsecase.Abandon(r.Context(), utils.GetClientID(r.Context()), chi.URLParam(r, constvars.URLParamBookingID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingAbandonedMessage, nil)
}

type bookingTransitionFunc func(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error)

func (ctrl *BookingController) transition(w http.ResponseWriter, r *http.Request, apply bookingTransitionFunc) {
	response, err := apply(r.Context(), utils.GetClientID(r.Context()), chi.URLParam(r, constvars.URLParamBookingID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	writeTransition(w, response)
}

// writeTransition answers 200 for refused transitions too. A refusal is
// part of the wizard flow, not a request error.
func writeTransition(w http.ResponseWriter, response *responses.BookingTransition) {
	message := constvars.BookingTransitionMessage
	switch {
	case !response.Moved:
		message = constvars.BookingTransitionRefused
	case response.Booking != nil && response.Booking.State.Submitted:
		message = constvars.BookingConfirmedMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}

func parseBookingStep(r *http.Request) (models.BookingStep, error) {
	raw := chi.URLParam(r, constvars.URLParamBookingStep)
	value, err := strconv.Atoi(raw)
	step := models.BookingStep(value)
	if err != nil || !step.IsValid() {
		return 0, exceptions.ErrBookingInvalidStep(err, raw)
	}
	return step, nil
}
