package booking

import (
	"context"
	"errors"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/requests"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	Registry *Registry
	Log      *zap.Logger
}

func NewBookingUsecase(registry *Registry, logger *zap.Logger) contracts.BookingUsecase {
	return &bookingUsecase{
		Registry: registry,
		Log:      logger,
	}
}

func (uc *bookingUsecase) Start(ctx context.Context, clientID string, request *requests.StartBooking) (*responses.BookingState, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClientIDKey, clientID),
	)

	var state *responses.BookingState
	bookingID, err := uc.Registry.Create(clientID, func(w *Wizard) error {
		if request != nil && request.Specialization != "" {
			w.SetSpecialization(models.BookingSpecialization{Specialization: request.Specialization})
		}
		if request != nil && request.Doctor != nil {
			w.SetDoctor(models.BookingDoctor{Doctor: request.Doctor})
		}
		state = buildBookingState("", w, false)
		return nil
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.Start error creating wizard",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrServerProcess(err)
	}
	state.ID = bookingID

	uc.Log.Info("bookingUsecase.Start succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return state, nil
}

func (uc *bookingUsecase) Get(ctx context.Context, clientID, bookingID string) (*responses.BookingState, error) {
	var state *responses.BookingState
	err := uc.with(ctx, "Get", clientID, bookingID, func(w *Wizard) error {
		state = buildBookingState(bookingID, w, false)
		return nil
	})
	return state, err
}

func (uc *bookingUsecase) SetSpecialization(ctx context.Context, clientID, bookingID string, request *requests.BookingSpecialization) (*responses.BookingState, error) {
	return uc.update(ctx, "SetSpecialization", clientID, bookingID, models.BookingStepSpecialization, func(w *Wizard) error {
		return w.SetSpecialization(models.BookingSpecialization{Specialization: request.Specialization})
	})
}

func (uc *bookingUsecase) SetDoctor(ctx context.Context, clientID, bookingID string, request *requests.BookingDoctor) (*responses.BookingState, error) {
	return uc.update(ctx, "SetDoctor", clientID, bookingID, models.BookingStepDoctor, func(w *Wizard) error {
		return w.SetDoctor(models.BookingDoctor{Doctor: request.Doctor})
	})
}

func (uc *bookingUsecase) SetSchedule(ctx context.Context, clientID, bookingID string, request *requests.BookingSchedule) (*responses.BookingState, error) {
	return uc.update(ctx, "SetSchedule", clientID, bookingID, models.BookingStepSchedule, func(w *Wizard) error {
		return w.SetSchedule(models.BookingSchedule{
			Date:            request.Date,
			Time:            request.Time,
			AppointmentType: request.AppointmentType,
		})
	})
}

// SetPatientInfo stores request as given. Callers sanitize it first.
func (uc *bookingUsecase) SetPatientInfo(ctx context.Context, clientID, bookingID string, request *requests.BookingPatientInfo) (*responses.BookingState, error) {
	return uc.update(ctx, "SetPatientInfo", clientID, bookingID, models.BookingStepPatientInfo, func(w *Wizard) error {
		return w.SetPatientInfo(models.BookingPatientInfo{
			Name:   request.Name,
			Phone:  request.Phone,
			Email:  request.Email,
			Age:    request.Age,
			Gender: request.Gender,
			Notes:  request.Notes,
		})
	})
}

func (uc *bookingUsecase) Next(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error) {
	return uc.transition(ctx, "Next", clientID, bookingID, func(w *Wizard) (bool, error) {
		return w.Next(), nil
	})
}

func (uc *bookingUsecase) Back(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error) {
	return uc.transition(ctx, "Back", clientID, bookingID, func(w *Wizard) (bool, error) {
		return w.Back(), nil
	})
}

func (uc *bookingUsecase) JumpTo(ctx context.Context, clientID, bookingID string, step models.BookingStep) (*responses.BookingTransition, error) {
	if !step.IsValid() {
		return nil, exceptions.ErrBookingInvalidStep(nil, strconv.Itoa(int(step)))
	}
	return uc.transition(ctx, "JumpTo", clientID, bookingID, func(w *Wizard) (bool, error) {
		return w.JumpTo(step), nil
	})
}

func (uc *bookingUsecase) Confirm(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error) {
	return uc.transition(ctx, "Confirm", clientID, bookingID, func(w *Wizard) (bool, error) {
		reference, moved, err := w.Confirm()
		if err != nil {
			return false, exceptions.ErrBookingReference(err)
		}
		if moved {
			uc.Log.Info("bookingUsecase.Confirm booking submitted",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingBookingIDKey, bookingID),
				zap.String(constvars.LoggingBookingRefKey, reference),
			)
		}
		return moved, nil
	})
}

func (uc *bookingUsecase) Reset(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error) {
	return uc.transition(ctx, "Reset", clientID, bookingID, func(w *Wizard) (bool, error) {
		w.Reset()
		return true, nil
	})
}

func (uc *bookingUsecase) Abandon(ctx context.Context, clientID, bookingID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase.Abandon called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	if !uc.Registry.Delete(clientID, bookingID) {
		return exceptions.ErrBookingNotFound(nil, bookingID)
	}

	uc.Log.Info("bookingUsecase.Abandon succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)
	return nil
}

// ClientRotated moves the wizards of previousClientID to clientID after a
// login minted a new client id.
func (uc *bookingUsecase) ClientRotated(ctx context.Context, previousClientID, clientID string) {
	moved := uc.Registry.Transfer(previousClientID, clientID)
	if moved > 0 {
		uc.Log.Info("bookingUsecase.ClientRotated transferred wizards",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingClientIDKey, clientID),
			zap.Int("wizards", moved),
		)
	}
}

func (uc *bookingUsecase) update(ctx context.Context, method, clientID, bookingID string, step models.BookingStep, apply func(w *Wizard) error) (*responses.BookingState, error) {
	var state *responses.BookingState
	err := uc.with(ctx, method, clientID, bookingID, func(w *Wizard) error {
		if err := apply(w); err != nil {
			if errors.Is(err, ErrWizardSubmitted) {
				return exceptions.ErrBookingSubmitted(err, bookingID)
			}
			return err
		}
		state = buildBookingState(bookingID, w, false)
		state.FieldErrors = w.FieldErrors(step)
		return nil
	})
	return state, err
}

func (uc *bookingUsecase) transition(ctx context.Context, method, clientID, bookingID string, apply func(w *Wizard) (bool, error)) (*responses.BookingTransition, error) {
	var transition *responses.BookingTransition
	err := uc.with(ctx, method, clientID, bookingID, func(w *Wizard) error {
		moved, err := apply(w)
		if err != nil {
			return err
		}
		transition = &responses.BookingTransition{
			Moved:   moved,
			Booking: buildBookingState(bookingID, w, !moved),
		}
		return nil
	})
	if err == nil && !transition.Moved {
		uc.Log.Debug("bookingUsecase."+method+" transition refused",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Int(constvars.LoggingBookingStepKey, int(transition.Booking.State.CurrentStep)),
		)
	}
	return transition, err
}

func (uc *bookingUsecase) with(ctx context.Context, method, clientID, bookingID string, fn func(w *Wizard) error) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bookingUsecase."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	err := uc.Registry.With(clientID, bookingID, fn)
	if errors.Is(err, ErrWizardNotFound) {
		uc.Log.Warn("bookingUsecase."+method+" wizard not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIDKey, clientID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
		)
		return exceptions.ErrBookingNotFound(err, bookingID)
	}
	if err != nil {
		uc.Log.Error("bookingUsecase."+method+" error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func buildBookingState(bookingID string, w *Wizard, withFieldErrors bool) *responses.BookingState {
	state := &responses.BookingState{
		ID:         bookingID,
		State:      w.State(),
		Completion: make(map[int]bool),
		Reachable:  make(map[int]bool),
	}
	for step := models.BookingFirstStep; step <= models.BookingLastStep; step++ {
		state.Completion[int(step)] = w.Completion(step)
		state.Reachable[int(step)] = w.Reachable(step)
	}
	if withFieldErrors && !w.Submitted() {
		state.FieldErrors = w.FieldErrors(w.CurrentStep())
	}
	return state
}
