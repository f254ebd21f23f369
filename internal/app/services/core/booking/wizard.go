package booking

import (
	"errors"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"time"
)

var ErrWizardSubmitted = errors.New("booking wizard already submitted")

// Wizard is the booking step state machine. It is not safe for concurrent
// use; the registry serializes access to each instance.
type Wizard struct {
	state     models.WizardState
	reference func(time.Time) (string, error)
	now       func() time.Time
}

func NewWizard() *Wizard {
	return &Wizard{
		state:     models.WizardState{CurrentStep: models.BookingFirstStep},
		reference: GenerateReference,
		now:       time.Now,
	}
}

func (w *Wizard) State() models.WizardState {
	state := w.state
	if state.Doctor.Doctor != nil {
		doctor := *state.Doctor.Doctor
		state.Doctor.Doctor = &doctor
	}
	return state
}

func (w *Wizard) CurrentStep() models.BookingStep {
	return w.state.CurrentStep
}

func (w *Wizard) Submitted() bool {
	return w.state.Submitted
}

// Completion reports whether the required fields of step are filled and
// well formed.
func (w *Wizard) Completion(step models.BookingStep) bool {
	return w.validate(step) == nil
}

// Reachable is true when every step strictly before step is complete.
func (w *Wizard) Reachable(step models.BookingStep) bool {
	if !step.IsValid() {
		return false
	}
	for prior := models.BookingFirstStep; prior < step; prior++ {
		if !w.Completion(prior) {
			return false
		}
	}
	return true
}

// FieldErrors returns inline messages keyed by json field name. A complete
// step yields an empty map.
func (w *Wizard) FieldErrors(step models.BookingStep) map[string]string {
	return exceptions.FormatFieldErrors(w.validate(step))
}

func (w *Wizard) SetSpecialization(value models.BookingSpecialization) error {
	if w.state.Submitted {
		return ErrWizardSubmitted
	}
	w.state.Specialization = value
	return nil
}

func (w *Wizard) SetDoctor(value models.BookingDoctor) error {
	if w.state.Submitted {
		return ErrWizardSubmitted
	}
	if value.Doctor != nil {
		doctor := *value.Doctor
		value.Doctor = &doctor
	}
	w.state.Doctor = value
	return nil
}

func (w *Wizard) SetSchedule(value models.BookingSchedule) error {
	if w.state.Submitted {
		return ErrWizardSubmitted
	}
	w.state.Schedule = value
	return nil
}

func (w *Wizard) SetPatientInfo(value models.BookingPatientInfo) error {
	if w.state.Submitted {
		return ErrWizardSubmitted
	}
	w.state.PatientInfo = value
	return nil
}

// Next advances one step only when the current step is complete. It never
// moves past the last step; confirmation is a separate transition.
func (w *Wizard) Next() bool {
	if w.state.Submitted || w.state.CurrentStep >= models.BookingLastStep {
		return false
	}
	if !w.Completion(w.state.CurrentStep) {
		return false
	}
	w.state.CurrentStep++
	return true
}

// Back keeps all entered data.
func (w *Wizard) Back() bool {
	if w.state.Submitted || w.state.CurrentStep <= models.BookingFirstStep {
		return false
	}
	w.state.CurrentStep--
	return true
}

func (w *Wizard) JumpTo(step models.BookingStep) bool {
	if w.state.Submitted || !w.Reachable(step) {
		return false
	}
	w.state.CurrentStep = step
	return true
}

// Confirm submits the wizard from the last step once every step is complete
// and returns the generated reference.
func (w *Wizard) Confirm() (string, bool, error) {
	if w.state.Submitted {
		return w.state.Reference, false, nil
	}
	if w.state.CurrentStep != models.BookingLastStep || !w.Reachable(models.BookingLastStep) || !w.Completion(models.BookingLastStep) {
		return "", false, nil
	}

	reference, err := w.reference(w.now())
	if err != nil {
		return "", false, err
	}

	w.state.Submitted = true
	w.state.Reference = reference
	return reference, true, nil
}

// Reset clears every step and returns to the first one, also from the
// submitted state.
func (w *Wizard) Reset() {
	w.state = models.WizardState{CurrentStep: models.BookingFirstStep}
}

func (w *Wizard) validate(step models.BookingStep) error {
	switch step {
	case models.BookingStepSpecialization:
		return utils.ValidateStruct(w.state.Specialization)
	case models.BookingStepDoctor:
		return utils.ValidateStruct(w.state.Doctor)
	case models.BookingStepSchedule:
		return utils.ValidateStruct(w.state.Schedule)
	case models.BookingStepPatientInfo:
		return utils.ValidateStruct(w.state.PatientInfo)
	default:
		return errInvalidStep
	}
}

var errInvalidStep = errors.New("invalid booking step")
