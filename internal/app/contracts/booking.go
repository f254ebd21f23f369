package contracts

import (
	"context"
	"medical-portal/internal/app/models"
	"medical-portal/internal/pkg/dto/requests"
	"medical-portal/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	Start(ctx context.Context, clientID string, request *requests.StartBooking) (*responses.BookingState, error)
	Get(ctx context.Context, clientID, bookingID string) (*responses.BookingState, error)
	SetSpecialization(ctx context.Context, clientID, bookingID string, request *requests.BookingSpecialization) (*responses.BookingState, error)
	SetDoctor(ctx context.Context, clientID, bookingID string, request *requests.BookingDoctor) (*responses.BookingState, error)
	SetSchedule(ctx context.Context, clientID, bookingID string, request *requests.BookingSchedule) (*responses.BookingState, error)
	SetPatientInfo(ctx context.Context, clientID, bookingID string, request *requests.BookingPatientInfo) (*responses.BookingState, error)
	Next(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error)
	Back(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error)
	JumpTo(ctx context.Context, clientID, bookingID string, step models.BookingStep) (*responses.BookingTransition, error)
	Confirm(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error)
	Reset(ctx context.Context, clientID, bookingID string) (*responses.BookingTransition, error)
	Abandon(ctx context.Context, clientID, bookingID string) error
	ClientRotationListener
}
