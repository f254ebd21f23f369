package directories

import (
	"context"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	KindDoctors    = "doctors"
	KindHospitals  = "hospitals"
	KindPharmacies = "pharmacies"
	KindLabs       = "labs"
	KindClinics    = "clinics"
)

var knownKinds = map[string]bool{
	KindDoctors:    true,
	KindHospitals:  true,
	KindPharmacies: true,
	KindLabs:       true,
	KindClinics:    true,
}

func IsKnownKind(kind string) bool {
	return knownKinds[kind]
}

type directoryUsecase struct {
	DirectoryClient contracts.DirectoryClient
	Log             *zap.Logger
}

func NewDirectoryUsecase(directoryClient contracts.DirectoryClient, logger *zap.Logger) contracts.DirectoryUsecase {
	return &directoryUsecase{
		DirectoryClient: directoryClient,
		Log:             logger,
	}
}

func (uc *directoryUsecase) List(ctx context.Context, kind string) (*responses.Directory, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("directoryUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDirectoryKindKey, kind),
	)

	if !IsKnownKind(kind) {
		return nil, exceptions.ErrURLParamValidation(nil, "kind")
	}

	entries, err := uc.DirectoryClient.List(ctx, kind)
	if err != nil {
		uc.Log.Error("directoryUsecase.List error fetching listing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDirectoryKindKey, kind),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("directoryUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDirectoryKindKey, kind),
	)
	return &responses.Directory{Kind: kind, Entries: entries}, nil
}
