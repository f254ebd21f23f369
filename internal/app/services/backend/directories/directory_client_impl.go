package directories

import (
	"context"
	"fmt"
	"io"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type directoryClient struct {
	BaseUrl string
	Client  *http.Client
	Log     *zap.Logger
}

func NewDirectoryClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.DirectoryClient {
	return &directoryClient{
		BaseUrl: baseUrl,
		Client:  &http.Client{Timeout: timeout},
		Log:     logger,
	}
}

// List fetches GET <base>/<kind>. Anything other than a success envelope
// carrying data.<kind> is reported as ErrDirectoryUnavailable. The request
// is bound to ctx, so a caller that goes away cancels it.
func (c *directoryClient) List(ctx context.Context, kind string) ([]json.RawMessage, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("directoryClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDirectoryKindKey, kind),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, kind), nil)
	if err != nil {
		c.Log.Error("directoryClient.List error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDirectoryUnavailable(err, kind)
	}
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("directoryClient.List error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDirectoryKindKey, kind),
			zap.Error(err),
		)
		return nil, exceptions.ErrDirectoryUnavailable(err, kind)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("directoryClient.List error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDirectoryUnavailable(err, kind)
	}

	var envelope responses.BackendDirectory
	err = json.Unmarshal(bodyBytes, &envelope)
	if err != nil {
		c.Log.Error("directoryClient.List error unmarshaling response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrDirectoryUnavailable(err, kind)
	}

	entries, ok := envelope.Data[kind]
	if envelope.Status != constvars.BackendStatusSuccess || !ok || entries == nil {
		c.Log.Error("directoryClient.List unexpected response shape",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDirectoryKindKey, kind),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("status", envelope.Status),
		)
		return nil, exceptions.ErrDirectoryUnavailable(nil, kind)
	}

	c.Log.Info("directoryClient.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDirectoryKindKey, kind),
		zap.Int("count", len(entries)),
	)
	return entries, nil
}
