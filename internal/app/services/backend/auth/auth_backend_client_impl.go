package auth

import (
	"bytes"
	"context"
	"io"
	"medical-portal/internal/app/contracts"
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/requests"
	"medical-portal/internal/pkg/dto/responses"
	"medical-portal/internal/pkg/exceptions"
	"medical-portal/internal/pkg/utils"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	resourceLogin        = "login"
	resourceRegistration = "registration"
)

type authBackendClient struct {
	LoginUrl    string
	RegisterUrl string
	Client      *http.Client
	Log         *zap.Logger
}

func NewAuthBackendClient(baseUrl, loginPath, registerPath string, timeout time.Duration, logger *zap.Logger) contracts.AuthBackendClient {
	return &authBackendClient{
		LoginUrl:    baseUrl + loginPath,
		RegisterUrl: baseUrl + registerPath,
		Client:      &http.Client{Timeout: timeout},
		Log:         logger,
	}
}

// Login returns whatever envelope the backend answered with, whatever the
// HTTP status. Only transport failures and undecodable bodies are errors.
func (c *authBackendClient) Login(ctx context.Context, request *requests.BackendLogin) (*responses.BackendLogin, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("authBackendClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("authBackendClient.Login error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.LoginUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("authBackendClient.Login error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	var response responses.BackendLogin
	status, err := c.do(req, resourceLogin, &response)
	if err != nil {
		c.Log.Error("authBackendClient.Login error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("authBackendClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, status),
	)
	return &response, nil
}

func (c *authBackendClient) Register(ctx context.Context, request *requests.RegisterUser) (*responses.BackendStatus, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("authBackendClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, contentType, err := buildRegisterForm(request)
	if err != nil {
		c.Log.Error("authBackendClient.Register error building multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.RegisterUrl, body)
	if err != nil {
		c.Log.Error("authBackendClient.Register error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, contentType)
	req.Header.Set(constvars.HeaderXRequestID, requestID)

	var response responses.BackendStatus
	status, err := c.do(req, resourceRegistration, &response)
	if err != nil {
		c.Log.Error("authBackendClient.Register error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("authBackendClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, status),
	)
	return &response, nil
}

func (c *authBackendClient) do(req *http.Request, resource string, out interface{}) (int, error) {
	resp, err := c.Client.Do(req)
	if err != nil {
		return 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, exceptions.ErrSendHTTPRequest(err)
	}

	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		return resp.StatusCode, exceptions.ErrBackendUnexpectedBody(err, resource)
	}
	return resp.StatusCode, nil
}

func buildRegisterForm(request *requests.RegisterUser) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := []struct{ name, value string }{
		{"name", request.Name},
		{"email", request.Email},
		{"password", request.Password},
		{"role", request.Role},
		{"phone", request.Phone},
		{"address", request.Address},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}

	for _, attachment := range request.Attachments {
		if err := copyAttachment(writer, attachment); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func copyAttachment(writer *multipart.Writer, attachment requests.RegisterAttachment) error {
	file, err := attachment.Header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	part, err := writer.CreateFormFile(attachment.FieldName, attachment.Header.Filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}
