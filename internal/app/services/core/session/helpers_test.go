package session

import (
	"medical-portal/internal/app/models"

	"github.com/goccy/go-json"
)

func marshalForTest(session *models.Session) (string, error) {
	raw, err := json.Marshal(session)
	return string(raw), err
}
