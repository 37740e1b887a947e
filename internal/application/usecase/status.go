package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"prana/internal/domain/entity"
	"prana/internal/domain/model"
	"prana/internal/domain/repository/broker"
	"prana/internal/domain/repository/database"
	"prana/pkg/logger"
)

var errBlogNotFound = errors.New("blog not found")

// statusOf classifies a repository or validation error.
func statusOf(err error) int {
	var verr *model.ValidationError

	switch {
	case errors.As(err, &verr), errors.Is(err, database.ErrInvalidDocument):
		return http.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// notFoundAsBlog classifies err, replacing a store not-found with errBlogNotFound.
func notFoundAsBlog(err error) (int, error) {
	status := statusOf(err)
	if status == http.StatusNotFound {
		return status, errBlogNotFound
	}

	return status, err
}

// publishBlogEvent announces a committed write. The write already happened, so
// a publish failure is only logged.
func publishBlogEvent(ctx context.Context, publisher broker.Publisher, eventType string, id primitive.ObjectID) {
	body, err := json.Marshal(entity.BlogEvent{
		Type: eventType,
		ID:   id.Hex(),
		At:   time.Now().UTC(),
	})
	if err != nil {
		logger.Error("failed to encode blog event", "type", eventType, "err", err)

		return
	}

	if err := publisher.Publish(ctx, string(body)); err != nil {
		logger.Warn("failed to publish blog event", "type", eventType, "id", id.Hex(), "err", err)
	}
}
