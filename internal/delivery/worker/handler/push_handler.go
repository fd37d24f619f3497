// Package handler contains the sync worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"placebook/config"
	deliverycontext "placebook/internal/delivery/context"
	"placebook/internal/domain/constants"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/errors"
	"placebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks a Google-signed OIDC token against the expected audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler applies sync events pushed by Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	syncUC         usecase.SyncUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	SyncUC usecase.SyncUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifyPushAuth: shouldVerifyPushAuth(params.Config),
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		syncUC:         params.SyncUC,
	}
}

// shouldVerifyPushAuth is true when forced by config, and always for the
// Google provider outside development.
func shouldVerifyPushAuth(cfg *config.Config) bool {
	if cfg.PubSub == nil {
		return false
	}

	return cfg.PubSub.VerifyPushAuth ||
		(cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop)
}

// HandlePush handles incoming Pub/Sub push messages.
//
// Status codes drive Pub/Sub redelivery: 2xx acks, 503 asks for a retry.
// Malformed payloads answer 400 so they land in the dead letter topic.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.SyncEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse sync event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	eventAttrs := []any{
		slog.String("event_id", event.EventID),
		slog.String("entity_type", string(event.EntityType)),
		slog.String("entity_id", event.EntityID),
		slog.String("status", event.Status.String()),
	}
	reqLogger.Debug("[Worker] Processing sync event", eventAttrs...)

	if err := h.syncUC.ApplySyncEvent(ctx, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to apply sync event",
			append(eventAttrs, slog.Any("error", err), slog.Bool("retryable", retryable))...,
		)

		// 503 makes Pub/Sub redeliver; a rejected event is acked so it is not retried forever
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Sync event applied", eventAttrs...)

	return c.NoContent(http.StatusOK)
}

// isRetryableError reports whether redelivery could succeed. Domain errors
// below 500 describe the event itself and will fail the same way again.
func isRetryableError(err error) bool {
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	if !ok {
		return true
	}

	return appErr.HTTPCode() >= http.StatusInternalServerError
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *entity.SyncEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
