package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safe_route_system/internal/config"
	"github.com/sirupsen/logrus"
)

// время ожидания BRPOP, после которого воркер заново проверяет контекст
const popTimeout = time.Second

// Worker - доставляет оповещения из очереди Redis на внешний вебхук
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину обработки очереди; останавливается при отмене ctx
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting alert webhook worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping alert webhook worker.")
				return
			default:
				result, err := w.redisClient.BRPop(ctx, popTimeout, alertQueueKey).Result()
				if err != nil {
					if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop incident alert from Redis")
					w.sleep(ctx, w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var alert IncidentAlert
				if err := json.Unmarshal([]byte(payload), &alert); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal incident alert from Redis")
					continue
				}

				w.deliver(ctx, alert, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, alert IncidentAlert, rawPayload string) {
	log := w.logger.WithField("severity", alert.Severity)
	if alert.Incident != nil {
		log = log.WithField("incident_id", alert.Incident.ID)
	}
	log.Debug("Processing incident alert...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping alert delivery.")
		return
	}

	maxRetries := max(w.cfg.WebhookMaxRetries, 1)
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		status, err := w.send(ctx, rawPayload)
		switch {
		case err != nil:
			log.WithError(err).Warnf("Failed to send alert webhook. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		case status >= 200 && status < 300:
			log.Info("Alert webhook delivered successfully.")
			return
		default:
			log.Warnf("Alert webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", status, delay, maxRetries-1-i)
		}

		if i < maxRetries-1 {
			if !w.sleep(ctx, delay) {
				return
			}
			delay *= 2 // экспоненциальная задержка
		}
	}

	log.Errorf("Failed to deliver alert webhook after %d attempts.", maxRetries)
}

func (w *Worker) send(ctx context.Context, rawPayload string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// sleep ждет d или отмены контекста; false, если контекст отменен
func (w *Worker) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
