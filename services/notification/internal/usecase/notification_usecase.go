package usecase

import (
	"context"
	"fmt"
	"strings"

	"hello-madurai/pkg/locale"
	"hello-madurai/pkg/logger"
	"hello-madurai/pkg/push"
	"hello-madurai/pkg/queue"
	"hello-madurai/services/notification/internal/entity"
	"hello-madurai/services/notification/internal/repo/persistent"

	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

type NotificationUseCase interface {
	// HandleTask fans a published record out to its topics and logs the outcome.
	HandleTask(ctx context.Context, task queue.NotificationTask) error
	SendManual(ctx context.Context, req entity.ManualSend) (*entity.NotificationLog, error)
	Subscribe(ctx context.Context, change entity.TopicChange) ([]entity.TopicStatus, error)
	Unsubscribe(ctx context.Context, change entity.TopicChange) ([]entity.TopicStatus, error)
	ListLogs(ctx context.Context, filter entity.LogFilter) ([]*entity.NotificationLog, int64, error)
	GetLog(ctx context.Context, id string) (*entity.NotificationLog, error)
}

type notificationUseCase struct {
	logRepo     persistent.NotificationLogRepository
	provider    push.Provider
	logger      *logger.Logger
	concurrency int
}

func NewNotificationUseCase(logRepo persistent.NotificationLogRepository, provider push.Provider, logger *logger.Logger, concurrency int) NotificationUseCase {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &notificationUseCase{
		logRepo:     logRepo,
		provider:    provider,
		logger:      logger,
		concurrency: concurrency,
	}
}

// dispatch is one provider send: a topic or a token with its message.
type dispatch struct {
	topic string
	token string
	msg   localized
}

func (d dispatch) target() string {
	if d.topic != "" {
		return d.topic
	}
	return "token:" + shortToken(d.token)
}

func shortToken(token string) string {
	if len(token) <= 12 {
		return token
	}
	return token[:12] + "…"
}

func (uc *notificationUseCase) HandleTask(ctx context.Context, task queue.NotificationTask) error {
	msgs := compose(task.Title, task.TitleTa, task.Body, task.BodyTa)
	if len(msgs) == 0 {
		uc.logger.Warn("Notification task %s %s has no text, skipping", task.Kind, task.ContentID)
		return nil
	}

	var targets []dispatch
	for _, m := range msgs {
		targets = append(targets,
			dispatch{topic: push.Topic(task.Kind, m.lang.String()), msg: m},
			dispatch{topic: push.AllTopic(m.lang.String()), msg: m},
		)
	}
	for _, token := range task.Tokens {
		targets = append(targets, dispatch{token: token, msg: pick(msgs, locale.English)})
	}

	data := map[string]string{
		"kind":       task.Kind,
		"content_id": task.ContentID,
	}
	if task.Link != "" {
		data["link"] = task.Link
	}

	// Only errors from before the first send are returned. A requeued task
	// must not resend.
	log := &entity.NotificationLog{
		Kind:      task.Kind,
		ContentID: task.ContentID,
		Source:    entity.SourcePublish,
		Title:     msgs[0].title,
	}
	if err := uc.logRepo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to persist notification log for %s %s: %w", task.Kind, task.ContentID, err)
	}

	log.Attempts = uc.send(ctx, targets, task.ImageURL, task.Link, data)
	log.Tally()

	if err := uc.logRepo.Update(ctx, log); err != nil {
		uc.logger.Error("Delivered %s %s but failed to record attempts on log %s: %v", task.Kind, task.ContentID, log.ID, err)
	}

	uc.logger.Info("Fan-out for %s %s: %d sent, %d failed", task.Kind, task.ContentID, log.SuccessCount, log.FailureCount)
	return nil
}

// send runs every dispatch concurrently. A failed attempt never stops the others.
func (uc *notificationUseCase) send(ctx context.Context, targets []dispatch, imageURL, link string, data map[string]string) []entity.Attempt {
	attempts := make([]entity.Attempt, len(targets))

	var g errgroup.Group
	g.SetLimit(uc.concurrency)
	for i, d := range targets {
		g.Go(func() error {
			msgData := make(map[string]string, len(data)+1)
			for k, v := range data {
				msgData[k] = v
			}
			msgData["lang"] = d.msg.lang.String()

			attempt := entity.Attempt{Target: d.target(), Lang: d.msg.lang.String()}
			id, err := uc.provider.Send(ctx, push.Message{
				Topic:    d.topic,
				Token:    d.token,
				Title:    d.msg.title,
				Body:     d.msg.body,
				ImageURL: imageURL,
				Link:     link,
				Data:     msgData,
			})
			if err != nil {
				uc.logger.Warn("Push to %s failed: %v", attempt.Target, err)
				attempt.Error = err.Error()
				attempt.StatusCode = push.StatusCode(err)
			} else {
				attempt.MessageID = id
			}
			attempts[i] = attempt
			return nil
		})
	}
	_ = g.Wait()

	return attempts
}

func (uc *notificationUseCase) SendManual(ctx context.Context, req entity.ManualSend) (*entity.NotificationLog, error) {
	topic := strings.TrimSpace(req.Topic)
	if (topic == "") == (len(req.Tokens) == 0) {
		return nil, entity.NewValidationError("topic", "exactly one of topic or tokens is required")
	}

	msgs := compose(req.Title, req.TitleTa, req.Body, req.BodyTa)
	if len(msgs) == 0 {
		return nil, entity.NewValidationError("title", "is required")
	}

	lang := locale.Default
	if req.Lang != "" {
		parsed, ok := locale.Parse(req.Lang)
		if !ok {
			return nil, entity.NewValidationError("lang", "must be en or ta")
		}
		lang = parsed
	}

	var targets []dispatch
	if topic != "" {
		for _, m := range msgs {
			targets = append(targets, dispatch{topic: push.Topic(topic, m.lang.String()), msg: m})
		}
	} else {
		m := pick(msgs, lang)
		for _, token := range req.Tokens {
			if strings.TrimSpace(token) == "" {
				return nil, entity.NewValidationError("tokens", "must not contain empty tokens")
			}
			targets = append(targets, dispatch{token: token, msg: m})
		}
	}

	kind := topic
	if kind == "" {
		kind = "direct"
	}

	data := map[string]string{"kind": kind}
	if req.Link != "" {
		data["link"] = req.Link
	}

	log := &entity.NotificationLog{
		Kind:     kind,
		Source:   entity.SourceManual,
		Title:    msgs[0].title,
		Attempts: uc.send(ctx, targets, req.ImageURL, req.Link, data),
	}
	log.Tally()

	if err := uc.logRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to persist notification log: %w", err)
	}

	uc.logger.Info("Manual notification to %s: %d sent, %d failed", kind, log.SuccessCount, log.FailureCount)
	return log, nil
}

func (uc *notificationUseCase) Subscribe(ctx context.Context, change entity.TopicChange) ([]entity.TopicStatus, error) {
	return uc.changeTopics(ctx, change, uc.provider.SubscribeToTopic)
}

func (uc *notificationUseCase) Unsubscribe(ctx context.Context, change entity.TopicChange) ([]entity.TopicStatus, error) {
	return uc.changeTopics(ctx, change, uc.provider.UnsubscribeFromTopic)
}

type topicFunc func(ctx context.Context, topic string, tokens []string) (push.TopicResult, error)

// changeTopics applies fn to the kind topics and the catch-all topic of one
// language. It fails with ErrProvider when any topic could not be changed.
func (uc *notificationUseCase) changeTopics(ctx context.Context, change entity.TopicChange, fn topicFunc) ([]entity.TopicStatus, error) {
	token := strings.TrimSpace(change.Token)
	if token == "" {
		return nil, entity.NewValidationError("token", "is required")
	}

	lang := locale.Default
	if change.Lang != "" {
		parsed, ok := locale.Parse(change.Lang)
		if !ok {
			return nil, entity.NewValidationError("lang", "must be en or ta")
		}
		lang = parsed
	}

	kinds := change.Kinds
	if len(kinds) == 0 {
		kinds = entity.NotifiableKinds
	}
	topics := make([]string, 0, len(kinds)+1)
	for _, kind := range kinds {
		if !entity.IsNotifiableKind(kind) {
			return nil, entity.NewValidationError("kinds", "must only contain news, event or job")
		}
		topics = append(topics, push.Topic(kind, lang.String()))
	}
	topics = append(topics, push.AllTopic(lang.String()))

	statuses := make([]entity.TopicStatus, len(topics))
	failed := 0
	for i, topic := range topics {
		statuses[i] = entity.TopicStatus{Topic: topic, OK: true}

		res, err := fn(ctx, topic, []string{token})
		switch {
		case err != nil:
			statuses[i].OK = false
			statuses[i].Error = err.Error()
		case res.FailureCount > 0:
			statuses[i].OK = false
			statuses[i].Error = strings.Join(res.Errors, ", ")
		}
		if !statuses[i].OK {
			failed++
			uc.logger.Warn("Topic change on %s failed: %s", topic, statuses[i].Error)
		}
	}

	if failed > 0 {
		return statuses, fmt.Errorf("%d of %d topics failed: %w", failed, len(topics), entity.ErrProvider)
	}
	return statuses, nil
}

func (uc *notificationUseCase) ListLogs(ctx context.Context, filter entity.LogFilter) ([]*entity.NotificationLog, int64, error) {
	logs, total, err := uc.logRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notification logs: %w", err)
	}
	return logs, total, nil
}

func (uc *notificationUseCase) GetLog(ctx context.Context, id string) (*entity.NotificationLog, error) {
	return uc.logRepo.GetByID(ctx, id)
}
