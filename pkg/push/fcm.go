// Package push sends notifications through Firebase Cloud Messaging.
//
// Messages go through the FCM HTTP v1 API. Topic membership is managed
// through the Instance ID batch endpoints, which v1 does not cover.
package push

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
	fcm "google.golang.org/api/fcm/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

const (
	messagingScope     = "https://www.googleapis.com/auth/firebase.messaging"
	defaultIIDEndpoint = "https://iid.googleapis.com"
	iidTimeout         = 10 * time.Second
	// batchAdd and batchRemove accept at most this many tokens per call.
	maxTopicBatch = 1000
)

var (
	ErrNoTarget     = errors.New("message needs exactly one of topic or token")
	ErrInvalidTopic = errors.New("invalid topic name")

	topicPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_.~%]+$`)
)

type Message struct {
	Topic    string
	Token    string
	Title    string
	Body     string
	ImageURL string
	Link     string
	Data     map[string]string
}

// TopicResult counts per-token outcomes of a subscribe or unsubscribe call.
type TopicResult struct {
	SuccessCount int
	FailureCount int
	Errors       []string
}

type Provider interface {
	Send(ctx context.Context, msg Message) (string, error)
	SubscribeToTopic(ctx context.Context, topic string, tokens []string) (TopicResult, error)
	UnsubscribeFromTopic(ctx context.Context, topic string, tokens []string) (TopicResult, error)
}

type Options struct {
	ProjectID       string
	CredentialsFile string
	// SendRate is the sustained number of sends per second; 0 disables throttling.
	SendRate    float64
	IIDEndpoint string
	// ClientOptions are appended after the credentials option.
	ClientOptions []option.ClientOption
}

type FCMClient struct {
	projectID string
	messages  *fcm.ProjectsMessagesService
	iid       *resty.Client
	limiter   *rate.Limiter
}

func NewFCMClient(ctx context.Context, opts Options) (*FCMClient, error) {
	if opts.ProjectID == "" {
		return nil, fmt.Errorf("fcm project id is required")
	}

	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	clientOpts = append(clientOpts, opts.ClientOptions...)

	svc, err := fcm.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create fcm service: %w", err)
	}

	httpClient, _, err := htransport.NewClient(ctx, append(clientOpts, option.WithScopes(messagingScope))...)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated http client: %w", err)
	}

	iidEndpoint := opts.IIDEndpoint
	if iidEndpoint == "" {
		iidEndpoint = defaultIIDEndpoint
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.SendRate > 0 {
		burst := int(opts.SendRate)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.SendRate), burst)
	}

	return &FCMClient{
		projectID: opts.ProjectID,
		messages:  svc.Projects.Messages,
		iid: resty.NewWithClient(httpClient).
			SetBaseURL(iidEndpoint).
			SetTimeout(iidTimeout).
			SetHeader("access_token_auth", "true").
			SetHeader("Content-Type", "application/json"),
		limiter: limiter,
	}, nil
}

// Send delivers one message and returns the provider message name.
func (c *FCMClient) Send(ctx context.Context, msg Message) (string, error) {
	if (msg.Topic == "") == (msg.Token == "") {
		return "", ErrNoTarget
	}
	if msg.Topic != "" && !topicPattern.MatchString(msg.Topic) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTopic, msg.Topic)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("send throttled: %w", err)
	}

	resp, err := c.messages.Send("projects/"+c.projectID, &fcm.SendMessageRequest{
		Message: toFCMMessage(msg),
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("fcm send to %s failed: %w", target(msg), err)
	}
	return resp.Name, nil
}

func toFCMMessage(msg Message) *fcm.Message {
	out := &fcm.Message{
		Topic: msg.Topic,
		Token: msg.Token,
		Notification: &fcm.Notification{
			Title: msg.Title,
			Body:  msg.Body,
			Image: msg.ImageURL,
		},
		Data: msg.Data,
		Android: &fcm.AndroidConfig{
			Priority: "HIGH",
		},
	}
	if msg.Link != "" {
		out.Webpush = &fcm.WebpushConfig{
			FcmOptions: &fcm.WebpushFcmOptions{Link: msg.Link},
		}
	}
	return out
}

func target(msg Message) string {
	if msg.Topic != "" {
		return "topic " + msg.Topic
	}
	return "token"
}

type iidRequest struct {
	To                 string   `json:"to"`
	RegistrationTokens []string `json:"registration_tokens"`
}

type iidResponse struct {
	Results []struct {
		Error string `json:"error,omitempty"`
	} `json:"results"`
}

func (c *FCMClient) SubscribeToTopic(ctx context.Context, topic string, tokens []string) (TopicResult, error) {
	return c.manageTopic(ctx, "/iid/v1:batchAdd", topic, tokens)
}

func (c *FCMClient) UnsubscribeFromTopic(ctx context.Context, topic string, tokens []string) (TopicResult, error) {
	return c.manageTopic(ctx, "/iid/v1:batchRemove", topic, tokens)
}

func (c *FCMClient) manageTopic(ctx context.Context, path, topic string, tokens []string) (TopicResult, error) {
	var result TopicResult
	if !topicPattern.MatchString(topic) {
		return result, fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	if len(tokens) == 0 {
		return result, fmt.Errorf("no registration tokens")
	}
	if len(tokens) > maxTopicBatch {
		return result, fmt.Errorf("too many registration tokens: %d > %d", len(tokens), maxTopicBatch)
	}

	var body iidResponse
	resp, err := c.iid.R().
		SetContext(ctx).
		SetBody(iidRequest{To: "/topics/" + topic, RegistrationTokens: tokens}).
		SetResult(&body).
		Post(path)
	if err != nil {
		return result, fmt.Errorf("topic request %s failed: %w", path, err)
	}
	if resp.IsError() {
		return result, fmt.Errorf("topic request %s returned %d: %s", path, resp.StatusCode(), resp.String())
	}

	for _, r := range body.Results {
		if r.Error != "" {
			result.FailureCount++
			result.Errors = append(result.Errors, r.Error)
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

// Topic is the provider topic for one content kind and language.
func Topic(kind, lang string) string {
	return kind + "_" + lang
}

// AllTopic is the catch-all topic for a language.
func AllTopic(lang string) string {
	return Topic("all", lang)
}

// StatusCode extracts the HTTP status of a provider error, or 0.
func StatusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}
