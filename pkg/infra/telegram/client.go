package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octowatch/pkg/domain/interfaces"
	"github.com/m-mizutani/octowatch/pkg/domain/model"
	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/infra"
	"github.com/m-mizutani/octowatch/pkg/utils/logging"
	"github.com/m-mizutani/octowatch/pkg/utils/safe"
)

const (
	DefaultAPIURL  = "https://api.telegram.org"
	DefaultTimeout = 30 * time.Second

	parseModeHTML = "HTML"
)

type Client struct {
	httpClient infra.HTTPClient
	apiURL     string
	token      types.TelegramBotToken
	chatID     types.TelegramChatID
	richText   bool
}

var _ interfaces.Notifier = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client infra.HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

// WithAPIURL replaces the Bot API endpoint, e.g. for a local Bot API server.
func WithAPIURL(apiURL string) Option {
	return func(x *Client) {
		x.apiURL = strings.TrimRight(apiURL, "/")
	}
}

// WithRichText toggles the HTML formatted first attempt. When disabled, only plain text is sent.
func WithRichText(enabled bool) Option {
	return func(x *Client) {
		x.richText = enabled
	}
}

func New(token types.TelegramBotToken, chatID types.TelegramChatID, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "telegram bot token is empty")
	}
	if chatID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "telegram chat ID is empty")
	}

	client := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		apiURL:     DefaultAPIURL,
		token:      token,
		chatID:     chatID,
		richText:   true,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

type sendMessageRequest struct {
	ChatID                types.TelegramChatID `json:"chat_id"`
	Text                  string               `json:"text"`
	DisableWebPagePreview bool                 `json:"disable_web_page_preview"`
	ParseMode             string               `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Notify sends the batch as one message. The rich rendering is tried first and, on any failure, the plain
// rendering is sent once without parse mode. An error is returned only if the last attempt fails.
func (x *Client) Notify(ctx context.Context, batch *model.NotificationBatch) error {
	logger := logging.From(ctx).With(slog.Any("batch_id", batch.ID))

	if x.richText {
		err := x.sendMessage(ctx, &sendMessageRequest{
			ChatID:                x.chatID,
			Text:                  batch.Render(true),
			DisableWebPagePreview: true,
			ParseMode:             parseModeHTML,
		})
		if err == nil {
			logger.Debug("Sent rich notification", slog.Int("issues", len(batch.Issues)))
			return nil
		}
		logger.Warn("Failed to send rich notification, retrying as plain text", slog.Any("error", err))
	}

	if err := x.sendMessage(ctx, &sendMessageRequest{
		ChatID:                x.chatID,
		Text:                  batch.Render(false),
		DisableWebPagePreview: true,
	}); err != nil {
		return goerr.Wrap(err, "failed to send notification",
			goerr.V("repo", batch.Repo.FullName()),
			goerr.V("issues", len(batch.Issues)),
		)
	}

	logger.Debug("Sent plain notification", slog.Int("issues", len(batch.Issues)))
	return nil
}

func (x *Client) sendMessage(ctx context.Context, msg *sendMessageRequest) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal sendMessage request")
	}

	endpoint := x.apiURL + "/bot" + string(x.token) + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(x.redact(err), "failed to create sendMessage request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(x.redact(err), "failed to call sendMessage")
	}
	defer safe.Close(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read sendMessage response", goerr.V("status", resp.StatusCode))
	}

	if resp.StatusCode < 200 || 299 < resp.StatusCode {
		return goerr.Wrap(types.ErrInvalidResponse, "sendMessage returned error status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)
	}

	var result sendMessageResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return goerr.Wrap(types.ErrInvalidResponse, "failed to parse sendMessage response",
			goerr.V("body", string(raw)),
		)
	}
	if !result.OK {
		return goerr.Wrap(types.ErrInvalidResponse, "sendMessage was not accepted",
			goerr.V("error_code", result.ErrorCode),
			goerr.V("description", result.Description),
		)
	}

	return nil
}

// redact removes the bot token embedded in the request URL from transport errors.
func (x *Client) redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, string(x.token), types.TelegramBotToken("").String()),
		Err: urlErr.Err,
	}
}
