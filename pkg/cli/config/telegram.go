package config

import (
	"log/slog"

	"github.com/m-mizutani/octowatch/pkg/domain/types"
	"github.com/m-mizutani/octowatch/pkg/infra/telegram"
	"github.com/urfave/cli/v3"
)

type Telegram struct {
	token     types.TelegramBotToken `masq:"secret"`
	chatID    types.TelegramChatID
	apiURL    string
	plainText bool
}

func (x *Telegram) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "telegram-bot-token",
			Usage:       "Telegram bot token",
			Category:    "Telegram",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("OCTOWATCH_TELEGRAM_BOT_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "telegram-chat-id",
			Usage:       "Telegram chat ID to post notifications to",
			Category:    "Telegram",
			Destination: (*string)(&x.chatID),
			Sources:     cli.EnvVars("OCTOWATCH_TELEGRAM_CHAT_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "telegram-api-url",
			Usage:       "Telegram Bot API endpoint",
			Category:    "Telegram",
			Value:       telegram.DefaultAPIURL,
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("OCTOWATCH_TELEGRAM_API_URL"),
		},
		&cli.BoolFlag{
			Name:        "telegram-plain-text",
			Usage:       "Send plain text only, without HTML formatting",
			Category:    "Telegram",
			Destination: &x.plainText,
			Sources:     cli.EnvVars("OCTOWATCH_TELEGRAM_PLAIN_TEXT"),
		},
	}
}

func (x *Telegram) New() (*telegram.Client, error) {
	return telegram.New(x.token, x.chatID,
		telegram.WithAPIURL(x.apiURL),
		telegram.WithRichText(!x.plainText),
	)
}

func (x Telegram) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.Any("chatID", x.chatID),
		slog.String("apiURL", x.apiURL),
		slog.Bool("plainText", x.plainText),
	)
}
