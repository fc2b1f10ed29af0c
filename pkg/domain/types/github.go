package types

import "log/slog"

type (
	GitHubAppID             int64
	GitHubAppInstallID      int64
	GitHubAppPrivateKey     string
	GitHubToken             string
	RepoURL                 string
	IssueNumber             int64
	TelegramBotToken        string
	TelegramChatID          string
	PostgresDSN             string
	GoogleProjectID         string
	BQDatasetID             string
	BQTableID               string
	FirestoreDatabaseID     string
	FirestoreCollectionName string
)

const (
	IssueStateOpen = "open"
)

func (x RepoURL) String() string { return string(x) }

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x TelegramBotToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x TelegramBotToken) String() string {
	return "***********"
}

func (x PostgresDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x PostgresDSN) String() string {
	return "***********"
}
