package models

import "console/internal/domain"

// Log levels as numbered by the backend.
const (
	LogLevelDebug       = 10
	LogLevelInformation = 20
	LogLevelWarning     = 30
	LogLevelError       = 40
	LogLevelFatal       = 50
)

var LogLevels = []Option{
	{Text: "Debug", Value: "10"},
	{Text: "Information", Value: "20"},
	{Text: "Warning", Value: "30"},
	{Text: "Error", Value: "40"},
	{Text: "Fatal", Value: "50"},
}

type LogEntry struct {
	ID           domain.ID `json:"id"`
	LogLevelID   int       `json:"logLevelId"`
	ShortMessage string    `json:"shortMessage"`
	FullMessage  string    `json:"fullMessage"`
	IPAddress    string    `json:"ipAddress"`
	UserEmail    string    `json:"userEmail"`
	PageURL      string    `json:"pageUrl"`
	ReferrerURL  string    `json:"referrerUrl"`
	CreatedOnUtc string    `json:"createdOnUtc"`
}

type LogPage struct {
	Logs []LogEntry `json:"logs"`
	domain.PageInfo
}

// LogSearch is sent as query parameters; dates are MM/DD/YYYY.
type LogSearch struct {
	FromDate   string
	ToDate     string
	LogLevelID string
	Message    string
	PageIndex  int
	PageSize   int
}

func LogLevelName(level int) string {
	switch level {
	case LogLevelDebug:
		return "Debug"
	case LogLevelInformation:
		return "Information"
	case LogLevelWarning:
		return "Warning"
	case LogLevelError:
		return "Error"
	case LogLevelFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}
