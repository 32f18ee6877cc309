package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If REVIEW_WIZARD_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.review-wizard/logs/review-wizard.log
func GetLogFilePath() string {
	if customPath := os.Getenv("REVIEW_WIZARD_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "review-wizard.log"
	}

	return filepath.Join(homeDir, ".review-wizard", "logs", "review-wizard.log")
}
