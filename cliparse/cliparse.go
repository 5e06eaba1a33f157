package cliparse

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	Port          int
	DataDir       string
	ResponsesFile string
	CSVFile       string
	QuestionsFile string
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("survey-collect", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DataDir, "d", "", "Data directory for the response log and CSV export")
	fs.StringVar(&cfg.ResponsesFile, "responses-file", "", "Response log file name")
	fs.StringVar(&cfg.CSVFile, "csv-file", "", "CSV export file name")
	fs.StringVar(&cfg.QuestionsFile, "questions-file", "", "Question catalog file (JSON or YAML)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.ResponsesFile == "" {
		cfg.ResponsesFile = os.Getenv("RESPONSES_FILE")
	}
	if cfg.ResponsesFile == "" {
		cfg.ResponsesFile = "survey-responses.json"
	}
	if cfg.CSVFile == "" {
		cfg.CSVFile = os.Getenv("CSV_FILE")
	}
	if cfg.CSVFile == "" {
		cfg.CSVFile = "survey-responses.csv"
	}
	if cfg.QuestionsFile == "" {
		cfg.QuestionsFile = os.Getenv("QUESTIONS_FILE")
	}
	if cfg.QuestionsFile == "" {
		cfg.QuestionsFile = "questions.json"
	}

	return cfg, nil
}

// ResponsesPath returns the full path of the JSON response log.
func (c Config) ResponsesPath() string {
	return filepath.Join(c.DataDir, c.ResponsesFile)
}

// CSVPath returns the full path of the derived CSV artifact.
func (c Config) CSVPath() string {
	return filepath.Join(c.DataDir, c.CSVFile)
}
