// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DataDir: Directory holding the response log and CSV export (default: data)
  - ResponsesFile: Response log file name (default: survey-responses.json)
  - CSVFile: CSV export file name (default: survey-responses.csv)
  - QuestionsFile: Question catalog file, JSON or YAML (default: questions.json)

# CLI Flags

	-p                Server port
	-d                Data directory
	--responses-file  Response log file name
	--csv-file        CSV export file name
	--questions-file  Question catalog file

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATA_DIR       → -d
	RESPONSES_FILE → --responses-file
	CSV_FILE       → --csv-file
	QUESTIONS_FILE → --questions-file

CLI flags take precedence over environment variables; built-in defaults
apply last, so the server starts with no configuration at all.

# Derived Paths

ResponsesPath and CSVPath join DataDir with the respective file names;
the rest of the code never assembles storage paths itself.
*/
package cliparse
