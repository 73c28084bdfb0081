package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// ExampleQuestions are canned questions offered by the examples picker
var ExampleQuestions = []string{
	"What was Apple revenue in 2024?",
	"How did Tesla net income change in 2024?",
	"Compare Microsoft and Apple CFO in 2024",
	"Compare revenue growth for all companies",
	"What are Microsoft's total liabilities?",
}

// PromptForDataFile asks for a dataset path when the configured one is
// unusable. The validator requires an existing file.
func PromptForDataFile(current string) (string, error) {
	var path string
	prompt := &survey.Input{
		Message: "Path to the dataset file (CSV, XLSX or HTML):",
		Default: current,
		Help:    "The file needs Company, Fiscal Year and the five metric columns.",
	}

	err := survey.AskOne(prompt, &path, survey.WithValidator(func(val interface{}) error {
		str := strings.TrimSpace(val.(string))
		if str == "" {
			return fmt.Errorf("path cannot be empty")
		}
		if strings.HasPrefix(str, "http://") || strings.HasPrefix(str, "https://") {
			return nil
		}
		if _, err := os.Stat(str); err != nil {
			return fmt.Errorf("file not found: %s", str)
		}
		return nil
	}))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

// PromptForExample lets the user pick one of the canned questions
func PromptForExample() (string, error) {
	var question string
	prompt := &survey.Select{
		Message: "Pick an example question:",
		Options: ExampleQuestions,
	}
	if err := survey.AskOne(prompt, &question); err != nil {
		return "", err
	}
	return question, nil
}
