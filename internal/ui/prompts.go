package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mosescb/names-demo/internal/common"
)

// PromptInput prompts the user for text input
func (u *UI) PromptInput(prompt, defaultValue string) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptInputWithValidation prompts with custom validation
func (u *UI) PromptInputWithValidation(prompt, defaultValue string, validator survey.Validator) (string, error) {
	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result, survey.WithValidator(validator))
	return result, err
}

// PromptSearch asks for the file to search and the substring to look for
func (u *UI) PromptSearch(defaultPath string) (path, needle string, err error) {
	if u.nonInteractive {
		return "", "", fmt.Errorf("cannot prompt for search input in non-interactive mode")
	}

	path, err = u.PromptInputWithValidation("File to search", defaultPath, func(ans interface{}) error {
		s, _ := ans.(string)
		return common.ValidateFilePath(s)
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to prompt for path: %w", err)
	}

	needle, err = u.PromptInput("Text to search for", "")
	if err != nil {
		return "", "", fmt.Errorf("failed to prompt for search text: %w", err)
	}
	return path, needle, nil
}
