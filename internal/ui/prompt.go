package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// Confirm は確認プロンプトを表示する
func Confirm(message string, defaultValue bool) (bool, error) {
	var result bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// Password はパスワード入力を受け付ける（入力は非表示）
func Password(message string) (string, error) {
	var result string
	prompt := &survey.Password{
		Message: message,
	}
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return result, nil
}
