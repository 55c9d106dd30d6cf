package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var promptPassword = func(user string) (string, error) {
	var password string
	prompt := &survey.Password{
		Message: fmt.Sprintf("Password for %s:", user),
	}
	if err := survey.AskOne(prompt, &password, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return password, nil
}
