package cmd

import "github.com/manifoldco/promptui"

// confirm asks a yes/no question on the terminal. Declining (or any prompt
// error) returns false.
func confirm(question string) (bool, error) {
	prm := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}
	if _, err := prm.Run(); err != nil {
		return false, err
	}
	return true, nil
}
