package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and store the session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}
		defer app.Close()

		email, err := argOrPrompt(args, "Email: ")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		if err := app.provider.SignIn(cmd.Context(), email, password); err != nil {
			return err
		}
		fmt.Println("Signed in.")
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup [email]",
	Short: "Create an account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}
		defer app.Close()

		email, err := argOrPrompt(args, "Email: ")
		if err != nil {
			return err
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		again, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != again {
			return fmt.Errorf("passwords do not match")
		}

		if err := app.provider.SignUp(cmd.Context(), email, password); err != nil {
			return err
		}
		fmt.Println("Account created. Check your email for a confirmation code,")
		fmt.Println("then run: ironlog confirm", email)
		return nil
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm [email] [code]",
	Short: "Confirm a new account with the emailed code",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}
		defer app.Close()

		email, err := argOrPrompt(args, "Email: ")
		if err != nil {
			return err
		}
		var code string
		if len(args) > 1 {
			code = args[1]
		} else {
			code, err = prompt("Code: ")
			if err != nil {
				return err
			}
		}

		if err := app.provider.ConfirmSignUp(cmd.Context(), email, code); err != nil {
			return err
		}
		fmt.Println("Confirmed. Run: ironlog login", email)
		return nil
	},
}

var resendCmd = &cobra.Command{
	Use:   "resend [email]",
	Short: "Resend the confirmation code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}
		defer app.Close()

		email, err := argOrPrompt(args, "Email: ")
		if err != nil {
			return err
		}
		if err := app.provider.ResendCode(cmd.Context(), email); err != nil {
			return err
		}
		fmt.Println("Code sent.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and discard the stored session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.provider.SignOut(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

func argOrPrompt(args []string, label string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return prompt(label)
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
