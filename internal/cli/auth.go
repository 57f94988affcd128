package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage accounts and the active session",
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account and sign in",
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to an existing account",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the active session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}

func readLine(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func readPassword(prompt string) string {
	fmt.Print(prompt)
	b, _ := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	return string(b)
}

func runSignup(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	name := readLine("Name: ")
	email := readLine("Email: ")
	password := readPassword("Password: ")
	confirm := readPassword("Confirm Password: ")

	account, err := planner.SignUp(name, email, password, confirm)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Account created. Welcome, %s!\n", account.Name)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	email := readLine("Email: ")
	password := readPassword("Password: ")

	account, err := planner.LogIn(email, password)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Welcome back, %s!\n", account.Name)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := planner.CurrentAccount()
	if err != nil {
		return err
	}
	if account == nil {
		fmt.Println("Not signed in.")
		return nil
	}

	if err := planner.LogOut(); err != nil {
		return err
	}
	fmt.Println("✅ Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	planner, cleanup, err := openPlanner()
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := planner.CurrentAccount()
	if err != nil {
		return err
	}
	if account == nil {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Printf("%s <%s>  (%d tasks)\n", account.Name, account.Email, len(account.Tasks))
	return nil
}
