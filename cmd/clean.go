package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"chatdeck/internal/config"
	"chatdeck/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved settings and log files",
	Long: `Removes the saved configuration file and deletes log files.

It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	fmt.Println("This will clean:")
	fmt.Println("  - Saved settings (theme, reply delay, notifications)")
	fmt.Println("  - Debug log files")

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := config.Clear(); err != nil {
		return fmt.Errorf("error clearing config: %w", err)
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	fmt.Println("  - Settings cleared")
	if logsCleared > 0 {
		fmt.Printf("  - %d log file(s) removed\n", logsCleared)
	}

	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
