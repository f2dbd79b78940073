package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"video-splitter/infrastructure/config"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

// Prompter interface for interactive prompts (allows mocking in tests).
type Prompter interface {
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter using the survey library.
type SurveyPrompter struct{}

func (p *SurveyPrompter) Input(message string, defaultValue string) (string, error) {
	result := ""
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	result := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return false, err
	}
	return result, nil
}

// DefaultPrompter is the prompter used in production.
var DefaultPrompter Prompter = &SurveyPrompter{}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

All settings are optional; leave a prompt empty to use the built-in
default. Google Drive settings are only needed for the upload command.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing).
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to video-splitter setup!")
	fmt.Println()

	cfg := &config.Config{}

	var err error
	if cfg.Audio.Bitrate, err = prompter.Input("Audio bitrate for MP3 extraction:", "320k"); err != nil {
		return err
	}
	if cfg.Download.Directory, err = prompter.Input("Directory for downloaded videos (empty = working directory):", ""); err != nil {
		return err
	}
	if cfg.Tools.FFmpegPath, err = prompter.Input("ffmpeg path (empty = auto-detect):", ""); err != nil {
		return err
	}
	if cfg.Tools.YTDLPPath, err = prompter.Input("yt-dlp path (empty = search PATH):", ""); err != nil {
		return err
	}

	useDrive, err := prompter.Confirm("Configure Google Drive uploads?", false)
	if err != nil {
		return err
	}
	if useDrive {
		if cfg.Google.CredentialsFile, err = prompter.Input("Google OAuth credentials file:", "credentials.json"); err != nil {
			return err
		}
		if cfg.Google.TokenFile, err = prompter.Input("Token cache file:", "token.json"); err != nil {
			return err
		}
		if cfg.Google.FolderID, err = prompter.Input("Drive folder ID for uploads:", ""); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}
