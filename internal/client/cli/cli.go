package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	httpClient "github.com/iudanet/bloodlink/internal/client/api"
	"github.com/iudanet/bloodlink/internal/client/auth"
	"github.com/iudanet/bloodlink/internal/client/feed"
	"github.com/iudanet/bloodlink/internal/client/iocli"
	"github.com/iudanet/bloodlink/internal/client/session"
)

// Passwords - источники пароля, переданные через флаги
type Passwords struct {
	FromFile string
}

type Cli struct {
	io          iocli.IO
	apiClient   httpClient.ClientAPI
	authService *auth.Service
	session     *session.Manager
	feedService feed.Service
	logger      *slog.Logger
	passwords   Passwords
}

func New(
	io iocli.IO,
	apiClient httpClient.ClientAPI,
	authService *auth.Service,
	sessionMgr *session.Manager,
	feedService feed.Service,
	logger *slog.Logger,
	passwords Passwords,
) *Cli {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authService: authService,
		session:     sessionMgr,
		feedService: feedService,
		logger:      logger,
		passwords:   passwords,
	}
}

// getPassword retrieves the account password from various sources with priority:
// 1. Environment variable BLOODLINK_PASSWORD
// 2. File specified via --password-file
// 3. Interactive prompt (fallback)
func (c *Cli) getPassword(prompt string) (string, error) {
	// Priority 1: Environment variable
	if envPassword := os.Getenv("BLOODLINK_PASSWORD"); envPassword != "" {
		return envPassword, nil
	}

	// Priority 2: File
	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	// Priority 3: Interactive prompt (fallback)
	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

func PrintUsage() {
	fmt.Println("BloodLink Donor Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bloodlink [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version             Show version information")
	fmt.Println("  --server URL          Server base URL")
	fmt.Println("  --data-dir PATH       Directory for local data (default: ~/.bloodlink)")
	fmt.Println("  --password-file PATH  Path to file containing account password")
	fmt.Println()
	fmt.Println("Password Priority (highest to lowest):")
	fmt.Println("  1. BLOODLINK_PASSWORD environment variable")
	fmt.Println("  2. --password-file (file path)")
	fmt.Println("  3. Interactive prompt (fallback)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                Register a new donor account")
	fmt.Println("  login                   Login to server")
	fmt.Println("  logout                  Logout and clear the saved session")
	fmt.Println("  status                  Show authentication status")
	fmt.Println("  feed                    Show emergency requests matching your blood group")
	fmt.Println("  respond <id>            Respond to an emergency request")
	fmt.Println("  hospitals [query]       List partner hospitals (optional name/city filter)")
	fmt.Println("  history [query]         Show your donation history")
	fmt.Println("  profile                 Show your donor profile")
	fmt.Println("  update                  Update phone and city in your profile")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Interactive password prompt")
	fmt.Println("  bloodlink register")
	fmt.Println("  bloodlink login")
	fmt.Println("  bloodlink feed")
	fmt.Println()
	fmt.Println("  # Using environment variable (recommended)")
	fmt.Println("  export BLOODLINK_PASSWORD='mySecretPassword'")
	fmt.Println("  bloodlink login")
	fmt.Println()
	fmt.Println("  # Using password file (for automation)")
	fmt.Println("  echo 'mySecretPassword' > ~/.bloodlink-password")
	fmt.Println("  chmod 600 ~/.bloodlink-password")
	fmt.Println("  bloodlink --password-file ~/.bloodlink-password login")
	fmt.Println()
	fmt.Println("  # Other examples")
	fmt.Println("  bloodlink respond b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  bloodlink hospitals moscow")
	fmt.Println("  bloodlink --server https://example.com/api status")
}
