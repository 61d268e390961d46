// plat-welcome CLI - new-user welcome notifications
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joeblew999/plat-welcome/internal/config"
	"github.com/joeblew999/plat-welcome/internal/svc"
	"github.com/joeblew999/plat-welcome/pkg/mail"
	"github.com/joeblew999/plat-welcome/pkg/notify"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

const version = "plat-welcome v0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "notify":
		notifyCmd(os.Args[2:])
	case "preview":
		previewCmd(os.Args[2:])
	case "adduser":
		addUserCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "version":
		fmt.Println(version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`plat-welcome - New User Welcome Notifier

Usage:
  plat-welcome <command> [options]

Commands:
  adduser    Create a host user
  notify     Send the welcome and admin emails for a user
  preview    Print the welcome email for a user without sending it
  validate   Validate HTML for email client compatibility
  version    Show version
  help       Show this help

Examples:
  plat-welcome adduser -login=jane -email=jane@example.com -school="Lincoln High"
  plat-welcome notify -id=1 -password=s3cret
  plat-welcome preview -id=1 -out=welcome.html
  plat-welcome validate -file=welcome.html

All commands except validate and version read -f (default etc/plat-welcome.yaml).

Environment Variables:
  GMAIL_USERNAME      SMTP username and sender address
  GMAIL_APP_PASSWORD  SMTP password`)
}

func loadContext(configFile string) *svc.ServiceContext {
	var c config.Config
	conf.MustLoad(configFile, &c, conf.UseEnv())
	logx.MustSetup(c.Log)

	svcCtx, err := svc.NewServiceContext(c)
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}
	return svcCtx
}

func addUserCmd(args []string) {
	fs := flag.NewFlagSet("adduser", flag.ExitOnError)
	configFile := fs.String("f", "etc/plat-welcome.yaml", "config file path")
	login := fs.String("login", "", "User login")
	email := fs.String("email", "", "User email address")
	school := fs.String("school", "", "School label")
	team := fs.String("team", "", "Team label")
	fs.Parse(args)

	svcCtx := loadContext(*configFile)
	defer svcCtx.Close()

	id, err := svcCtx.Store.CreateUser(context.Background(),
		notify.UserAccount{Login: *login, Email: *email},
		notify.Labels{School: *school, Team: *team})
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		svcCtx.Close()
		os.Exit(1)
	}

	fmt.Printf("✓ Created user %d (%s)\n", id, *login)
}

func notifyCmd(args []string) {
	fs := flag.NewFlagSet("notify", flag.ExitOnError)
	configFile := fs.String("f", "etc/plat-welcome.yaml", "config file path")
	id := fs.Int64("id", 0, "User id")
	password := fs.String("password", "", "Plaintext password (password variant)")
	fs.Parse(args)

	if *id <= 0 {
		fmt.Println("Error: -id is required")
		os.Exit(1)
	}

	svcCtx := loadContext(*configFile)
	defer svcCtx.Close()

	if err := svcCtx.Notifier.NotifyNewUser(context.Background(), *id, *password); err != nil {
		fmt.Printf("Error notifying user %d: %v\n", *id, err)
		svcCtx.Close()
		os.Exit(1)
	}

	fmt.Printf("✓ Welcome sent to user %d (%s variant)\n", *id, svcCtx.Notifier.Variant())
}

func previewCmd(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	configFile := fs.String("f", "etc/plat-welcome.yaml", "config file path")
	id := fs.Int64("id", 0, "User id")
	password := fs.String("password", "", "Plaintext password to show")
	outFile := fs.String("out", "", "Output file (default: stdout)")
	fs.Parse(args)

	if *id <= 0 {
		fmt.Println("Error: -id is required")
		os.Exit(1)
	}

	svcCtx := loadContext(*configFile)
	defer svcCtx.Close()

	msg, err := svcCtx.Notifier.Preview(context.Background(), *id, *password)
	if err != nil {
		fmt.Printf("Error composing preview: %v\n", err)
		svcCtx.Close()
		os.Exit(1)
	}

	if *outFile == "" {
		fmt.Printf("To: %s\nSubject: %s\nContent-Type: %s\n\n%s\n", msg.To, msg.Subject, msg.ContentType, msg.Body)
		return
	}

	if err := os.WriteFile(*outFile, []byte(msg.Body), 0644); err != nil {
		fmt.Printf("Error writing output: %v\n", err)
		svcCtx.Close()
		os.Exit(1)
	}
	fmt.Printf("Rendered to %s (%d bytes)\n", *outFile, len(msg.Body))
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to validate")
	fs.Parse(args)

	if *file == "" {
		fmt.Println("Error: -file is required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	issues := mail.ValidateHTML(string(content))
	if len(issues) == 0 {
		fmt.Printf("✓ %s - No compatibility issues found\n", *file)
		return
	}

	fmt.Printf("⚠ %s - Found %d issue(s):\n", *file, len(issues))
	for _, issue := range issues {
		fmt.Printf("  • %s\n", issue)
	}
	os.Exit(1)
}
