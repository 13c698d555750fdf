// Command admincli is a terminal front end for the admin API. It drives
// the same panel flows the web screens do: list a collection, add or edit
// a record, delete with confirmation.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/ozgurweb/sitepanel/internal/app/models"
	"github.com/ozgurweb/sitepanel/internal/panel"
)

func main() {
	baseURL := flag.String("base", "http://localhost:8080", "base URL of the admin API")
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "staff email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "staff password")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
	resourceName, action := args[0], args[1]

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	client := panel.NewClient(*baseURL, log)

	ctx := context.Background()
	if err := client.Login(ctx, *email, *password); err != nil {
		log.Fatal().Err(err).Msg("Login failed")
	}

	if err := run(ctx, client, resourceName, action, args[2:]); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: admincli [flags] <resource> <action> [args]

resources: blog service about course keyword seo slider contact booking
actions:   list
           delete <id>

flags:`)
	flag.PrintDefaults()
}

func run(ctx context.Context, client *panel.Client, resourceName, action string, args []string) error {
	switch resourceName {
	case "blog":
		return runPanel[models.ContentEntry](ctx, client, panel.Blogs, action, args)
	case "service":
		return runPanel[models.ContentEntry](ctx, client, panel.Services, action, args)
	case "about":
		return runPanel[models.ContentEntry](ctx, client, panel.Abouts, action, args)
	case "course":
		return runPanel[models.TitleEntry](ctx, client, panel.Courses, action, args)
	case "keyword":
		return runPanel[models.TitleEntry](ctx, client, panel.Keywords, action, args)
	case "seo":
		return runPanel[models.SeoEntry](ctx, client, panel.Seo, action, args)
	case "slider":
		return runPanel[models.Slider](ctx, client, panel.Sliders, action, args)
	case "contact":
		return runPanel[models.ContactMessage](ctx, client, panel.Contacts, action, args)
	case "booking":
		return runPanel[models.Booking](ctx, client, panel.Bookings, action, args)
	default:
		return fmt.Errorf("unknown resource %q", resourceName)
	}
}

func runPanel[T any](ctx context.Context, client *panel.Client, resource panel.Resource, action string, args []string) error {
	p := panel.New[T](client, resource)

	switch action {
	case "list":
		if err := p.Refresh(ctx); err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p.Records())

	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete needs exactly one id")
		}
		return p.Delete(ctx, args[0], confirmPrompt(args[0]))

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

// confirmPrompt asks on the terminal before a delete goes out.
func confirmPrompt(id string) func() bool {
	return func() bool {
		fmt.Fprintf(os.Stderr, "delete %s? [y/N] ", id)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(line), "y")
	}
}
