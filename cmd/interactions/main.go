// Package main is the entrypoint for the interactions service.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/morezero/interactions/internal/config"
	"github.com/morezero/interactions/internal/feedback"
	"github.com/morezero/interactions/internal/server"
	"github.com/morezero/interactions/pkg/db"
)

const usage = `Usage: interactions [command]
       interactions serve              Start the service (transports from TRANSPORTS, HTTP endpoint).
       interactions migrate up         Run database migrations.
       interactions migrate status     Show migration status.
       interactions clear              Truncate the feedback table; schema is preserved.
       interactions register           Overwrite the application's slash commands on Discord.
       interactions commands           Print the slash command definitions as JSON.

Commands:
  serve           (default) Start the service.
  migrate up      Run database migrations only.
  migrate status  Show current migration status.
  clear           Truncate feedback; schema preserved.
  register        Register commands globally, or in DISCORD_GUILD_ID when set.
  commands        Print what register would send.

Environment: TRANSPORTS (gateway,webhook,comms), DISCORD_TOKEN, DISCORD_PUBLIC_KEY,
DISCORD_APP_ID, DISCORD_GUILD_ID, COMMS_URL, DATABASE_URL, MIGRATION_PATH, HTTP_PORT. See README.
`

func main() {
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 && args[0] != "" {
		cmd = args[0]
	}

	switch cmd {
	case "migrate":
		if len(args) < 2 {
			log.Fatalf("interactions migrate: require subcommand (up, status)")
		}
		sub := args[1]
		switch sub {
		case "up":
			if err := runMigrateUp(); err != nil {
				log.Fatalf("interactions migrate up: %v", err)
			}
		case "status":
			if err := runMigrateStatus(); err != nil {
				log.Fatalf("interactions migrate status: %v", err)
			}
		default:
			log.Fatalf("interactions migrate: unknown subcommand %q (use up, status)", sub)
		}
		return
	case "clear":
		if err := runClear(); err != nil {
			log.Fatalf("interactions clear: %v", err)
		}
		return
	case "register":
		if err := runRegister(); err != nil {
			log.Fatalf("interactions register: %v", err)
		}
		return
	case "commands":
		if err := printCommands(os.Stdout); err != nil {
			log.Fatalf("interactions commands: %v", err)
		}
		return
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	case "serve", "":
		// serve (explicit or default)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q.\n%s", cmd, usage)
		os.Exit(1)
	}

	if err := server.Run(); err != nil {
		log.Fatalf("interactions: %v", err)
	}
}

// dbConfig loads config for the database commands.
func dbConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForDB(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runMigrateUp() error {
	cfg, err := dbConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	migrationSQL, err := db.LoadMigrationFiles(cfg.MigrationPath)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	if err := db.RunMigrations(ctx, pool, migrationSQL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func runMigrateStatus() error {
	cfg, err := dbConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	return db.MigrationStatus(ctx, pool, cfg.MigrationPath)
}

func runClear() error {
	cfg, err := dbConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := db.ClearFeedback(ctx, pool); err != nil {
		return err
	}
	fmt.Println("Feedback cleared.")
	return nil
}

func runRegister() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForRegister(); err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	created, err := session.ApplicationCommandBulkOverwrite(cfg.DiscordAppID, cfg.DiscordGuildID, feedback.Commands())
	if err != nil {
		return fmt.Errorf("overwrite commands: %w", err)
	}

	scope := "globally"
	if cfg.DiscordGuildID != "" {
		scope = "in guild " + cfg.DiscordGuildID
	}
	fmt.Printf("Registered %d commands %s.\n", len(created), scope)
	for _, c := range created {
		fmt.Printf("  /%s (%s)\n", c.Name, c.ID)
	}
	return nil
}

func printCommands(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(feedback.Commands())
}
