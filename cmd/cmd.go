// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func outputFlags(prettyDefault bool) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: prettyDefault,
		},
	}
}

// serveCommand runs the dashboard HTTP API
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the dashboard HTTP API",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "host",
				Usage: "Override the configured listen host",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Override the configured listen port",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the health endpoint in a browser once listening",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand prepares local state
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and database",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write config.toml from the built-in template",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Create the SQLite database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent database migration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupRollback,
			},
		},
	}
}

// videoCommand handles video lookups
func videoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "video",
		Aliases: []string{"v"},
		Usage:   "Look up YouTube video statistics",
		Flags:   []cli.Flag{configFlag()},
		Commands: []*cli.Command{
			{
				Name:      "fetch",
				Usage:     "Fetch statistics for one or more video URLs or IDs",
				ArgsUsage: "<url-or-id>...",
				Flags: append(outputFlags(false),
					&cli.BoolFlag{
						Name:    "save",
						Aliases: []string{"s"},
						Usage:   "Save fetched videos to the signed-in account",
					},
				),
				Action: r.VideoFetch,
			},
		},
	}
}

// accountCommand manages the CLI session
func accountCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Sign up, sign in and out",
		Flags: []cli.Flag{configFlag()},
		Commands: []*cli.Command{
			{
				Name:  "signup",
				Usage: "Register a new account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Password (at least 6 characters)",
						Required: true,
					},
				},
				Action: r.AccountSignup,
			},
			{
				Name:  "login",
				Usage: "Sign in to an existing account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Password",
						Required: true,
					},
				},
				Action: r.AccountLogin,
			},
			{
				Name:   "logout",
				Usage:  "Sign out",
				Action: r.AccountLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the signed-in account",
				Flags:  outputFlags(false),
				Action: r.AccountWhoami,
			},
		},
	}
}

// savedCommand operates on the signed-in account's saved videos
func savedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "saved",
		Usage: "Manage saved videos",
		Flags: []cli.Flag{configFlag()},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List saved videos",
				Flags:  outputFlags(false),
				Action: r.SavedList,
			},
			{
				Name:  "show",
				Usage: "Show one saved video",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  outputFlags(true),
				Action: r.SavedShow,
			},
			{
				Name:  "remove",
				Usage: "Remove a video from the saved list",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.SavedRemove,
			},
			{
				Name:   "clear",
				Usage:  "Remove every saved video",
				Action: r.SavedClear,
			},
			{
				Name:  "export",
				Usage: "Export saved videos to CSV, Markdown or text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, md or txt",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file (csv, txt) or directory (md)",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Document title for md and txt exports",
						Value: "Saved videos",
					},
					&cli.BoolFlag{
						Name:  "thumbnails",
						Usage: "Download thumbnails alongside a Markdown export",
					},
					&cli.FloatFlag{
						Name:  "thumbnail-rate",
						Usage: "Maximum thumbnail downloads per second (0 for unlimited)",
						Value: 4,
					},
				},
				Action: r.SavedExport,
			},
		},
	}
}

// tuiCommand launches the interactive browser
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse saved videos interactively",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
