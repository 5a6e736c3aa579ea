package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/insightboard/internal/formatter"
	"github.com/desertthunder/insightboard/internal/repositories"
	"github.com/desertthunder/insightboard/internal/shared"
	"github.com/urfave/cli/v3"
)

// savedVideos resolves the signed-in user and their video store.
func (r *Runner) savedVideos(cmd *cli.Command) (*repositories.VideoStore, string, error) {
	if err := r.loadConfig(cmd); err != nil {
		return nil, "", err
	}

	user, err := r.currentUser()
	if err != nil {
		return nil, "", err
	}

	videos, err := r.videoStore()
	if err != nil {
		return nil, "", err
	}

	return videos, user.ID, nil
}

// SavedList prints the saved videos, oldest first.
func (r *Runner) SavedList(ctx context.Context, cmd *cli.Command) error {
	videos, userID, err := r.savedVideos(cmd)
	if err != nil {
		return err
	}

	list := videos.List(userID)

	if cmd.Bool("json") {
		return r.writeJSON(list, cmd.Bool("pretty"))
	}

	if len(list) == 0 {
		r.writePlain("No saved videos\n")
		return nil
	}

	r.writePlain("Saved videos: %d\n\n", len(list))
	for i, v := range list {
		r.writePlain("%d. %s\n", i+1, v.Title)
		r.writePlain("   %s • %s views • %s • %s\n", v.Channel, formatter.FormatCount(v.Views), v.Duration, v.ID)
	}
	return nil
}

// SavedShow prints one saved video.
func (r *Runner) SavedShow(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: video ID", shared.ErrMissingArgument)
	}

	videos, userID, err := r.savedVideos(cmd)
	if err != nil {
		return err
	}

	v, ok := videos.FindByID(userID, id)
	if !ok {
		return fmt.Errorf("%w: video %s is not saved", shared.ErrNotFound, id)
	}

	if cmd.Bool("json") {
		return r.writeJSON(v, cmd.Bool("pretty"))
	}

	r.printVideo(*v)
	return nil
}

// SavedRemove removes one video from the saved list.
func (r *Runner) SavedRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: video ID", shared.ErrMissingArgument)
	}

	videos, userID, err := r.savedVideos(cmd)
	if err != nil {
		return err
	}

	v, ok := videos.FindByID(userID, id)
	if !ok {
		return fmt.Errorf("%w: video %s is not saved", shared.ErrNotFound, id)
	}

	videos.Remove(userID, id)
	r.writePlain("✓ Removed %s\n", v.Title)
	return nil
}

// SavedClear removes every saved video.
func (r *Runner) SavedClear(ctx context.Context, cmd *cli.Command) error {
	videos, userID, err := r.savedVideos(cmd)
	if err != nil {
		return err
	}

	count := len(videos.List(userID))
	videos.Clear(userID)
	r.writePlain("✓ Cleared %d saved videos\n", count)
	return nil
}

// SavedExport writes the saved list as CSV, a Markdown directory or plain text.
func (r *Runner) SavedExport(ctx context.Context, cmd *cli.Command) error {
	format := strings.ToLower(cmd.String("format"))
	output := cmd.String("output")
	title := cmd.String("title")

	videos, userID, err := r.savedVideos(cmd)
	if err != nil {
		return err
	}

	list := videos.List(userID)
	r.logger.Info("exporting saved videos", "format", format, "count", len(list))

	switch format {
	case "csv":
		path, err := formatter.WriteCSVExport(list, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported %d videos to %s\n", len(list), path)
	case "md", "markdown":
		result, err := formatter.WriteMarkdownExport(list, formatter.MarkdownExportOpts{
			Title:           title,
			Directory:       output,
			FetchThumbnails: cmd.Bool("thumbnails"),
			RateLimit:       cmd.Float("thumbnail-rate"),
			Client:          r.httpClient,
			Warnings:        r.output,
		})
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported %d videos to %s\n", len(list), result.Directory)
		if result.Thumbnails > 0 {
			r.writePlain("  Thumbnails: %d\n", result.Thumbnails)
		}
	case "txt", "text":
		path, err := formatter.WriteTextExport(title, list, output)
		if err != nil {
			return err
		}
		r.writePlain("✓ Exported %d videos to %s\n", len(list), path)
	default:
		return fmt.Errorf("%w: unsupported format %q (use csv, md or txt)", shared.ErrInvalidFlag, format)
	}

	return nil
}
