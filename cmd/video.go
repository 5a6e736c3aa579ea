package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/desertthunder/insightboard/internal/formatter"
	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/services"
	"github.com/desertthunder/insightboard/internal/shared"
	"github.com/desertthunder/insightboard/internal/tasks"
	"github.com/urfave/cli/v3"
)

// fetchOutput is the JSON shape of one analyzed input.
type fetchOutput struct {
	Input string              `json:"input"`
	ID    string              `json:"id,omitempty"`
	Video *models.VideoRecord `json:"video,omitempty"`
	Error string              `json:"error,omitempty"`
}

// VideoFetch extracts, fetches and prints each argument, optionally saving the results.
func (r *Runner) VideoFetch(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return fmt.Errorf("%w: at least one video URL or ID", shared.ErrMissingArgument)
	}
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	fetcher, err := r.videoFetcher(ctx)
	if err != nil {
		return err
	}

	var user models.User
	if cmd.Bool("save") {
		if user, err = r.currentUser(); err != nil {
			return err
		}
	}

	progressCh := make(chan tasks.ProgressUpdate, 50)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for update := range progressCh {
			if useJSON || len(inputs) == 1 {
				continue
			}
			switch update.Phase {
			case tasks.ExtractID, tasks.FetchVideo:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()

	result, err := tasks.NewAnalyzer(fetcher).Analyze(ctx, progressCh, inputs)
	close(progressCh)
	wg.Wait()
	if err != nil {
		return err
	}

	if cmd.Bool("save") {
		videos, err := r.videoStore()
		if err != nil {
			return err
		}
		for i, res := range result.Results {
			if res.Record == nil {
				continue
			}
			saved := videos.Save(user.ID, *res.Record)
			result.Results[i].Record = &saved
		}
		r.logger.Info("saved videos", "user", user.ID, "count", result.Summary.Succeeded)
	}

	if useJSON {
		if len(inputs) == 1 {
			if res := result.Results[0]; res.Error != nil {
				return res.Error
			}
			return r.writeJSON(result.Results[0].Record, pretty)
		}
		return r.writeJSON(fetchOutputs(result), pretty)
	}

	if len(inputs) == 1 {
		res := result.Results[0]
		if res.Error != nil {
			return fmt.Errorf("%s: %w", services.UserMessage(res.Error), res.Error)
		}
		r.printVideo(*res.Record)
		return nil
	}

	for _, res := range result.Results {
		r.writePlain("\n")
		if res.Error != nil {
			r.writePlain("✗ %s\n  %s\n", res.Input, services.UserMessage(res.Error))
			continue
		}
		r.printVideo(*res.Record)
	}
	r.printSummary(result.Summary)

	if result.Summary.Succeeded == 0 {
		return fmt.Errorf("%w: no videos could be fetched", shared.ErrUnknown)
	}
	return nil
}

func fetchOutputs(result *tasks.AnalyzeResult) any {
	outputs := make([]fetchOutput, len(result.Results))
	for i, res := range result.Results {
		outputs[i] = fetchOutput{Input: res.Input, ID: res.ID, Video: res.Record}
		if res.Error != nil {
			outputs[i].Error = services.UserMessage(res.Error)
		}
	}
	return struct {
		Results []fetchOutput `json:"results"`
		Summary tasks.Summary `json:"summary"`
	}{outputs, result.Summary}
}

func (r *Runner) printVideo(v models.VideoRecord) {
	eng := v.Engagement()

	r.writePlainHeader(v.Title)
	r.writePlain("Channel:   %s\n", v.Channel)
	r.writePlain("Views:     %s (%d)\n", formatter.FormatCount(v.Views), v.Views)
	r.writePlain("Likes:     %s (%s)\n", formatter.FormatCount(v.Likes), formatter.FormatRate(eng.LikeRate))
	r.writePlain("Comments:  %s (%s)\n", formatter.FormatCount(v.Comments), formatter.FormatRate(eng.CommentRate))
	r.writePlain("Duration:  %s\n", v.Duration)
	r.writePlain("Uploaded:  %s\n", v.UploadDate)
	r.writePlain("URL:       %s\n", formatter.WatchURL(v.ID))
	if v.SavedAt != nil {
		r.writePlain("Saved:     %s\n", v.SavedAt.Local().Format("2006-01-02 15:04"))
	}
}

func (r *Runner) printSummary(s tasks.Summary) {
	r.writePlainln("Summary")
	r.writePlain("Fetched:        %d/%d\n", s.Succeeded, s.Total)
	r.writePlain("Total views:    %s\n", formatter.FormatCount(s.TotalViews))
	r.writePlain("Total runtime:  %s\n", s.TotalDuration)
	r.writePlain("Mean like rate: %s\n", formatter.FormatRate(s.MeanLikeRate))
}
