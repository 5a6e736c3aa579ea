// package formatter renders saved videos for display and exports them to CSV, Markdown and plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/desertthunder/insightboard/internal/models"
	"github.com/desertthunder/insightboard/internal/services"
	"golang.org/x/time/rate"
)

// FormatCount abbreviates large counters: 1234567 → "1.2M", 4321 → "4.3K".
func FormatCount(n uint64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatUint(n, 10)
	}
}

// FormatRate renders a percentage with two decimals.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// WatchURL returns the short link for a video ID.
func WatchURL(id string) string {
	return "https://youtu.be/" + id
}

func savedAt(v models.VideoRecord) string {
	if v.SavedAt == nil {
		return ""
	}
	return v.SavedAt.UTC().Format(time.RFC3339)
}

// ExportToCSV writes one row per video with raw counters, duration in seconds and engagement rates.
func ExportToCSV(videos []models.VideoRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Channel", "Views", "Likes", "Comments", "Duration", "DurationSeconds", "UploadDate", "LikeRate", "CommentRate", "SavedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, v := range videos {
		engagement := v.Engagement()
		record := []string{
			v.ID,
			v.Title,
			v.Channel,
			strconv.FormatUint(v.Views, 10),
			strconv.FormatUint(v.Likes, 10),
			strconv.FormatUint(v.Comments, 10),
			v.Duration,
			strconv.Itoa(services.ClockSeconds(v.Duration)),
			v.UploadDate,
			strconv.FormatFloat(engagement.LikeRate, 'f', 2, 64),
			strconv.FormatFloat(engagement.CommentRate, 'f', 2, 64),
			savedAt(v),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders a titled list of videos.
//
// thumbnails maps video IDs to local image paths embedded ahead of each entry.
func ExportToMarkdown(title string, videos []models.VideoRecord, thumbnails map[string]string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))

	var views uint64
	seconds := 0
	for _, v := range videos {
		views += v.Views
		seconds += services.ClockSeconds(v.Duration)
	}

	buf.WriteString(fmt.Sprintf("**Videos**: %d\n", len(videos)))
	buf.WriteString(fmt.Sprintf("**Total views**: %s\n", FormatCount(views)))
	buf.WriteString(fmt.Sprintf("**Total length**: %s\n\n", (time.Duration(seconds) * time.Second).String()))

	buf.WriteString("## Videos\n\n")
	for i, v := range videos {
		if path, ok := thumbnails[v.ID]; ok {
			buf.WriteString(fmt.Sprintf("![%s](%s)\n\n", v.ID, path))
		}
		engagement := v.Engagement()
		buf.WriteString(fmt.Sprintf("%d. [%s](%s) - %s [%s]\n", i+1, v.Title, WatchURL(v.ID), v.Channel, v.Duration))
		buf.WriteString(fmt.Sprintf("   %s views, %s likes (%s), %s comments (%s), uploaded %s\n",
			FormatCount(v.Views), FormatCount(v.Likes), FormatRate(engagement.LikeRate),
			FormatCount(v.Comments), FormatRate(engagement.CommentRate), v.UploadDate))
	}

	return buf.Bytes(), nil
}

// ExportToText renders a compact numbered list.
func ExportToText(title string, videos []models.VideoRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", title))
	buf.WriteString(fmt.Sprintf("Videos: %d\n\n", len(videos)))

	for i, v := range videos {
		buf.WriteString(fmt.Sprintf("%d. %s - %s (%s, %s views)\n", i+1, v.Channel, v.Title, v.Duration, FormatCount(v.Views)))
	}

	return buf.Bytes(), nil
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(client *http.Client, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// WriteCSVExport writes the CSV export to path, defaulting to saved_videos.csv.
func WriteCSVExport(videos []models.VideoRecord, path string) (string, error) {
	if path == "" {
		path = "saved_videos.csv"
	}

	data, err := ExportToCSV(videos)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return path, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory  string
	Files      []string
	Thumbnails int
}

// MarkdownExportOpts configures WriteMarkdownExport.
//
// When FetchThumbnails is set each video's thumbnail is downloaded with Client into
// {dir}/thumbnails/{id}.jpg; failed downloads are reported on Warnings and skipped.
// RateLimit caps downloads per second against the image CDN; zero or less means unpaced.
type MarkdownExportOpts struct {
	Title           string
	Directory       string
	FetchThumbnails bool
	RateLimit       float64
	Client          *http.Client
	Warnings        io.Writer
}

// WriteMarkdownExport writes {dir}/README.md, defaulting the directory to saved_videos.
func WriteMarkdownExport(videos []models.VideoRecord, opts MarkdownExportOpts) (*MarkdownExportResult, error) {
	if opts.Directory == "" {
		opts.Directory = "saved_videos"
	}
	if opts.Title == "" {
		opts.Title = "Saved videos"
	}
	if opts.Warnings == nil {
		opts.Warnings = os.Stderr
	}

	if err := os.MkdirAll(opts.Directory, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	result := &MarkdownExportResult{Directory: opts.Directory, Files: []string{}}
	thumbnails := map[string]string{}

	if opts.FetchThumbnails {
		thumbDir := filepath.Join(opts.Directory, "thumbnails")
		if err := os.MkdirAll(thumbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create thumbnail directory: %w", err)
		}

		limiter := rate.NewLimiter(rate.Inf, 1)
		if opts.RateLimit > 0 {
			limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
		}

		for _, v := range videos {
			if v.Thumbnail == "" {
				continue
			}
			time.Sleep(limiter.Reserve().Delay())

			imageData, err := DownloadImage(opts.Client, v.Thumbnail)
			if err != nil {
				fmt.Fprintf(opts.Warnings, "Warning: failed to download thumbnail for %s: %v\n", v.ID, err)
				continue
			}

			name := v.ID + ".jpg"
			if err := os.WriteFile(filepath.Join(thumbDir, name), imageData, 0644); err != nil {
				fmt.Fprintf(opts.Warnings, "Warning: failed to save thumbnail for %s: %v\n", v.ID, err)
				continue
			}

			thumbnails[v.ID] = "thumbnails/" + name
			result.Files = append(result.Files, filepath.Join(thumbDir, name))
			result.Thumbnails++
		}
	}

	mdData, err := ExportToMarkdown(opts.Title, videos, thumbnails)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := filepath.Join(opts.Directory, "README.md")
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	result.Files = append(result.Files, mdFile)

	return result, nil
}

// WriteTextExport writes the text export to path, defaulting to saved_videos.txt.
func WriteTextExport(title string, videos []models.VideoRecord, path string) (string, error) {
	if path == "" {
		path = "saved_videos.txt"
	}

	textData, err := ExportToText(title, videos)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(path, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return path, nil
}
