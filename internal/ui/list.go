package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/insightboard/internal/formatter"
	"github.com/desertthunder/insightboard/internal/models"
)

var _ list.Item = videoItem{}

// videoItem wraps [models.VideoRecord] to implement [list.Item].
type videoItem struct {
	video models.VideoRecord
}

func (i videoItem) FilterValue() string { return i.video.Title + " " + i.video.Channel }
func (i videoItem) Title() string       { return i.video.Title }
func (i videoItem) Description() string {
	desc := fmt.Sprintf("%s views • %s", formatter.FormatCount(i.video.Views), i.video.Duration)
	if i.video.Channel != "" {
		desc = fmt.Sprintf("%s • %s", i.video.Channel, desc)
	}
	return desc
}

func videoItems(videos []models.VideoRecord) []list.Item {
	items := make([]list.Item, len(videos))
	for i, v := range videos {
		items[i] = videoItem{video: v}
	}
	return items
}
