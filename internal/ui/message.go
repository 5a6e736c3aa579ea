package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/insightboard/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgVideosLoaded MsgKind = iota
	MsgVideoFetched
	MsgVideoRemoved
)

type fetchResult struct {
	video *models.VideoRecord
	err   error
}

// videosLoadedMsg is the constructor for [MsgVideosLoaded]
func videosLoadedMsg(videos []models.VideoRecord) Msg {
	return Msg{kind: MsgVideosLoaded, data: videos}
}

// videoFetchedMsg is the constructor for [MsgVideoFetched]
func videoFetchedMsg(video *models.VideoRecord, err error) Msg {
	return Msg{kind: MsgVideoFetched, data: fetchResult{video, err}}
}

// videoRemovedMsg is the constructor for [MsgVideoRemoved]
func videoRemovedMsg(id string) Msg {
	return Msg{kind: MsgVideoRemoved, data: id}
}
