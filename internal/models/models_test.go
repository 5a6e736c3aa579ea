package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestVideoRecord(t *testing.T) {
	t.Run("JSON field names", func(t *testing.T) {
		record := VideoRecord{ID: "dQw4w9WgXcQ", Title: "Never Gonna Give You Up", UploadDate: "2009-10-25"}
		data, err := json.Marshal(record)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}

		for _, field := range []string{`"id"`, `"title"`, `"channel"`, `"description"`, `"views"`, `"likes"`, `"comments"`, `"duration"`, `"uploadDate"`, `"thumbnail"`} {
			if !strings.Contains(string(data), field) {
				t.Errorf("expected %s in %s", field, data)
			}
		}

		if strings.Contains(string(data), "savedAt") {
			t.Errorf("unsaved record should omit savedAt, got %s", data)
		}
	})

	t.Run("IsSaved", func(t *testing.T) {
		record := VideoRecord{ID: "dQw4w9WgXcQ"}
		if record.IsSaved() {
			t.Error("expected unsaved record")
		}

		now := time.Now()
		record.SavedAt = &now
		if !record.IsSaved() {
			t.Error("expected saved record")
		}
	})

	t.Run("Engagement", func(t *testing.T) {
		tt := []struct {
			name        string
			record      VideoRecord
			likeRate    float64
			commentRate float64
		}{
			{name: "no views", record: VideoRecord{Likes: 10, Comments: 5}, likeRate: 0, commentRate: 0},
			{name: "simple rates", record: VideoRecord{Views: 1000, Likes: 50, Comments: 10}, likeRate: 5, commentRate: 1},
			{name: "rounded to two decimals", record: VideoRecord{Views: 3, Likes: 1, Comments: 2}, likeRate: 33.33, commentRate: 66.67},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				got := tc.record.Engagement()
				if got.LikeRate != tc.likeRate {
					t.Errorf("LikeRate = %v, want %v", got.LikeRate, tc.likeRate)
				}
				if got.CommentRate != tc.commentRate {
					t.Errorf("CommentRate = %v, want %v", got.CommentRate, tc.commentRate)
				}
			})
		}
	})
}

func TestAccountPublic(t *testing.T) {
	account := Account{ID: "u1", Name: "Ada", Email: "ada@example.com", Password: "$2a$10$hash"}
	user := account.Public()

	if user.ID != "u1" || user.Name != "Ada" || user.Email != "ada@example.com" {
		t.Errorf("unexpected projection %+v", user)
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	if strings.Contains(string(data), "password") {
		t.Errorf("projection must not carry a password, got %s", data)
	}
}
