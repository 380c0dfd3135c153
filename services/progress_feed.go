package services

import (
	"context"
	"time"

	"backend/models"
)

type feedDeps struct {
	hub      *RealtimeHub
	progress *ProgressService
}

var _feed feedDeps

func InitProgressFeed(hub *RealtimeHub, progress *ProgressService) {
	_feed = feedDeps{hub: hub, progress: progress}
}

// EmitDayProgress recomputes the user's day and pushes it to any open
// sockets. Safe to call anywhere; a no-op until InitProgressFeed runs, and
// broadcast failures never bubble into the write path that triggered them.
func EmitDayProgress(user *models.User, date time.Time) {
	if _feed.hub == nil || _feed.progress == nil {
		return
	}
	dp, err := _feed.progress.DayProgress(context.Background(), user, date)
	if err != nil {
		return
	}
	_feed.hub.Broadcast(user.ID, map[string]any{
		"kind":     "progress.updated",
		"progress": dp,
	})
}
