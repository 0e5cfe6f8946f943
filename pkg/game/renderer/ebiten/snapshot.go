package ebiten

import (
	"sort"
	"time"

	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/state"
)

// RenderFrame stores the frame for the next Draw call
func (e *EbitenRenderer) RenderFrame(f *frame.Frame) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	e.snapshot = renderSnapshot{valid: f != nil, frame: f}
}

// getSnapshot returns the latest frame
func (e *EbitenRenderer) getSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()

	return e.snapshot
}

// visibleMessages merges the game log with messages from ShowMessage, drops anything
// older than the message lifetime and keeps the most recent few
func (e *EbitenRenderer) visibleMessages(gameMessages []state.Message, now int64) []messageEntry {
	e.messagesMutex.Lock()
	kept := e.trackedMessages[:0]
	for _, m := range e.trackedMessages {
		if now-m.Timestamp < messageLifetime {
			kept = append(kept, m)
		}
	}
	e.trackedMessages = kept
	all := make([]messageEntry, 0, len(gameMessages)+len(kept))
	for _, m := range gameMessages {
		if now-m.Timestamp < messageLifetime {
			all = append(all, messageEntry{Text: m.Text, Timestamp: m.Timestamp})
		}
	}
	all = append(all, kept...)
	e.messagesMutex.Unlock()

	sortByTimestamp(all)
	if len(all) > maxVisibleMessages {
		all = all[len(all)-maxVisibleMessages:]
	}
	return all
}

// trackMessage records a message shown outside the game log
func (e *EbitenRenderer) trackMessage(msg string) {
	e.messagesMutex.Lock()
	defer e.messagesMutex.Unlock()

	e.trackedMessages = append(e.trackedMessages, messageEntry{
		Text:      msg,
		Timestamp: time.Now().UnixMilli(),
	})
}

// sortByTimestamp orders messages oldest first, keeping insertion order for ties
func sortByTimestamp(msgs []messageEntry) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].Timestamp < msgs[j].Timestamp
	})
}

// messageAlpha is 1 for a fresh message and fades to 0 over the last 30% of its lifetime
func messageAlpha(age int64) float64 {
	fadeStart := int64(messageLifetime * 7 / 10)
	if age <= fadeStart {
		return 1.0
	}
	alpha := 1.0 - float64(age-fadeStart)/float64(messageLifetime-fadeStart)
	if alpha < 0 {
		return 0
	}
	return alpha
}
