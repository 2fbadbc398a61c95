package ws

import (
	"encoding/json"

	"skillpath/internal/usecase"
)

// Notifier adapts the hub to the goal usecase's notification port.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

type goalProgressMessage struct {
	Type string                    `json:"type"`
	Data usecase.GoalProgressEvent `json:"data"`
}

func (n *Notifier) GoalProgressChanged(ev usecase.GoalProgressEvent) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(goalProgressMessage{Type: "goal_progress", Data: ev})
	if err != nil {
		return
	}
	n.hub.Broadcast(ev.UserID, b)
}
