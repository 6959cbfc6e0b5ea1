package players

// Player is one participant of a room, keyed by its connection id.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Ready      bool   `json:"ready"`
	Score      int    `json:"score"`
	Progress   int    `json:"progressIndex"`
	Finished   bool   `json:"finished"`
	FinishTime *int   `json:"finishTimeSeconds"`
}

// FinishSeconds returns the recorded finish time, or -1 when the player has not finished.
func (p Player) FinishSeconds() int {
	if p.FinishTime == nil {
		return -1
	}
	return *p.FinishTime
}
